package common

type Module string

const (
	ModuleDataMarket Module = "datamarket"
	ModuleGovernance Module = "governance"
	ModuleToken      Module = "token"
)

// Modules lists every module in the order they should be started.
var Modules = []Module{ModuleToken, ModuleDataMarket, ModuleGovernance}

func (m Module) String() string {
	return string(m)
}

package entity

import "github.com/gaze-network/bodydfi-ledger/core/types"

// TokenMintState is the supply state of a mint. MintCap 0 means uncapped.
type TokenMintState struct {
	MintID            types.MintID   `json:"mint_id"`
	Authority         types.Identity `json:"authority"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	URI               string         `json:"uri"`
	Decimals          uint8          `json:"decimals"`
	TotalSupply       uint64         `json:"total_supply"`
	CirculatingSupply uint64         `json:"circulating_supply"`
	IsUtilityToken    bool           `json:"is_utility_token"`
	LastMintTime      int64          `json:"last_mint_time"`
	MintCooldown      int64          `json:"mint_cooldown"`
	MintCap           uint64         `json:"mint_cap"`
}

package httphandler

import (
	"github.com/gaze-network/bodydfi-ledger/modules/token"
	"github.com/gaze-network/bodydfi-ledger/modules/token/config"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/modules/token/usecase"
	"github.com/gaze-network/bodydfi-ledger/pkg/decimals"
)

type HttpHandler struct {
	conf      config.Config
	processor *token.Processor
	usecase   *usecase.Usecase
}

func New(conf config.Config, processor *token.Processor, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		conf:      conf,
		processor: processor,
		usecase:   usecase,
	}
}

type mintResult struct {
	MintId                   string `json:"mintId"`
	Authority                string `json:"authority"`
	Name                     string `json:"name"`
	Symbol                   string `json:"symbol"`
	Uri                      string `json:"uri"`
	Decimals                 uint8  `json:"decimals"`
	TotalSupply              uint64 `json:"totalSupply"`
	TotalSupplyDecimal       string `json:"totalSupplyDecimal"`
	CirculatingSupply        uint64 `json:"circulatingSupply"`
	CirculatingSupplyDecimal string `json:"circulatingSupplyDecimal"`
	IsUtilityToken           bool   `json:"isUtilityToken"`
	LastMintTime             int64  `json:"lastMintTime"` // unix timestamp
	MintCooldown             int64  `json:"mintCooldown"` // seconds
	MintCap                  uint64 `json:"mintCap"`      // 0 means uncapped
}

func mapMint(mint *entity.TokenMintState) mintResult {
	return mintResult{
		MintId:                   mint.MintID.String(),
		Authority:                mint.Authority.String(),
		Name:                     mint.Name,
		Symbol:                   mint.Symbol,
		Uri:                      mint.URI,
		Decimals:                 mint.Decimals,
		TotalSupply:              mint.TotalSupply,
		TotalSupplyDecimal:       decimals.FromUnits(mint.TotalSupply, mint.Decimals).String(),
		CirculatingSupply:        mint.CirculatingSupply,
		CirculatingSupplyDecimal: decimals.FromUnits(mint.CirculatingSupply, mint.Decimals).String(),
		IsUtilityToken:           mint.IsUtilityToken,
		LastMintTime:             mint.LastMintTime,
		MintCooldown:             mint.MintCooldown,
		MintCap:                  mint.MintCap,
	}
}

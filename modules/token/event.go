package token

import "github.com/gaze-network/bodydfi-ledger/core/types"

type MintInitializedEvent struct {
	MintID         types.MintID   `json:"mint_id"`
	Authority      types.Identity `json:"authority"`
	Name           string         `json:"name"`
	Symbol         string         `json:"symbol"`
	Decimals       uint8          `json:"decimals"`
	TotalSupply    uint64         `json:"total_supply"`
	IsUtilityToken bool           `json:"is_utility_token"`
}

func (MintInitializedEvent) EventName() string { return "MintInitialized" }

type RewardEvent struct {
	MintID           types.MintID   `json:"mint_id"`
	Provider         types.Identity `json:"provider"`
	Amount           uint64         `json:"amount"`
	DataQualityScore uint8          `json:"data_quality_score"`
	Timestamp        int64          `json:"timestamp"`
}

func (RewardEvent) EventName() string { return "Reward" }

type TransferEvent struct {
	MintID types.MintID   `json:"mint_id"`
	From   types.Identity `json:"from"`
	To     types.Identity `json:"to"`
	Amount uint64         `json:"amount"`
}

func (TransferEvent) EventName() string { return "Transfer" }

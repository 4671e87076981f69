package usecase

import (
	"github.com/gaze-network/bodydfi-ledger/modules/token/datagateway"
)

type Usecase struct {
	tokenDg datagateway.TokenDataGateway
}

func New(tokenDg datagateway.TokenDataGateway) *Usecase {
	return &Usecase{
		tokenDg: tokenDg,
	}
}

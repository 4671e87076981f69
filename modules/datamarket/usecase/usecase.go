package usecase

import (
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/datagateway"
)

type Usecase struct {
	datamarketDg datagateway.DatamarketDataGateway
}

func New(datamarketDg datagateway.DatamarketDataGateway) *Usecase {
	return &Usecase{
		datamarketDg: datamarketDg,
	}
}

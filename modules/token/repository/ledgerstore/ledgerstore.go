package ledgerstore

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
)

var _ datagateway.TokenDataGateway = (*Repository)(nil)

type Repository struct {
	store  ledger.Store
	tokens ledger.TokenProgram
	tx     ledger.Tx
}

func NewRepository(store ledger.Store, tokens ledger.TokenProgram) *Repository {
	return &Repository{
		store:  store,
		tokens: tokens,
	}
}

func MintKey(mintID types.MintID) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceTokenMint, mintID.String())
}

func (r *Repository) reader() ledger.Reader {
	if r.tx != nil {
		return r.tx
	}
	return r.store
}

func (r *Repository) writer() (ledger.Tx, error) {
	if r.tx == nil {
		return nil, errors.Wrap(errs.InternalError, "write requires a transaction")
	}
	return r.tx, nil
}

func (r *Repository) GetMint(ctx context.Context, mintID types.MintID) (*entity.TokenMintState, error) {
	mint, err := ledger.Get[entity.TokenMintState](ctx, r.reader(), MintKey(mintID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mint %q", mintID)
	}
	return mint, nil
}

func (r *Repository) GetMints(ctx context.Context) ([]*entity.TokenMintState, error) {
	mints, err := ledger.List[entity.TokenMintState](ctx, r.reader(), ledger.Prefix(ledger.NamespaceTokenMint))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mints")
	}
	return mints, nil
}

func (r *Repository) GetBalance(ctx context.Context, mintID types.MintID, owner types.Identity) (uint64, error) {
	balance, err := r.tokens.BalanceOf(ctx, r.reader(), mintID, owner)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return balance, nil
}

func (r *Repository) CreateMint(ctx context.Context, mint *entity.TokenMintState) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := ledger.Create(ctx, tx, MintKey(mint.MintID), mint); err != nil {
		return errors.Wrapf(err, "failed to create mint %q", mint.MintID)
	}
	return nil
}

func (r *Repository) UpdateMint(ctx context.Context, mint *entity.TokenMintState) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := ledger.Update(ctx, tx, MintKey(mint.MintID), mint); err != nil {
		return errors.Wrapf(err, "failed to update mint %q", mint.MintID)
	}
	return nil
}

func (r *Repository) MintTo(ctx context.Context, mintID types.MintID, owner types.Identity, amount uint64) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.tokens.Mint(ctx, tx, mintID, owner, amount))
}

func (r *Repository) Transfer(ctx context.Context, mintID types.MintID, from, to types.Identity, amount uint64) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.tokens.Transfer(ctx, tx, mintID, from, to, amount))
}

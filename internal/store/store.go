// Package store opens the ledger.Store backend selected by configuration.
package store

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/postgres"
	"github.com/gaze-network/bodydfi-ledger/internal/store/badgerstore"
	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/gaze-network/bodydfi-ledger/internal/store/pgstore"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendBadger   Backend = "badger"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	Backend  Backend            `mapstructure:"backend"` // Default is memory
	Badger   badgerstore.Config `mapstructure:"badger"`
	Postgres postgres.Config    `mapstructure:"postgres"`
}

// New opens the configured backend. Closing the returned store also releases
// any connection pool it owns.
func New(ctx context.Context, conf Config) (ledger.Store, error) {
	backend := Backend(strings.ToLower(string(conf.Backend)))
	if backend == "" {
		backend = BackendMemory
	}
	ctx = logger.WithContext(ctx, slogx.String("package", "store"), slogx.String("backend", string(backend)))

	switch backend {
	case BackendMemory:
		logger.WarnContext(ctx, "Using in-memory ledger store, records will be lost on shutdown")
		return inmem.New(), nil
	case BackendBadger:
		s, err := badgerstore.New(ctx, conf.Badger)
		if err != nil {
			return nil, errors.Wrap(err, "can't open badger store")
		}
		logger.InfoContext(ctx, "Opened badger ledger store", slogx.String("path", conf.Badger.Path))
		return s, nil
	case BackendPostgres:
		pool, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "can't create postgres connection pool")
		}
		logger.InfoContext(ctx, "Connected to postgres ledger store")
		return &poolStore{Store: pgstore.New(pool), close: pool.Close}, nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "store backend %q", conf.Backend)
	}
}

type poolStore struct {
	*pgstore.Store
	close func()
}

func (s *poolStore) Close() error {
	s.close()
	return nil
}

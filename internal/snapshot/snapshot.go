// Package snapshot exports ledger namespaces as parquet files for offline analysis.
package snapshot

import (
	"cmp"
	"context"
	"path"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/gaze-network/bodydfi-ledger/pkg/parquetutils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Row is one ledger record. Value holds the record's canonical JSON encoding.
type Row struct {
	Namespace string `parquet:"name=namespace, type=BYTE_ARRAY, convertedtype=UTF8"`
	Key       string `parquet:"name=key, type=BYTE_ARRAY, convertedtype=UTF8"`
	Value     string `parquet:"name=value, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

type File struct {
	Namespace ledger.Namespace
	Key       string
	Records   int
}

type Result struct {
	RunID string
	Files []File
}

// Beginner opens the transaction every namespace of one export is read through.
type Beginner interface {
	Begin(ctx context.Context) (ledger.Tx, error)
}

type Exporter struct {
	store    Beginner
	uploader Uploader
	prefix   string
}

func NewExporter(store Beginner, uploader Uploader, prefix string) *Exporter {
	return &Exporter{
		store:    store,
		uploader: uploader,
		prefix:   prefix,
	}
}

// Export writes one parquet file per namespace under <prefix>/<run id>/. Empty namespaces are skipped.
// All namespaces are read in a single transaction, so the files of one run describe the same ledger state.
// The transaction is released before any file is uploaded.
func (e *Exporter) Export(ctx context.Context, namespaces []ledger.Namespace) (*Result, error) {
	runID := uuid.NewString()
	ctx = logger.WithContext(ctx,
		slogx.String("package", "snapshot"),
		slogx.String("run_id", runID),
	)

	records, err := e.read(ctx, namespaces)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var (
		mu    sync.Mutex
		files []File
	)
	eg, ectx := errgroup.WithContext(ctx)
	for _, ns := range namespaces {
		ns := ns
		eg.Go(func() error {
			file, err := e.exportNamespace(ectx, runID, ns, records[ns])
			if err != nil {
				return errors.Wrapf(err, "failed to export namespace %q", ns)
			}
			if file == nil {
				return nil
			}
			mu.Lock()
			files = append(files, *file)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	logger.InfoContext(ctx, "Ledger snapshot exported", slogx.Int("files", len(files)))
	return &Result{RunID: runID, Files: sortFiles(files)}, nil
}

func (e *Exporter) read(ctx context.Context, namespaces []ledger.Namespace) (map[ledger.Namespace][]ledger.Record, error) {
	tx, err := e.store.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin read transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "Failed to release read transaction", slogx.Error(err))
		}
	}()

	records := make(map[ledger.Namespace][]ledger.Record, len(namespaces))
	for _, ns := range namespaces {
		nsRecords, err := tx.Scan(ctx, ledger.Prefix(ns))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan namespace %q", ns)
		}
		records[ns] = nsRecords
	}
	return records, nil
}

func (e *Exporter) exportNamespace(ctx context.Context, runID string, ns ledger.Namespace, records []ledger.Record) (*File, error) {
	if len(records) == 0 {
		logger.DebugContext(ctx, "Namespace is empty, skipped", slogx.String("namespace", string(ns)))
		return nil, nil
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, Row{
			Namespace: string(ns),
			Key:       record.Key.String(),
			Value:     string(record.Value),
		})
	}
	data, err := Encode(rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	key := path.Join(e.prefix, runID, string(ns)+".parquet")
	if err := e.uploader.Upload(ctx, key, data); err != nil {
		return nil, errors.Wrapf(err, "failed to upload %s", key)
	}
	logger.DebugContext(ctx, "Namespace exported",
		slogx.String("namespace", string(ns)),
		slogx.String("key", key),
		slogx.Int("records", len(rows)),
	)
	return &File{Namespace: ns, Key: key, Records: len(rows)}, nil
}

func Encode(rows []Row) ([]byte, error) {
	data, err := parquetutils.WriteAll(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode parquet")
	}
	return data, nil
}

func Decode(data []byte) ([]Row, error) {
	rows, err := parquetutils.ReadAll[Row](parquetutils.NewBufferFile(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode parquet")
	}
	return rows, nil
}

func sortFiles(files []File) []File {
	slices.SortFunc(files, func(a, b File) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return files
}

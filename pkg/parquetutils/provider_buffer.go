// nolint: wrapcheck
package parquetutils

import (
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/source"
)

var _ source.ParquetFile = (*BufferFile)(nil)

// BufferFile is an in-memory parquet file, used both to encode snapshots and to read them back.
type BufferFile struct {
	underlying *parquetbuffer.BufferFile
}

// NewBufferFile creates new in memory parquet buffer from the given bytes.
// It uses the provided slice as its buffer.
func NewBufferFile(s []byte) *BufferFile {
	return &BufferFile{
		underlying: parquetbuffer.NewBufferFileFromBytesNoAlloc(s),
	}
}

// NewWriteBufferFile creates an empty in memory parquet buffer to write into.
func NewWriteBufferFile() *BufferFile {
	return &BufferFile{
		underlying: parquetbuffer.NewBufferFile(),
	}
}

func (bf *BufferFile) Create(string) (source.ParquetFile, error) {
	return NewWriteBufferFile(), nil
}

func (bf *BufferFile) Open(string) (source.ParquetFile, error) {
	return NewBufferFile(bf.Bytes()), nil
}

func (bf *BufferFile) Seek(offset int64, whence int) (int64, error) {
	return bf.underlying.Seek(offset, whence)
}

func (bf *BufferFile) Read(p []byte) (n int, err error) {
	return bf.underlying.Read(p)
}

func (bf *BufferFile) Write(p []byte) (n int, err error) {
	return bf.underlying.Write(p)
}

// Close is a no-op for a memory buffer.
func (bf *BufferFile) Close() error {
	return bf.underlying.Close()
}

func (bf *BufferFile) Bytes() []byte {
	return bf.underlying.Bytes()
}

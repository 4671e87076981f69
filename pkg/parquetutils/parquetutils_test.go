package parquetutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Count int64  `parquet:"name=count, type=INT64"`
}

func TestWriteReadAll(t *testing.T) {
	records := []sample{{Name: "motion", Count: 3}, {Name: "pressure", Count: 0}}

	data, err := WriteAll(records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := ReadAll[sample](NewBufferFile(data))
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_ValueAndScan(t *testing.T) {
	v, err := StringSlice{"lights", "showers"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["lights","showers"]`, v)

	var fromString StringSlice
	require.NoError(t, fromString.Scan(`["parking"]`))
	assert.Equal(t, StringSlice{"parking"}, fromString)

	var fromBytes StringSlice
	require.NoError(t, fromBytes.Scan([]byte(`[]`)))
	assert.Empty(t, fromBytes)

	var bad StringSlice
	assert.Error(t, bad.Scan(42))
}

func TestPage(t *testing.T) {
	offset, limit := Page(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	offset, limit = Page(3, 20)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)

	_, limit = Page(1, 500)
	assert.Equal(t, 100, limit)
}

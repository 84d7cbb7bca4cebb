package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	id1 := ID("base64")
	id2 := ID("base64")
	require.Equal(t, id1, id2)
}

func TestID_DistinctNames(t *testing.T) {
	require.NotEqual(t, ID("base64"), ID("base64url"))
	require.NotEqual(t, ID("base32"), ID("base32hex"))
}

func TestID_EmptyString(t *testing.T) {
	// xxHash64 of the empty string is a fixed, non-zero constant.
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
}

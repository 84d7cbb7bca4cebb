package collision

import (
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("base64", 1))
	require.NoError(t, tr.Track("base32", 2))
	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{"base64", "base32"}, tr.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tr := NewTracker()
	err := tr.Track("", 1)
	require.ErrorIs(t, err, errs.ErrInvalidSchemeName)
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("base64", 1))

	err := tr.Track("base64", 1)
	require.ErrorIs(t, err, errs.ErrSchemeRegistered)
	require.Equal(t, 1, tr.Count())
}

func TestTracker_Track_HashCollision(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("base64", 42))

	// Different name, same hash.
	err := tr.Track("base32", 42)
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.Equal(t, 1, tr.Count())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("base64", 1))

	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.Empty(t, tr.Names())

	// Hash 1 is usable again after reset.
	require.NoError(t, tr.Track("hex", 1))
}

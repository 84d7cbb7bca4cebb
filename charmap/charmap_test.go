package charmap

import (
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestLatin1_RoundTrip(t *testing.T) {
	// Every defined byte round-trips through its rune.
	for b := 0; b < 256; b++ {
		if !Latin1.Valid(byte(b)) {
			continue
		}

		r, err := Latin1.DecodeByte(byte(b))
		require.NoError(t, err)

		got, err := Latin1.EncodeRune(r)
		require.NoError(t, err)
		require.Equal(t, byte(b), got)
	}
}

func TestLatin6_RoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		if !Latin6.Valid(byte(b)) {
			continue
		}

		r, err := Latin6.DecodeByte(byte(b))
		require.NoError(t, err)

		got, err := Latin6.EncodeRune(r)
		require.NoError(t, err)
		require.Equal(t, byte(b), got)
	}
}

func TestLatin1_IdentityPrefix(t *testing.T) {
	// Latin-1 maps 0xA0-0xFF onto the same Unicode code points.
	s, err := Latin1.Decode([]byte{0xE9, 0xE8, 0xFC})
	require.NoError(t, err)
	require.Equal(t, "éèü", s)
}

func TestLatin6_NordicLetters(t *testing.T) {
	s, err := Latin6.Decode([]byte{0xA1, 0xAA, 0xFF})
	require.NoError(t, err)
	require.Equal(t, "ĄŠĸ", s)

	data, err := Latin6.Encode("ĄŠĸ")
	require.NoError(t, err)
	require.Equal(t, []byte{0xA1, 0xAA, 0xFF}, data)
}

func TestDecode_UndefinedByte(t *testing.T) {
	for _, cm := range []*Charmap{Latin1, Latin6} {
		for b := 0x80; b < 0xA0; b++ {
			require.False(t, cm.Valid(byte(b)), "%s 0x%02x", cm.Name(), b)

			_, err := cm.DecodeByte(byte(b))
			require.ErrorIs(t, err, errs.ErrUndefinedByte, "%s 0x%02x", cm.Name(), b)
		}

		// No partial result on failure.
		_, err := cm.Decode([]byte{'a', 0x90, 'b'})
		require.ErrorIs(t, err, errs.ErrUndefinedByte)
	}
}

func TestDecode_ControlCodesValid(t *testing.T) {
	// ASCII control codes are undefined by the standard but treated as valid.
	s, err := Latin6.Decode([]byte{0x00, 0x09, 0x1F, 0x7F})
	require.NoError(t, err)
	require.Equal(t, "\x00\t\x1f\x7f", s)
}

func TestEncode_UnmappableRune(t *testing.T) {
	_, err := Latin6.Encode("Ω")
	require.ErrorIs(t, err, errs.ErrUnmappableRune)

	// š is in Latin-6 but not Latin-1.
	_, err = Latin1.Encode("š")
	require.ErrorIs(t, err, errs.ErrUnmappableRune)

	_, err = Latin1.EncodeRune('中')
	require.ErrorIs(t, err, errs.ErrUnmappableRune)
}

func TestEncode_ASCII(t *testing.T) {
	data, err := Latin1.Encode("hello")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
}

func TestCharmap_Classification(t *testing.T) {
	require.True(t, Latin6.IsAlphabetic('A'))
	require.True(t, Latin6.IsAlphabetic('z'))
	require.True(t, Latin6.IsAlphabetic(0xA1)) // Ą
	require.True(t, Latin6.IsAlphabetic(0xFF)) // ĸ

	require.False(t, Latin6.IsAlphabetic(0xA7)) // §
	require.False(t, Latin6.IsAlphabetic(0xB0)) // °
	require.False(t, Latin6.IsAlphabetic(0xBD)) // ―
	require.False(t, Latin6.IsAlphabetic(0xAD)) // soft hyphen
	require.False(t, Latin6.IsAlphabetic(0x90)) // undefined

	require.True(t, Latin6.IsControl(0x00))
	require.True(t, Latin6.IsControl(0x7F))
	require.False(t, Latin6.IsControl('A'))

	require.True(t, Latin6.IsDigit('0'))
	require.True(t, Latin6.IsDigit('9'))
	require.False(t, Latin6.IsDigit('a'))
}

func TestCharmap_Name(t *testing.T) {
	require.Equal(t, "ISO-8859-1", Latin1.Name())
	require.Equal(t, "ISO-8859-10", Latin6.Name())
}

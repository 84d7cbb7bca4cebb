package basen

import (
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestPrebuilt_Base64(t *testing.T) {
	require.Equal(t, "TWFu", Base64.EncodeToString([]byte("Man")))
	require.Equal(t, "TQ==", Base64.EncodeToString([]byte("M")))

	got, err := Base64.DecodeString("Zm9vYmFy")
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)
}

func TestPrebuilt_Base64URL(t *testing.T) {
	// 0xFB 0xEF 0xBE exercises the '-' and '_' symbols.
	require.Equal(t, "----", Base64URL.EncodeToString([]byte{0xFB, 0xEF, 0xBE}))
	require.Equal(t, "____", Base64URL.EncodeToString([]byte{0xFF, 0xFF, 0xFF}))

	// The standard alphabet rejects URL-safe symbols and vice versa.
	_, err := Base64.DecodeString("----")
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
}

func TestPrebuilt_Base64RawURL(t *testing.T) {
	require.Equal(t, "TQ", Base64RawURL.EncodeToString([]byte("M")))

	got, err := Base64RawURL.DecodeString("TQ")
	require.NoError(t, err)
	require.Equal(t, []byte("M"), got)

	// No padding is ever accepted under the no-pad policy.
	_, err = Base64RawURL.DecodeString("TQ==")
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
}

func TestPrebuilt_Base32(t *testing.T) {
	require.Equal(t, "MZXW6YTBOI======", Base32.EncodeToString([]byte("foobar")))

	got, err := Base32.DecodeString("MZXW6YTBOI======")
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)
}

func TestPrebuilt_Base32Hex(t *testing.T) {
	require.Equal(t, "CPNMUOJ1E8======", Base32Hex.EncodeToString([]byte("foobar")))
}

func TestPrebuilt_Base16(t *testing.T) {
	require.Equal(t, "666F6F626172", Base16.EncodeToString([]byte("foobar")))

	// Case-insensitive decode.
	got, err := Base16.DecodeString("666f6f626172")
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)
}

func TestPrebuilt_Base8(t *testing.T) {
	// One byte: 8 bits → 3 octal symbols (3+3+2 with zero fill), 5 pads.
	require.Equal(t, "524=====", Base8.EncodeToString([]byte{0xAA}))

	got, err := Base8.DecodeString("524=====")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA}, got)
}

func TestPrebuilt_Base2(t *testing.T) {
	require.Equal(t, "01001101", Base2.EncodeToString([]byte{0x4D}))

	got, err := Base2.DecodeString("01001101")
	require.NoError(t, err)
	require.Equal(t, []byte{0x4D}, got)
}

func TestPrebuilt_RoundTrip(t *testing.T) {
	codecs := map[string]interface {
		Encode([]byte) []byte
		Decode([]byte) ([]byte, error)
	}{
		"base64":       Base64,
		"base64url":    Base64URL,
		"base64rawurl": Base64RawURL,
		"base32":       Base32,
		"base32hex":    Base32Hex,
		"base16":       Base16,
		"base8":        Base8,
		"base2":        Base2,
	}

	for name, c := range codecs {
		for n := 0; n <= 11; n++ {
			src := make([]byte, n)
			for i := range src {
				src[i] = byte(i*59 + n)
			}

			got, err := c.Decode(c.Encode(src))
			require.NoError(t, err, "%s n=%d", name, n)
			require.Equal(t, src, got, "%s n=%d", name, n)
		}
	}
}

func TestSchemeID_Deterministic(t *testing.T) {
	require.Equal(t, SchemeID("base64"), SchemeID("base64"))
	require.NotEqual(t, SchemeID("base64"), SchemeID("base32"))
}

func TestDefaultRegistry_Builtins(t *testing.T) {
	require.Equal(t,
		[]string{"base64", "base64url", "base64rawurl", "base32", "base32hex", "base16", "base8", "base2"},
		Schemes())

	c, err := Lookup("base64")
	require.NoError(t, err)
	require.Same(t, Base64, c)

	c, err = LookupID(SchemeID("base16"))
	require.NoError(t, err)
	require.Same(t, Base16, c)
}

func TestDefaultRegistry_UnknownScheme(t *testing.T) {
	_, err := Lookup("base58")
	require.ErrorIs(t, err, errs.ErrSchemeNotFound)

	_, err = EncodeToString("base58", []byte("x"))
	require.ErrorIs(t, err, errs.ErrSchemeNotFound)

	_, err = DecodeString("base58", "xx")
	require.ErrorIs(t, err, errs.ErrSchemeNotFound)
}

func TestEncodeToString_ByName(t *testing.T) {
	text, err := EncodeToString("base32", []byte("foobar"))
	require.NoError(t, err)
	require.Equal(t, "MZXW6YTBOI======", text)

	got, err := DecodeString("base32", text)
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)
}

package charset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NamedEncodings(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{name: "utf8_lowercase", selector: "utf-8"},
		{name: "utf8_uppercase", selector: "UTF-8"},
		{name: "latin1", selector: "ISO-8859-1"},
		{name: "windows1252", selector: "windows-1252"},
		{name: "unknown_name", selector: "definitely-not-an-encoding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Resolve(context.Background(), tt.selector, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.selector, cs.Name())
		})
	}
}

func TestResolve_AutoDetect(t *testing.T) {
	// Pure ASCII content must resolve to an ASCII-compatible encoding that
	// round-trips the input identically.
	raw := []byte("CREATE TABLE Customers (customer_id INT);")
	cs, err := Resolve(context.Background(), AutoDetect, raw)
	require.NoError(t, err)
	require.NotEmpty(t, cs.Name())

	text, err := cs.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, string(raw), text)

	out, err := cs.Encode(text)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestResolve_AutoDetectUTF8Multibyte(t *testing.T) {
	raw := []byte("CREATE TABLE Stéphane (prénom VARCHAR(255)); -- café")
	cs, err := Resolve(context.Background(), AutoDetect, raw)
	require.NoError(t, err)

	text, err := cs.Decode(raw)
	require.NoError(t, err)
	assert.Contains(t, text, "café")
}

func TestCharset_DecodeLossy(t *testing.T) {
	cs, err := Resolve(context.Background(), "utf-8", nil)
	require.NoError(t, err)

	// 0xFF is never valid in UTF-8; the decoder substitutes U+FFFD instead
	// of failing the run.
	text, err := cs.Decode([]byte{'i', 'd', 0xFF, '!'})
	require.NoError(t, err)
	assert.True(t, strings.ContainsRune(text, '�'))
	assert.True(t, strings.HasPrefix(text, "id"))
	assert.True(t, strings.HasSuffix(text, "!"))
}

func TestCharset_RoundTripLatin1(t *testing.T) {
	cs, err := Resolve(context.Background(), "ISO-8859-1", nil)
	require.NoError(t, err)

	// 0xE9 is é in latin-1
	text, err := cs.Decode([]byte{0xE9})
	require.NoError(t, err)
	assert.Equal(t, "é", text)

	raw, err := cs.Encode(text)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE9}, raw)
}

func TestCharset_EncodeUnrepresentable(t *testing.T) {
	cs, err := Resolve(context.Background(), "ISO-8859-1", nil)
	require.NoError(t, err)

	// CJK has no latin-1 representation; strict encoding must fail.
	_, err = cs.Encode("名前")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding output")
}

package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with accented characters passes through unchanged.
	input := "Label,Price\nEssence Cloisonné Heart Opal,135.00\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// Windows-1252 encoded "Cloisonné,135.00\n" (é = 0xE9).
	raw := []byte{
		'C', 'l', 'o', 'i', 's', 'o', 'n', 'n', 0xE9, ',',
		'1', '3', '5', '.', '0', '0', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(raw))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Cloisonné,135.00\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// The UTF-8 BOM (0xEF 0xBB 0xBF) is stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Label,Price\nMazri,795.00\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Label,Price\nMazri,795.00\n", string(got))
}

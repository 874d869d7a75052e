package document_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/document"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	renderer := document.NewRenderer(filepath.Join(dir, "Filled Forms"))

	data := testData(t)
	maps := document.FieldMaps(data)

	path, err := renderer.Render(document.FormPersonalInformation, data, maps[document.FormPersonalInformation])
	require.NoError(t, err)

	assert.Equal(t, "Mary Doyle - Personal Information Sheet.pdf", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(content) > 0)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestWriteValueLog(t *testing.T) {
	dir := t.TempDir()

	data := testData(t)
	maps := document.FieldMaps(data)

	path, err := document.WriteValueLog(dir, time.Date(2026, time.March, 3, 10, 30, 0, 0, time.UTC), maps)
	require.NoError(t, err)

	assert.Equal(t, "values-20260303-103000.log", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Personal Information Sheet")
	assert.Contains(t, text, "First name: Mary")
	assert.NotContains(t, text, "Occupation:")
}

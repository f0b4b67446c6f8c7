package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"textplay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not really a font"), 0o644))
	return path
}

func TestResolveFindsFileByAlias(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "truetype/Times_New_Roman.ttf")
	writeFont(t, dir, "Arial.OTF")
	writeFont(t, dir, "Geneva.txt")

	r := NewResolver([]string{dir}, nil)

	face := r.Resolve(models.TimesRoman)
	require.NotNil(t, face.Source)
	assert.Equal(t, "Times_New_Roman.ttf", face.Source.Name())

	face = r.Resolve(models.Arial)
	require.NotNil(t, face.Source)

	face = r.Resolve(models.Geneva)
	assert.Nil(t, face.Source, "non-font extensions are skipped")
}

func TestResolveFallsBackToTextStyle(t *testing.T) {
	r := NewResolver([]string{filepath.Join(t.TempDir(), "absent")}, nil)

	courier := r.Resolve(models.Courier)
	assert.Nil(t, courier.Source)
	assert.True(t, courier.Style.Monospace)

	assert.True(t, r.Resolve(models.Zapfino).Style.Italic)
	assert.False(t, r.Resolve(models.Helvetica).Style.Monospace)
}

func TestResolveIsCached(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver([]string{dir}, nil)

	assert.Nil(t, r.Resolve(models.Futura).Source)

	writeFont(t, dir, "Futura.ttf")
	assert.Nil(t, r.Resolve(models.Futura).Source, "misses are cached too")
}

func TestNormalise(t *testing.T) {
	assert.Equal(t, "timesnewroman", normalise("Times New-Roman"))
	assert.Equal(t, "couriernew", normalise("Courier_New"))
}

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBundle_LoadDirAndTranslate(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "en.yaml", "preview.present: Present\npreview.empty_value: \"-\"\n")
	writeBundleFile(t, dir, "de.yaml", "preview.present: Aktuell\n")

	bundle := NewBundle("en")
	require.NoError(t, bundle.LoadDir(dir))

	assert.Equal(t, "Present", bundle.Translate("en", "preview.present"))
	assert.Equal(t, "Aktuell", bundle.Translate("de", "preview.present"))
}

func TestBundle_FallsBackToDefaultLocale(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "en.yaml", "preview.present: Present\n")

	bundle := NewBundle("en")
	require.NoError(t, bundle.LoadDir(dir))

	assert.Equal(t, "Present", bundle.Translate("fr", "preview.present"))
}

func TestBundle_MissingKeyEchoesBack(t *testing.T) {
	bundle := NewBundle("en")
	assert.Equal(t, "Other", bundle.Translate("en", "Other"), "unknown keys echo back unchanged")
}

func TestBundle_TranslatorBindsLocale(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "de.yaml", "preview.present: Aktuell\n")

	bundle := NewBundle("en")
	require.NoError(t, bundle.LoadDir(dir))

	translate := bundle.Translator("de")
	assert.Equal(t, "Aktuell", translate("preview.present"))
}

func TestBundle_LoadFileReplacesLocale(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "en.yaml", "greeting: hello\n")

	bundle := NewBundle("en")
	require.NoError(t, bundle.LoadDir(dir))
	require.Equal(t, "hello", bundle.Translate("en", "greeting"))

	writeBundleFile(t, dir, "en.yaml", "greeting: hi\n")
	require.NoError(t, bundle.LoadFile(filepath.Join(dir, "en.yaml")))
	assert.Equal(t, "hi", bundle.Translate("en", "greeting"))
}

func TestBundle_NonYAMLFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, "notes.txt", "not yaml")
	writeBundleFile(t, dir, "en.yaml", "k: v\n")

	bundle := NewBundle("en")
	require.NoError(t, bundle.LoadDir(dir))
	assert.Equal(t, []string{"en"}, bundle.Locales())
}

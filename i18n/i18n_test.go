package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocales = fstest.MapFS{
	"locales/active.pt.toml": {Data: []byte("[Lap]\nother = \"Volta\"\n\n[LapRow]\nother = \"Volta {{.Number}}\"\n")},
	"locales/active.es.toml": {Data: []byte("[Stop]\nother = \"Parar\"\n")},
	"locales/readme.txt":     {Data: []byte("not a message file")},
}

func TestDefaultsAreEnglish(t *testing.T) {
	require.NoError(t, Init(testLocales, "locales", "en"))

	assert.Equal(t, "en", GetLang())
	assert.Equal(t, "Lap", T("Lap"))
	assert.Equal(t, "Start", T("Start"))
	assert.Equal(t, "Lap 3", LapLabel(3))
}

func TestForcedLanguageLoadsMessages(t *testing.T) {
	require.NoError(t, Init(testLocales, "locales", "pt_BR"))
	defer SetLang("en")

	assert.Equal(t, "pt", GetLang())
	assert.Equal(t, "Volta", T("Lap"))
	assert.Equal(t, "Volta 2", LapLabel(2))
	// not translated in the file, falls back to english
	assert.Equal(t, "Reset", T("Reset"))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(LangEnv, "es")
	require.NoError(t, Init(testLocales, "locales", ""))
	defer SetLang("en")

	assert.Equal(t, "es", GetLang())
	assert.Equal(t, "Parar", T("Stop"))
}

func TestUnsupportedLanguageFallsBack(t *testing.T) {
	SetLang("de-DE")
	assert.Equal(t, "en", GetLang())
	SetLang("C")
	assert.Equal(t, "en", GetLang())
}

func TestUnknownIDReturnsID(t *testing.T) {
	SetLang("en")
	assert.Equal(t, "Nope", T("Nope"))
}

func TestBrokenMessageFileIsReported(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/active.ru.toml": {Data: []byte("[Lap\nother=")},
		"locales/active.pt.toml": {Data: []byte("[Lap]\nother = \"Volta\"\n")},
	}
	err := Init(fsys, "locales", "pt")
	defer SetLang("en")

	assert.Error(t, err)
	assert.Equal(t, "Volta", T("Lap"))
}

func TestMissingDirIsAnError(t *testing.T) {
	assert.Error(t, Init(fstest.MapFS{}, "locales", "en"))
}

// Package i18n localizes the handful of strings the stopwatch shows. English
// is built in; other languages come from TOML message files loaded with
// Init.
package i18n

import (
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// LangEnv forces a language regardless of the system locale.
const LangEnv = "LAPWATCH_LANG"

var supported = []string{"en", "pt", "es", "ru"}

var defaults = map[string]*goi18n.Message{
	"Lap":    {ID: "Lap", Other: "Lap"},
	"LapRow": {ID: "LapRow", Other: "Lap {{.Number}}"},
	"Reset":  {ID: "Reset", Other: "Reset"},
	"Start":  {ID: "Start", Other: "Start"},
	"Stop":   {ID: "Stop", Other: "Stop"},
}

var (
	lang      = "en"
	bundle    = newBundle()
	localizer = goi18n.NewLocalizer(bundle, lang)
)

func newBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return b
}

// Init loads every *.toml message file under dir in fsys and selects the
// language. forced wins over LAPWATCH_LANG, which wins over the system
// locale. A message file that fails to parse is returned as an error; the
// remaining files are still loaded.
func Init(fsys fs.FS, dir, forced string) error {
	b := newBundle()

	var firstErr error
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrapf(err, "read locales dir %s", dir)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		p := path.Join(dir, e.Name())
		if _, err := b.LoadMessageFileFS(fsys, p); err != nil {
			log.Printf("Failed to load messages %s: %v", p, err)
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "load messages %s", p)
			}
		}
	}

	bundle = b
	SetLang(detectLang(forced))
	return firstErr
}

// SetLang switches the active language. Unsupported languages fall back to
// English.
func SetLang(l string) {
	lang = normalize(l)
	localizer = goi18n.NewLocalizer(bundle, lang)
	log.Printf("Language set to: %s", lang)
}

func detectLang(forced string) string {
	if forced = strings.TrimSpace(forced); forced != "" {
		return forced
	}
	if env := strings.TrimSpace(os.Getenv(LangEnv)); env != "" {
		log.Printf("%s is set to: '%s'", LangEnv, env)
		return env
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		return "en"
	}
	log.Printf("Detected user locale: %s", userLocales[0])
	return userLocales[0]
}

func normalize(l string) string {
	tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if base.String() == s {
			return s
		}
	}
	return "en"
}

// T translates a message id, returning the id itself if unknown.
func T(id string) string {
	return localize(id, nil)
}

// LapLabel returns the row label for lap n, e.g. "Lap 3".
func LapLabel(n int) string {
	return localize("LapRow", map[string]interface{}{"Number": n})
}

func localize(id string, data map[string]interface{}) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if def, ok := defaults[id]; ok {
		cfg.DefaultMessage = def
	}
	// A fallback to the default message comes back with a not-found error.
	out, _ := localizer.Localize(cfg)
	if out == "" {
		return id
	}
	return out
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}

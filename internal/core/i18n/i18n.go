// Package i18n resolves UI labels by key from embedded locale catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the fallback locale for missing messages.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds messages for every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
}

var defaultBundle = mustLoad()

// Default returns the bundle built from the embedded catalogs.
func Default() *Bundle {
	return defaultBundle
}

// Load reads every locales/*.yaml file in fsys and registers the messages with
// x/text/message.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		want := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if file.Locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match filename", p, file.Locale)
		}
		if _, exists := b.locales[file.Locale]; exists {
			return nil, fmt.Errorf("catalog %s: duplicate locale %q", p, file.Locale)
		}

		b.locales[file.Locale] = file.Messages
	}

	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	if err := b.register(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) register() error {
	for locale, messages := range b.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether locale has a catalog.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[locale]
	return ok
}

// Locales returns the sorted list of available locales.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for l := range b.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Localizer returns a lookup for locale. Unknown locales use BaseLocale.
func (b *Bundle) Localizer(locale string) *Localizer {
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	return &Localizer{
		bundle:   b,
		locale:   locale,
		printer:  message.NewPrinter(language.MustParse(locale)),
		fallback: message.NewPrinter(language.MustParse(BaseLocale)),
	}
}

// Localizer looks up labels for one locale.
type Localizer struct {
	bundle   *Bundle
	locale   string
	printer  *message.Printer
	fallback *message.Printer
}

// Locale returns the resolved locale.
func (l *Localizer) Locale() string { return l.locale }

// T returns the label for key formatted with args. Keys missing from the
// locale fall back to BaseLocale; keys missing everywhere are returned as is.
func (l *Localizer) T(key string, args ...any) string {
	if _, ok := l.bundle.locales[l.locale][key]; ok {
		return l.printer.Sprintf(key, args...)
	}
	if _, ok := l.bundle.locales[BaseLocale][key]; ok {
		return l.fallback.Sprintf(key, args...)
	}
	return key
}

func mustLoad() *Bundle {
	b, err := Load(localesFS)
	if err != nil {
		panic(err)
	}
	return b
}

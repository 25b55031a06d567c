package i18n

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/vivahlabs/biodatakit/pkg/validator"
)

//go:embed translations/*.yaml
var catalogFS embed.FS

// DefaultLanguage is the fallback for missing catalogs and keys.
const DefaultLanguage = "en"

// Translator renders validation messages from embedded catalogs. It is
// immutable after New and safe for concurrent use.
type Translator struct {
	catalogs map[string]map[string]string
	langs    []string
	matcher  language.Matcher
}

// New loads every embedded catalog. The catalogs ship with the binary, so
// an error here means a broken build, not bad user input.
func New() (*Translator, error) {
	entries, err := catalogFS.ReadDir("translations")
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalogs: %w", err)
	}

	t := &Translator{catalogs: make(map[string]map[string]string, len(entries))}
	for _, entry := range entries {
		name := entry.Name()
		lang := strings.TrimSuffix(name, filepath.Ext(name))

		content, err := catalogFS.ReadFile("translations/" + name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %s: %w", name, err)
		}
		var catalog map[string]string
		if err := yaml.Unmarshal(content, &catalog); err != nil {
			return nil, fmt.Errorf("i18n: parse catalog %s: %w", name, err)
		}
		t.catalogs[lang] = catalog
	}
	if _, ok := t.catalogs[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("i18n: missing %s catalog", DefaultLanguage)
	}

	// Default language leads so the matcher falls back to it.
	t.langs = append(t.langs, DefaultLanguage)
	for lang := range t.catalogs {
		if lang != DefaultLanguage {
			t.langs = append(t.langs, lang)
		}
	}
	sort.Strings(t.langs[1:])

	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// Languages returns the supported language codes, default first.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.langs...)
}

// Match negotiates the best supported language for the caller's raw
// preferences (BCP 47 tags, best first).
func (t *Translator) Match(preferred ...string) string {
	var tags []language.Tag
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}
	_, idx, _ := t.matcher.Match(tags...)
	return t.langs[idx]
}

// Translate renders the template for key in lang, interpolating
// {placeholder} occurrences from values. Missing languages fall back to the
// default catalog; missing keys return the key itself.
func (t *Translator) Translate(lang, key string, values map[string]any) string {
	template, ok := t.lookup(lang, key)
	if !ok {
		return key
	}
	return interpolate(template, values)
}

// TranslateError localizes one validator error, preferring its translation
// key and falling back to the untranslated message.
func (t *Translator) TranslateError(lang string, verr validator.ValidationError) string {
	if verr.TranslationKey == "" {
		return verr.Message
	}
	template, ok := t.lookup(lang, verr.TranslationKey)
	if !ok {
		return verr.Message
	}
	return interpolate(template, verr.TranslationValues)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if catalog, ok := t.catalogs[lang]; ok {
		if template, ok := catalog[key]; ok {
			return template, true
		}
	}
	if lang != DefaultLanguage {
		if template, ok := t.catalogs[DefaultLanguage][key]; ok {
			return template, true
		}
	}
	return "", false
}

func interpolate(template string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(template, "{") {
		return template
	}
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{"+name+"}", formatValue(value))
	}
	return out
}

func formatValue(v any) string {
	switch value := v.(type) {
	case []string:
		return strings.Join(value, ", ")
	default:
		return fmt.Sprint(value)
	}
}

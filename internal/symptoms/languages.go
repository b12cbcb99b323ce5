package symptoms

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a language the assistant accepts symptoms in
type Language struct {
	// Key is the lowercase English name used by clients, e.g. "hindi"
	Key string
	Tag language.Tag
}

// EnglishName returns the language name in English, e.g. "Hindi"
func (l Language) EnglishName() string {
	return display.English.Languages().Name(l.Tag)
}

// NativeName returns the language name in its own script, e.g. "हिन्दी"
func (l Language) NativeName() string {
	return display.Self.Name(l.Tag)
}

var supportedLanguages = []Language{
	{Key: "english", Tag: language.English},
	{Key: "hindi", Tag: language.Hindi},
	{Key: "tamil", Tag: language.Tamil},
	{Key: "telugu", Tag: language.Telugu},
	{Key: "gujarati", Tag: language.Gujarati},
	{Key: "bengali", Tag: language.Bengali},
	{Key: "marathi", Tag: language.Marathi},
}

// SupportedLanguages returns the accepted languages in display order
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// ParseLanguage accepts a language key ("tamil"), an English name ("Tamil")
// or a BCP 47 tag ("ta", "ta-IN")
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Language{}, ErrLanguageRequired
	}

	key := strings.ToLower(s)
	for _, l := range supportedLanguages {
		if l.Key == key {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, ErrUnsupportedLanguage
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return Language{}, ErrUnsupportedLanguage
	}
	for _, l := range supportedLanguages {
		if supportedBase, _ := l.Tag.Base(); supportedBase == base {
			return l, nil
		}
	}
	return Language{}, ErrUnsupportedLanguage
}

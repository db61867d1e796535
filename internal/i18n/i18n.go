package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves message keys against a single locale's catalog,
// falling back to English and finally to the key itself.
type Translator struct {
	messages map[string]string
}

var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Locale negotiates a Translator from user language preferences, e.g. the
// values of --lang, EXCOPY_LANG or LANG. POSIX locale strings such as
// "de_DE.UTF-8" are accepted. Empty or unknown preferences resolve to
// English.
func Locale(prefs ...string) Translator {
	cleaned := make([]string, 0, len(prefs))
	for _, pref := range prefs {
		if cut, _, found := strings.Cut(pref, "."); found {
			pref = cut
		}
		pref = strings.ReplaceAll(pref, "_", "-")
		if pref != "" {
			cleaned = append(cleaned, pref)
		}
	}
	tag, _ := language.MatchStrings(matcher, cleaned...)
	base, _ := tag.Base()
	switch base.String() {
	case "de":
		return Translator{messages: german}
	default:
		return Translator{messages: english}
	}
}

func (t Translator) T(key string, args ...any) string {
	msg, ok := t.messages[key]
	if !ok {
		msg, ok = english[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Func is the lookup signature handed to collaborators (printer, plugins)
// so they never depend on this package's concrete type.
type Func func(key string, args ...any) string

// Package i18n provides internationalization support using go-i18n.
package i18n

import (
	"embed"
	"encoding/json"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle holds all loaded translations.
var bundle *i18n.Bundle

// Supported language tags
var (
	Russian = language.Russian
	English = language.English
)

func init() {
	bundle = i18n.NewBundle(language.Russian) // Default language
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// Load all locale files
	files := []string{"ru.json", "en.json"}
	for _, f := range files {
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+f)
	}
}

// Localizer creates a localizer for the given language code.
func Localizer(langCode string) *i18n.Localizer {
	tag := FromAcceptLanguage(langCode)
	return i18n.NewLocalizer(bundle, tag.String())
}

// T translates a message ID using the provided localizer.
func T(loc *i18n.Localizer, messageID string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		// Fallback: return the message ID itself
		return messageID
	}
	return msg
}

// TWithData translates a message with template data.
func TWithData(loc *i18n.Localizer, messageID string, data map[string]any) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// FromAcceptLanguage converts the leading Accept-Language code to a language.Tag.
func FromAcceptLanguage(header string) language.Tag {
	code := header
	if i := strings.IndexAny(code, ",;"); i >= 0 {
		code = code[:i]
	}
	code = strings.ToLower(strings.TrimSpace(code))

	switch {
	case strings.HasPrefix(code, "en"):
		return English
	case strings.HasPrefix(code, "ru"):
		return Russian
	default:
		// The site is Russian-first
		return Russian
	}
}

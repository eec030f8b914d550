package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	initOnce      sync.Once
	defaultLocale = "en"
	matcher       language.Matcher
)

type ctxKey struct{}

// Init loads the embedded locale files. Calling it more than once is a no-op.
func Init(defLocale string) {
	initOnce.Do(func() {
		if defLocale != "" {
			defaultLocale = defLocale
		}

		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			zap.L().Fatal("i18n: read locales dir", zap.Error(err))
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				zap.L().Fatal("i18n: read locale file", zap.String("file", e.Name()), zap.Error(err))
			}
			bundle.MustParseMessageFileBytes(data, e.Name())
		}
		matcher = language.NewMatcher(bundle.LanguageTags())
		zap.L().Info("i18n loaded", zap.Int("locales", len(entries)), zap.String("default", defaultLocale))
	})
}

// MatchAcceptLanguage picks the best bundled locale for an Accept-Language header value.
func MatchAcceptLanguage(header string) string {
	Init("")
	if header == "" {
		return defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultLocale
	}
	base, _ := bundle.LanguageTags()[idx].Base()
	return base.String()
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

func LocaleFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
			return v
		}
	}
	return defaultLocale
}

// T translates messageID for the context locale. fallback is returned when the id is unknown.
func T(ctx context.Context, messageID, fallback string, templateData map[string]any) string {
	if messageID == "" {
		return fallback
	}
	Init("")

	l := i18n.NewLocalizer(bundle, LocaleFromContext(ctx), defaultLocale)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		return fallback
	}
	return msg
}

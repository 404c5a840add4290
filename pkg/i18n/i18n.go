package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle  *goi18n.Bundle
	once    sync.Once
	initErr error
)

// Init loads the embedded message files. It is safe to call more than once.
func Init() error {
	once.Do(func() {
		bundle = goi18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
		for _, f := range []string{"locales/active.en.json", "locales/active.es.json"} {
			if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
				initErr = fmt.Errorf("load %s: %w", f, err)
				return
			}
		}
	})
	return initErr
}

// T returns the message for id in the best language of langs, falling back to English and then
// to the id itself.
func T(id string, data map[string]any, langs ...string) string {
	if err := Init(); err != nil {
		return id
	}
	loc := goi18n.NewLocalizer(bundle, langs...)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

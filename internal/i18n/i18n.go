// Package i18n resolves message keys ("auth:login.failed") to localized
// text. The rest of the application only ever produces keys; resolution
// happens at the HTTP boundary against the request's negotiated language.
package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const contextKey = "localizer"

var supported = []language.Tag{
	language.English, // fallback
	language.Vietnamese,
}

var matcher = language.NewMatcher(supported)

// Localizer resolves message keys for one language.
type Localizer struct {
	lang string
}

var fallback = &Localizer{lang: "en"}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) *Localizer {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	return &Localizer{lang: base.String()}
}

// Middleware negotiates the request language and stores a Localizer on the
// gin context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// FromContext returns the request's Localizer, or the English fallback when
// the middleware did not run (tests, background work).
func FromContext(c *gin.Context) *Localizer {
	if v, ok := c.Get(contextKey); ok {
		if loc, ok := v.(*Localizer); ok {
			return loc
		}
	}
	return fallback
}

// T resolves a message key. Unknown keys are returned verbatim so a missing
// translation never hides the underlying message.
func (l *Localizer) T(key string) string {
	if catalog, ok := catalogs[l.lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs["en"][key]; ok {
		return msg
	}
	return key
}

// Tf resolves a message key and substitutes the {{field}} placeholder, used
// by validation messages.
func (l *Localizer) Tf(key, field string) string {
	return strings.ReplaceAll(l.T(key), "{{field}}", field)
}

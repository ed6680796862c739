// Package i18n localizes localetree's own messages with a gettext catalog
// embedded in the binary. Call Init once at startup, then wrap user-facing
// strings in T, or N when the text depends on a count. Missing catalogs and
// missing entries fall back to the English msgid.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Catalogs live at locales/<lang>/LC_MESSAGES/localetree.po.
//
//go:embed all:locales
var locales embed.FS

const domain = "localetree"

var po *gotext.Locale

// Init loads the catalog for lang. An empty lang is taken from the
// environment, see detectLanguage.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}
	l := gotext.NewLocaleFSWithPath(lang, locales, "locales")
	l.AddDomain(domain)
	l.SetDomain(domain)
	po = l
}

// T returns the translation of msgid, or msgid itself.
func T(msgid string) string {
	if po == nil {
		return msgid
	}
	return po.Get(msgid)
}

// N picks the plural form for n using the catalog's plural formula.
// Without a catalog, singular is returned only for n == 1.
func N(singular, plural string, n int) string {
	if po != nil {
		return po.GetN(singular, plural, n)
	}
	if n == 1 {
		return singular
	}
	return plural
}

// localeVars are consulted in gettext order.
var localeVars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// detectLanguage returns the first usable locale from localeVars, or "en".
func detectLanguage() string {
	for _, name := range localeVars {
		val := os.Getenv(name)
		if name == "LANGUAGE" {
			// A priority list; only the head is used.
			val, _, _ = strings.Cut(val, ":")
		}
		if lang := localeName(val); lang != "" {
			return lang
		}
	}
	return "en"
}

// localeName strips the codeset and modifier from a locale such as
// "sr_RS.UTF-8@latin". C and POSIX yield "".
func localeName(val string) string {
	if i := strings.IndexAny(val, ".@"); i >= 0 {
		val = val[:i]
	}
	if val == "C" || val == "POSIX" {
		return ""
	}
	return val
}

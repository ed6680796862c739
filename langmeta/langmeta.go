// Package langmeta maps locale codes to the language names used in
// translation prompts and status output.
package langmeta

import "strings"

// Meta describes a language.
type Meta struct {
	// English is the English name, used when instructing the model.
	English string
	// Native is the endonym, used in human-facing output.
	Native string
}

// Registry contains canonical language metadata.
// Locale variants are resolved in Resolve() via normalization and base fallback.
var Registry = map[string]Meta{
	"ar":      {English: "Arabic", Native: "العربية"},
	"bg":      {English: "Bulgarian", Native: "Български"},
	"ca":      {English: "Catalan", Native: "Català"},
	"cs":      {English: "Czech", Native: "Čeština"},
	"da":      {English: "Danish", Native: "Dansk"},
	"de":      {English: "German", Native: "Deutsch"},
	"el":      {English: "Greek", Native: "Ελληνικά"},
	"en":      {English: "English", Native: "English"},
	"en-GB":   {English: "British English", Native: "English (UK)"},
	"en-US":   {English: "American English", Native: "English (US)"},
	"es":      {English: "Spanish", Native: "Español"},
	"es-MX":   {English: "Mexican Spanish", Native: "Español (México)"},
	"et":      {English: "Estonian", Native: "Eesti"},
	"fa":      {English: "Persian", Native: "فارسی"},
	"fi":      {English: "Finnish", Native: "Suomi"},
	"fr":      {English: "French", Native: "Français"},
	"fr-CA":   {English: "Canadian French", Native: "Français (Canada)"},
	"he":      {English: "Hebrew", Native: "עברית"},
	"hi":      {English: "Hindi", Native: "हिन्दी"},
	"hr":      {English: "Croatian", Native: "Hrvatski"},
	"hu":      {English: "Hungarian", Native: "Magyar"},
	"id":      {English: "Indonesian", Native: "Bahasa Indonesia"},
	"it":      {English: "Italian", Native: "Italiano"},
	"ja":      {English: "Japanese", Native: "日本語"},
	"ko":      {English: "Korean", Native: "한국어"},
	"lt":      {English: "Lithuanian", Native: "Lietuvių"},
	"lv":      {English: "Latvian", Native: "Latviešu"},
	"nb":      {English: "Norwegian Bokmål", Native: "Norsk bokmål"},
	"nl":      {English: "Dutch", Native: "Nederlands"},
	"pl":      {English: "Polish", Native: "Polski"},
	"pt":      {English: "Portuguese", Native: "Português"},
	"pt-BR":   {English: "Brazilian Portuguese", Native: "Português (Brasil)"},
	"ro":      {English: "Romanian", Native: "Română"},
	"ru":      {English: "Russian", Native: "Русский"},
	"sk":      {English: "Slovak", Native: "Slovenčina"},
	"sl":      {English: "Slovenian", Native: "Slovenščina"},
	"sr":      {English: "Serbian", Native: "Српски"},
	"sv":      {English: "Swedish", Native: "Svenska"},
	"th":      {English: "Thai", Native: "ไทย"},
	"tr":      {English: "Turkish", Native: "Türkçe"},
	"uk":      {English: "Ukrainian", Native: "Українська"},
	"vi":      {English: "Vietnamese", Native: "Tiếng Việt"},
	"zh":      {English: "Chinese", Native: "中文"},
	"zh-Hans": {English: "Simplified Chinese", Native: "简体中文"},
	"zh-Hant": {English: "Traditional Chinese", Native: "繁體中文"},
}

func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		// Script subtags are title case (Hans), regions upper case (BR).
		if len(parts[1]) == 4 {
			parts[1] = strings.ToUpper(parts[1][:1]) + strings.ToLower(parts[1][1:])
		} else {
			parts[1] = strings.ToUpper(parts[1])
		}
	}
	return strings.Join(parts, "-")
}

// Resolve returns best-effort metadata for a locale code, supporting
// variants like pt_BR, pt-br and region fallbacks. Unknown codes resolve
// to the code itself.
func Resolve(lang string) Meta {
	if m, ok := Registry[lang]; ok {
		return m
	}
	normalized := canonicalize(lang)
	if m, ok := Registry[normalized]; ok {
		return m
	}
	if parts := strings.SplitN(normalized, "-", 2); len(parts) == 2 {
		if m, ok := Registry[parts[0]]; ok {
			return m
		}
	}
	return Meta{English: lang, Native: lang}
}

// EnglishName returns the English language name for a locale code.
func EnglishName(lang string) string {
	return Resolve(lang).English
}

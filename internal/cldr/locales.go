package cldr

// Languages is the set of ISO 639 language codes this engine recognizes,
// including legacy codes (iw, in, ji, mo) that the tag parser remaps to
// their modern equivalent.
var Languages = buildSet(
	"en", "de", "fr", "es", "pt", "it", "nl", "da", "sv", "nb", "nn", "no",
	"fi", "is", "et", "lv", "lt", "pl", "cs", "sk", "hu", "ro", "bg", "ru",
	"uk", "be", "mk", "sl", "hr", "sr", "bs", "sq", "el", "tr", "ka", "hy",
	"az", "kk", "ky", "uz", "tg", "mn", "he", "iw", "ar", "fa", "ur", "ps",
	"id", "in", "ms", "tl", "fil", "vi", "th", "lo", "km", "my", "hi", "bn",
	"pa", "gu", "mr", "ta", "te", "kn", "ml", "si", "ne", "sd", "ja", "ko",
	"zh", "yue", "am", "sw", "ha", "yo", "ig", "zu", "xh", "af", "rw", "so",
	"mg", "gsw", "lb", "ca", "gl", "eu", "mt", "ga", "cy", "ff", "kok", "ks",
	"kxv", "mni", "sat", "shi", "su", "vai", "yi", "ji", "mo",
)

// LegacyLanguageMap is the BCP-47 legacy-to-modern language code remap
// applied during canonicalization (spec §4.1 step 5).
var LegacyLanguageMap = map[string]string{
	"iw": "he",
	"in": "id",
	"ji": "yi",
	"mo": "ro",
}

// AvailableLocales is the set of canonical locale tags (language possibly
// with script and/or region) this engine treats as CLDR-available. ROOT
// ("und"/"") is intentionally absent: it is always illegal as an affinity
// target or supported locale (spec §3).
var AvailableLocales = buildSet(
	"en", "en-US", "en-GB", "en-CA", "en-AU", "en-IN", "en-001", "en-150",
	"en-US-POSIX",
	"de", "de-DE", "de-AT", "de-CH",
	"fr", "fr-FR", "fr-CA", "fr-BE", "fr-CH",
	"es", "es-ES", "es-MX", "es-419", "es-US",
	"pt", "pt-PT", "pt-BR",
	"it", "it-IT", "it-CH",
	"nl", "nl-NL", "nl-BE",
	"da", "da-DK",
	"sv", "sv-SE",
	"nb", "nn", "no",
	"fi", "fi-FI",
	"is", "is-IS",
	"et", "et-EE",
	"lv", "lv-LV",
	"lt", "lt-LT",
	"pl", "pl-PL",
	"cs", "cs-CZ",
	"sk", "sk-SK",
	"hu", "hu-HU",
	"ro", "ro-RO", "ro-MD",
	"bg", "bg-BG",
	"ru", "ru-RU",
	"uk", "uk-UA",
	"be", "be-BY",
	"mk", "mk-MK",
	"sl", "sl-SI",
	"hr", "hr-HR",
	"sr", "sr-Cyrl", "sr-Latn", "sr-RS", "sr-Latn-RS",
	"bs", "bs-Latn", "bs-Cyrl", "bs-BA", "bs-Cyrl-BA",
	"sq", "sq-AL",
	"el", "el-GR",
	"tr", "tr-TR",
	"ka", "ka-GE",
	"hy", "hy-AM",
	"az", "az-Latn", "az-Cyrl",
	"kk", "kk-KZ",
	"ky", "ky-KG",
	"uz", "uz-Latn", "uz-Cyrl", "uz-Arab",
	"tg", "tg-TJ",
	"mn", "mn-MN",
	"he", "he-IL",
	"ar", "ar-EG", "ar-SA", "ar-AE", "ar-MA",
	"fa", "fa-IR",
	"ur", "ur-PK",
	"ps", "ps-AF",
	"id", "id-ID",
	"ms", "ms-MY", "ms-BN",
	"tl", "fil", "fil-PH",
	"vi", "vi-VN",
	"th", "th-TH",
	"lo", "lo-LA",
	"km", "km-KH",
	"my", "my-MM",
	"hi", "hi-IN",
	"bn", "bn-BD", "bn-IN",
	"pa", "pa-Guru", "pa-Arab", "pa-Guru-IN", "pa-Arab-PK",
	"gu", "gu-IN",
	"mr", "mr-IN",
	"ta", "ta-IN", "ta-LK",
	"te", "te-IN",
	"kn", "kn-IN",
	"ml", "ml-IN",
	"si", "si-LK",
	"ne", "ne-NP",
	"sd", "sd-Arab", "sd-Deva", "sd-Arab-PK", "sd-Deva-IN",
	"ja", "ja-JP",
	"ko", "ko-KR",
	"zh", "zh-Hans", "zh-Hant", "zh-CN", "zh-TW", "zh-HK", "zh-MO", "zh-SG",
	"zh-Hant-HK", "zh-Hant-TW", "zh-Hans-CN", "zh-Hans-SG",
	"yue", "yue-Hant", "yue-Hans",
	"am", "am-ET",
	"sw", "sw-TZ", "sw-KE",
	"ha", "ha-NG",
	"yo", "yo-NG",
	"ig", "ig-NG",
	"zu", "zu-ZA",
	"xh", "xh-ZA",
	"af", "af-ZA",
	"rw", "rw-RW",
	"so", "so-SO",
	"mg", "mg-MG",
	"gsw", "gsw-CH", "gsw-AT", "gsw-FR",
	"lb", "lb-LU",
	"ca", "ca-ES", "ca-AD",
	"gl", "gl-ES",
	"eu", "eu-ES",
	"mt", "mt-MT",
	"ga", "ga-IE",
	"cy", "cy-GB",
	"ff", "ff-Latn", "ff-Adlm", "ff-Latn-SN", "ff-Adlm-GN",
	"kok", "kok-Deva", "kok-Latn", "kok-Deva-IN", "kok-Latn-IN",
	"ks", "ks-Arab", "ks-Deva", "ks-Arab-IN", "ks-Deva-IN",
	"kxv", "kxv-Latn", "kxv-Deva", "kxv-Orya", "kxv-Telu", "kxv-Deva-IN",
	"kxv-Orya-IN", "kxv-Telu-IN",
	"mni", "mni-Beng", "mni-Mtei", "mni-Beng-IN",
	"sat", "sat-Olck", "sat-Olck-IN",
	"shi", "shi-Tfng", "shi-Latn", "shi-Tfng-MA", "shi-Latn-MA",
	"su", "su-Latn", "su-Latn-ID",
	"vai", "vai-Vaii", "vai-Latn", "vai-Vaii-LR", "vai-Latn-LR",
	"yi", "yi-001",
)

// AvailableLanguages is the subset of Languages that may stand alone as a
// locale's language subtag once canonicalized (used to reject tags whose
// language CLDR does not recognize at all, spec §4.1 step 4).
var AvailableLanguages = Languages

// ParentOverrides holds the CLDR parent-locale exceptions that diverge from
// the "strip one trailing subtag" truncation rule (spec §4.3).
var ParentOverrides = map[string]string{
	"en-150":      "en-001",
	"zh-HK":       "zh-Hant-HK",
	"zh-MO":       "zh-Hant-HK",
	"zh-TW":       "zh-Hant",
	"zh-CN":       "zh-Hans",
	"zh-SG":       "zh-Hans",
	"pt-BR":       "pt",
	"sr-RS":       "sr-Cyrl",
	"sr-Latn-RS":  "sr-Latn",
	"bs-BA":       "bs-Latn",
	"bs-Cyrl-BA":  "bs-Cyrl",
	"pa-Guru-IN":  "pa-Guru",
	"pa-Arab-PK":  "pa-Arab",
}

// MultiScriptLanguages is the set of languages for which CLDR records more
// than one script; a script-qualified tag in this set that does not carry
// the language's primary script is a root of its own family rather than a
// descendant of the bare language (spec §4.3).
var MultiScriptLanguages = buildSet(
	"az", "bs", "ff", "hi", "kk", "kok", "ks", "kxv", "mni", "pa", "sat",
	"sd", "shi", "sr", "su", "uz", "vai", "yue", "zh",
)

// PrimaryScript names, for each language in MultiScriptLanguages that has a
// script explicitly attested in AvailableLocales, the script that descends
// ordinarily from the bare language (the same script likelyByLanguage
// maximizes the bare language to). Every other attested script for that
// language is a root of its own family. Languages in MultiScriptLanguages
// with no entry here have no declared primary: every scripted form of the
// language is a root of its own family that folds to the bare language at
// the spoken-language level (locale.SpokenLanguage). hi and kk have no
// alternate-script locale at all in this curated table, so the question
// never arises for them; sat and su each have exactly one attested script
// (Olck, Latn) and it matches their likely-subtags default, so it is their
// primary, not a fold exception; mni has two attested scripts (Beng, Mtei)
// and is deliberately left without a primary, so both fold. See DESIGN.md.
var PrimaryScript = map[string]string{
	"az":  "Latn",
	"bs":  "Latn",
	"ff":  "Latn",
	"kok": "Deva",
	"ks":  "Arab",
	"kxv": "Latn",
	"pa":  "Guru",
	"sat": "Olck",
	"sd":  "Arab",
	"shi": "Tfng",
	"sr":  "Cyrl",
	"su":  "Latn",
	"uz":  "Latn",
	"vai": "Vaii",
	"yue": "Hant",
	"zh":  "Hans",
}

func buildSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

package cldr

import "github.com/pkg/errors"

// LSR is a maximised (language, script, region) triple, the sole input to
// the distance engine (spec §3).
type LSR struct {
	Language string
	Script   string
	Region   string
}

// ErrMissingLikelyTags is returned by Maximize when the given combination of
// subtags cannot be completed from the likely-subtags tables. The tag
// parser filters out any language CLDR does not recognize before this can
// happen, so callers inside this module never observe it in practice;
// mirrors golang.org/x/text/language's MissingLikelyTagsData.
var ErrMissingLikelyTags = errors.New("cldr: missing likely-subtags data")

// likelyByLanguage maps a bare language to its most likely script and
// region, used both to maximise a language-only tag and as the final
// fallback step for any other partial tag.
var likelyByLanguage = map[string]LSR{
	"en": {"en", "Latn", "US"}, "de": {"de", "Latn", "DE"}, "fr": {"fr", "Latn", "FR"},
	"es": {"es", "Latn", "ES"}, "pt": {"pt", "Latn", "BR"}, "it": {"it", "Latn", "IT"},
	"nl": {"nl", "Latn", "NL"}, "da": {"da", "Latn", "DK"}, "sv": {"sv", "Latn", "SE"},
	"nb": {"nb", "Latn", "NO"}, "nn": {"nn", "Latn", "NO"}, "no": {"no", "Latn", "NO"},
	"fi": {"fi", "Latn", "FI"}, "is": {"is", "Latn", "IS"}, "et": {"et", "Latn", "EE"},
	"lv": {"lv", "Latn", "LV"}, "lt": {"lt", "Latn", "LT"}, "pl": {"pl", "Latn", "PL"},
	"cs": {"cs", "Latn", "CZ"}, "sk": {"sk", "Latn", "SK"}, "hu": {"hu", "Latn", "HU"},
	"ro": {"ro", "Latn", "RO"}, "bg": {"bg", "Cyrl", "BG"}, "ru": {"ru", "Cyrl", "RU"},
	"uk": {"uk", "Cyrl", "UA"}, "be": {"be", "Cyrl", "BY"}, "mk": {"mk", "Cyrl", "MK"},
	"sl": {"sl", "Latn", "SI"}, "hr": {"hr", "Latn", "HR"}, "sr": {"sr", "Cyrl", "RS"},
	"bs": {"bs", "Latn", "BA"}, "sq": {"sq", "Latn", "AL"}, "el": {"el", "Grek", "GR"},
	"tr": {"tr", "Latn", "TR"}, "ka": {"ka", "Geor", "GE"}, "hy": {"hy", "Armn", "AM"},
	"az": {"az", "Latn", "AZ"}, "kk": {"kk", "Cyrl", "KZ"}, "ky": {"ky", "Cyrl", "KG"},
	"uz": {"uz", "Latn", "UZ"}, "tg": {"tg", "Cyrl", "TJ"}, "mn": {"mn", "Cyrl", "MN"},
	"he": {"he", "Hebr", "IL"}, "ar": {"ar", "Arab", "EG"}, "fa": {"fa", "Arab", "IR"},
	"ur": {"ur", "Arab", "PK"}, "ps": {"ps", "Arab", "AF"}, "id": {"id", "Latn", "ID"},
	"ms": {"ms", "Latn", "MY"}, "tl": {"fil", "Latn", "PH"}, "fil": {"fil", "Latn", "PH"},
	"vi": {"vi", "Latn", "VN"}, "th": {"th", "Thai", "TH"}, "lo": {"lo", "Laoo", "LA"},
	"km": {"km", "Khmr", "KH"}, "my": {"my", "Mymr", "MM"}, "hi": {"hi", "Deva", "IN"},
	"bn": {"bn", "Beng", "BD"}, "pa": {"pa", "Guru", "IN"}, "gu": {"gu", "Gujr", "IN"},
	"mr": {"mr", "Deva", "IN"}, "ta": {"ta", "Taml", "IN"}, "te": {"te", "Telu", "IN"},
	"kn": {"kn", "Knda", "IN"}, "ml": {"ml", "Mlym", "IN"}, "si": {"si", "Sinh", "LK"},
	"ne": {"ne", "Deva", "NP"}, "sd": {"sd", "Arab", "PK"}, "ja": {"ja", "Jpan", "JP"},
	"ko": {"ko", "Kore", "KR"}, "zh": {"zh", "Hans", "CN"}, "yue": {"yue", "Hant", "HK"},
	"am": {"am", "Ethi", "ET"}, "sw": {"sw", "Latn", "TZ"}, "ha": {"ha", "Latn", "NG"},
	"yo": {"yo", "Latn", "NG"}, "ig": {"ig", "Latn", "NG"}, "zu": {"zu", "Latn", "ZA"},
	"xh": {"xh", "Latn", "ZA"}, "af": {"af", "Latn", "ZA"}, "rw": {"rw", "Latn", "RW"},
	"so": {"so", "Latn", "SO"}, "mg": {"mg", "Latn", "MG"}, "gsw": {"gsw", "Latn", "CH"},
	"lb": {"lb", "Latn", "LU"}, "ca": {"ca", "Latn", "ES"}, "gl": {"gl", "Latn", "ES"},
	"eu": {"eu", "Latn", "ES"}, "mt": {"mt", "Latn", "MT"}, "ga": {"ga", "Latn", "IE"},
	"cy": {"cy", "Latn", "GB"}, "ff": {"ff", "Latn", "SN"}, "kok": {"kok", "Deva", "IN"},
	"ks": {"ks", "Arab", "IN"}, "kxv": {"kxv", "Latn", "IN"}, "mni": {"mni", "Beng", "IN"},
	"sat": {"sat", "Olck", "IN"}, "shi": {"shi", "Tfng", "MA"}, "su": {"su", "Latn", "ID"},
	"vai": {"vai", "Vaii", "LR"}, "yi": {"yi", "Hebr", "UA"},
}

// likelyByLanguageRegion resolves the script for region-qualified tags
// where the region determines which of a multi-script language's scripts
// is implied (e.g. zh-TW implies Hant where bare zh implies Hans).
var likelyByLanguageRegion = map[string]string{
	"zh-CN": "Hans", "zh-SG": "Hans", "zh-TW": "Hant", "zh-HK": "Hant", "zh-MO": "Hant",
	"sr-RS": "Cyrl", "bs-BA": "Latn", "pa-IN": "Guru", "pa-PK": "Arab",
	"uz-UZ": "Latn", "uz-AF": "Arab", "az-AZ": "Latn",
	"ks-IN": "Arab", "sd-PK": "Arab", "sd-IN": "Deva",
}

// likelyByLanguageScript resolves the region for script-qualified tags
// lacking a region, used to complete tags such as "sr-Latn" or "zh-Hant".
var likelyByLanguageScript = map[string]string{
	"zh-Hans": "CN", "zh-Hant": "TW", "sr-Cyrl": "RS", "sr-Latn": "RS",
	"bs-Latn": "BA", "bs-Cyrl": "BA", "az-Latn": "AZ", "az-Cyrl": "AZ",
	"uz-Latn": "UZ", "uz-Cyrl": "UZ", "uz-Arab": "AF",
	"pa-Guru": "IN", "pa-Arab": "PK", "kok-Deva": "IN", "kok-Latn": "IN",
	"ks-Arab": "IN", "ks-Deva": "IN", "sd-Arab": "PK", "sd-Deva": "IN",
	"shi-Tfng": "MA", "shi-Latn": "MA", "vai-Vaii": "LR", "vai-Latn": "LR",
	"ff-Latn": "SN", "ff-Adlm": "GN", "yue-Hant": "HK", "yue-Hans": "CN",
	"kxv-Latn": "IN", "kxv-Deva": "IN", "kxv-Orya": "IN", "kxv-Telu": "IN",
	"mni-Beng": "IN", "mni-Mtei": "IN", "sat-Olck": "IN",
}

// Maximize applies CLDR likely-subtags to complete a possibly-partial
// (language, script, region) triple. It never returns the input unmodified
// on a genuine mismatch; unmatchable inputs should not occur in this
// package since the tag parser has already filtered unknown languages.
func Maximize(language, script, region string) (LSR, error) {
	if language != "" && script != "" && region != "" {
		return LSR{language, script, region}, nil
	}
	if language != "" && region != "" && script == "" {
		if s, ok := likelyByLanguageRegion[language+"-"+region]; ok {
			return LSR{language, s, region}, nil
		}
	}
	if language != "" && script != "" && region == "" {
		if r, ok := likelyByLanguageScript[language+"-"+script]; ok {
			return LSR{language, script, r}, nil
		}
		if base, ok := likelyByLanguage[language]; ok {
			return LSR{language, script, base.Region}, nil
		}
	}
	if language != "" {
		if lsr, ok := likelyByLanguage[language]; ok {
			if script != "" {
				lsr.Script = script
			}
			if region != "" {
				lsr.Region = region
			}
			return lsr, nil
		}
	}
	if language == "" && script != "" {
		for lang, lsr := range likelyByLanguage {
			if lsr.Script == script {
				if region != "" {
					lsr.Region = region
				}
				lsr.Language = lang
				return lsr, nil
			}
		}
	}
	if language == "" && region != "" {
		for lang, lsr := range likelyByLanguage {
			if lsr.Region == region {
				if script != "" {
					lsr.Script = script
				}
				lsr.Language = lang
				return lsr, nil
			}
		}
		// CLDR falls back to its default content locale when a region has
		// no attested majority language in this table.
		return LSR{"en", "Latn", region}, nil
	}
	return LSR{}, errors.Wrap(ErrMissingLikelyTags, "empty locale")
}

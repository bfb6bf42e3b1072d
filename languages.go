package texttranslator

import (
	"fmt"
	"strings"
)

// LanguageNames maps ISO 639-1 codes to the English language names used in prompts.
var LanguageNames = map[string]string{
	"aa": "Afar",
	"ab": "Abkhazian",
	"ae": "Avestan",
	"af": "Afrikaans",
	"ak": "Akan",
	"am": "Amharic",
	"an": "Aragonese",
	"ar": "Arabic",
	"as": "Assamese",
	"av": "Avaric",
	"ay": "Aymara",
	"az": "Azerbaijani",
	"ba": "Bashkir",
	"be": "Belarusian",
	"bg": "Bulgarian",
	"bi": "Bislama",
	"bm": "Bambara",
	"bn": "Bengali",
	"bo": "Tibetan",
	"br": "Breton",
	"bs": "Bosnian",
	"ca": "Catalan",
	"ce": "Chechen",
	"ch": "Chamorro",
	"co": "Corsican",
	"cr": "Cree",
	"cs": "Czech",
	"cu": "Church Slavic",
	"cv": "Chuvash",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"dv": "Dhivehi",
	"dz": "Dzongkha",
	"ee": "Ewe",
	"el": "Modern Greek",
	"en": "English",
	"eo": "Esperanto",
	"es": "Spanish",
	"et": "Estonian",
	"eu": "Basque",
	"fa": "Persian",
	"ff": "Fulah",
	"fi": "Finnish",
	"fj": "Fijian",
	"fo": "Faroese",
	"fr": "French",
	"fy": "Western Frisian",
	"ga": "Irish",
	"gd": "Scottish Gaelic",
	"gl": "Galician",
	"gn": "Guarani",
	"gu": "Gujarati",
	"gv": "Manx",
	"ha": "Hausa",
	"he": "Hebrew",
	"hi": "Hindi",
	"ho": "Hiri Motu",
	"hr": "Croatian",
	"ht": "Haitian",
	"hu": "Hungarian",
	"hy": "Armenian",
	"hz": "Herero",
	"ia": "Interlingua",
	"id": "Indonesian",
	"ie": "Interlingue",
	"ig": "Igbo",
	"ii": "Sichuan Yi",
	"ik": "Inupiaq",
	"io": "Ido",
	"is": "Icelandic",
	"it": "Italian",
	"iu": "Inuktitut",
	"ja": "Japanese",
	"jv": "Javanese",
	"ka": "Georgian",
	"kg": "Kongo",
	"ki": "Kikuyu",
	"kj": "Kuanyama",
	"kk": "Kazakh",
	"kl": "Kalaallisut",
	"km": "Khmer",
	"kn": "Kannada",
	"ko": "Korean",
	"kr": "Kanuri",
	"ks": "Kashmiri",
	"ku": "Kurdish",
	"kv": "Komi",
	"kw": "Cornish",
	"ky": "Kirghiz",
	"la": "Latin",
	"lb": "Luxembourgish",
	"lg": "Ganda",
	"li": "Limburgan",
	"ln": "Lingala",
	"lo": "Lao",
	"lt": "Lithuanian",
	"lu": "Luba-Katanga",
	"lv": "Latvian",
	"mg": "Malagasy",
	"mh": "Marshallese",
	"mi": "Maori",
	"mk": "Macedonian",
	"ml": "Malayalam",
	"mn": "Mongolian",
	"mr": "Marathi",
	"ms": "Malay",
	"mt": "Maltese",
	"my": "Burmese",
	"na": "Nauru",
	"nb": "Norwegian Bokmål",
	"nd": "North Ndebele",
	"ne": "Nepali",
	"ng": "Ndonga",
	"nl": "Dutch",
	"nn": "Norwegian Nynorsk",
	"no": "Norwegian",
	"nr": "South Ndebele",
	"nv": "Navajo",
	"ny": "Nyanja",
	"oc": "Occitan",
	"oj": "Ojibwa",
	"om": "Oromo",
	"or": "Oriya",
	"os": "Ossetian",
	"pa": "Panjabi",
	"pi": "Pali",
	"pl": "Polish",
	"ps": "Pashto",
	"pt": "Portuguese",
	"qu": "Quechua",
	"rm": "Romansh",
	"rn": "Rundi",
	"ro": "Romanian",
	"ru": "Russian",
	"rw": "Kinyarwanda",
	"sa": "Sanskrit",
	"sc": "Sardinian",
	"sd": "Sindhi",
	"se": "Northern Sami",
	"sg": "Sango",
	"si": "Sinhala",
	"sk": "Slovak",
	"sl": "Slovenian",
	"sm": "Samoan",
	"sn": "Shona",
	"so": "Somali",
	"sq": "Albanian",
	"sr": "Serbian",
	"ss": "Swati",
	"st": "Southern Sotho",
	"su": "Sundanese",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"tg": "Tajik",
	"th": "Thai",
	"ti": "Tigrinya",
	"tk": "Turkmen",
	"tl": "Tagalog",
	"tn": "Tswana",
	"to": "Tonga",
	"tr": "Turkish",
	"ts": "Tsonga",
	"tt": "Tatar",
	"tw": "Twi",
	"ty": "Tahitian",
	"ug": "Uighur",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"uz": "Uzbek",
	"ve": "Venda",
	"vi": "Vietnamese",
	"vo": "Volapük",
	"wa": "Walloon",
	"wo": "Wolof",
	"xh": "Xhosa",
	"yi": "Yiddish",
	"yo": "Yoruba",
	"za": "Zhuang",
	"zh": "Chinese",
	"zu": "Zulu",
}

// NormalizeLanguageCode lowercases a code and strips any region suffix ("en-US" → "en").
func NormalizeLanguageCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return code
}

// LanguageName returns the English name for an ISO 639-1 code.
// The second result is false when the code is unknown.
func LanguageName(code string) (string, bool) {
	name, ok := LanguageNames[NormalizeLanguageCode(code)]
	return name, ok
}

// ResolveLanguages returns the source and target language names of a task.
// An unknown code yields a KindBadRequest ProviderError.
func ResolveLanguages(task TranslateTask) (source, target string, err error) {
	source, ok := LanguageName(task.SourceLanguage)
	if !ok {
		return "", "", NewProviderError(KindBadRequest,
			fmt.Sprintf("unknown source language code %q", task.SourceLanguage), nil)
	}
	target, ok = LanguageName(task.TargetLanguage)
	if !ok {
		return "", "", NewProviderError(KindBadRequest,
			fmt.Sprintf("unknown target language code %q", task.TargetLanguage), nil)
	}
	return source, target, nil
}

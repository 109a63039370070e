package i18n

// Language describes one target language the service can translate
// into, including whether translations get a transliteration.
type Language struct {
	// Code is the BCP-47 language code.
	Code string `json:"code" example:"vi"`
	// Name is the English name of the language.
	Name string `json:"name" example:"Vietnamese"`
	// NativeName is the language's own name for itself.
	NativeName string `json:"native_name" example:"Tiếng Việt"`
	// Transliterates indicates the language uses a non-Latin script and
	// translations carry a phonetic rendering.
	Transliterates bool `json:"transliterates"`
}

// supportedLanguages is the catalogue served by the languages endpoint.
// Order is presentation order.
var supportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Transliterates: true},
	{Code: "ko", Name: "Korean", NativeName: "한국어", Transliterates: true},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Transliterates: true},
	{Code: "th", Name: "Thai", NativeName: "ไทย", Transliterates: true},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Transliterates: true},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Transliterates: true},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Transliterates: true},
	{Code: "bg", Name: "Bulgarian", NativeName: "Български", Transliterates: true},
}

// SupportedLanguages returns a copy of the language catalogue.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsSupported reports whether code names a language in the catalogue.
func IsSupported(code string) bool {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

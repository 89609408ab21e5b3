package speech

import "strings"

// langCodes maps source-language names to the two-letter codes the TTS
// backends understand.
var langCodes = map[string]string{
	"english": "en",
	"spanish": "es",
	"french":  "fr",
	"german":  "de",
}

// LangCode resolves a source-language name to a TTS language code,
// falling back to English for unknown languages.
func LangCode(language string) string {
	if code, ok := langCodes[strings.ToLower(strings.TrimSpace(language))]; ok {
		return code
	}
	return "en"
}

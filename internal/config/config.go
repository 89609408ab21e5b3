package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Tatoeba    TatoebaConfig    `yaml:"tatoeba"`
	Translate  TranslateConfig  `yaml:"translate"`
	Speech     SpeechConfig     `yaml:"speech"`
	Lookup     LookupConfig     `yaml:"lookup"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8741"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"120"`
}

// StoreConfig holds local word store settings.
type StoreConfig struct {
	Path string `yaml:"path" env:"STORE_PATH" env-default:"saved_words.db"`
}

// WiktionaryConfig holds dictionary source settings.
type WiktionaryConfig struct {
	BaseURL         string        `yaml:"base_url"         env:"WIKTIONARY_BASE_URL"         env-default:"https://en.wiktionary.org/w/api.php"`
	Timeout         time.Duration `yaml:"timeout"          env:"WIKTIONARY_TIMEOUT"          env-default:"10s"`
	DefaultLanguage string        `yaml:"default_language" env:"WIKTIONARY_DEFAULT_LANGUAGE" env-default:"English"`
}

// TatoebaConfig holds sentence-corpus settings. The length window excludes
// fragments and run-ons from backfilled examples.
type TatoebaConfig struct {
	BaseURL        string        `yaml:"base_url"         env:"TATOEBA_BASE_URL"         env-default:"https://tatoeba.org/eng/api_v0"`
	Timeout        time.Duration `yaml:"timeout"          env:"TATOEBA_TIMEOUT"          env-default:"10s"`
	MinSentenceLen int           `yaml:"min_sentence_len" env:"TATOEBA_MIN_SENTENCE_LEN" env-default:"6"`
	MaxSentenceLen int           `yaml:"max_sentence_len" env:"TATOEBA_MAX_SENTENCE_LEN" env-default:"100"`
}

// TranslateConfig holds settings for the optional local translation service.
// An empty base URL disables translation backfill entirely.
type TranslateConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"TRANSLATE_BASE_URL"        env-default:""`
	Timeout        time.Duration `yaml:"timeout"         env:"TRANSLATE_TIMEOUT"         env-default:"5s"`
	TargetLanguage string        `yaml:"target_language" env:"TRANSLATE_TARGET_LANGUAGE" env-default:"es"`
}

// SpeechConfig holds pronunciation playback settings.
type SpeechConfig struct {
	TTSBaseURL string        `yaml:"tts_base_url" env:"SPEECH_TTS_BASE_URL" env-default:"https://translate.google.com/translate_tts"`
	Timeout    time.Duration `yaml:"timeout"      env:"SPEECH_TIMEOUT"      env-default:"10s"`
	Player     string        `yaml:"player"       env:"SPEECH_PLAYER"       env-default:""`
}

// LookupConfig holds aggregation policy knobs.
type LookupConfig struct {
	MaxExamples  int `yaml:"max_examples"  env:"LOOKUP_MAX_EXAMPLES"  env-default:"5"`
	MinExamples  int `yaml:"min_examples"  env:"LOOKUP_MIN_EXAMPLES"  env-default:"3"`
	SuggestLimit int `yaml:"suggest_limit" env:"LOOKUP_SUGGEST_LIMIT" env-default:"10"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

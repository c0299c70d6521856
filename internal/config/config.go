package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by BRANDLENS_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("BRANDLENS_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func CerebrasAPIKey() string {
	return os.Getenv("CEREBRAS_API_KEY")
}

// LLMProvider returns the configured LLM provider.
// Defaults to "ollama" if not set.
// Valid values: openai, anthropic, gemini, cerebras, ollama, mock
func LLMProvider() string {
	p := os.Getenv("LLM_PROVIDER")
	if p == "" {
		return "ollama"
	}
	return p
}

// LLMModel returns a model override; empty means the provider default.
func LLMModel() string {
	return os.Getenv("LLM_MODEL")
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "gemini":
		return GeminiAPIKey()
	case "cerebras":
		return CerebrasAPIKey()
	case "ollama", "mock":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

func OllamaBaseURL() string {
	u := os.Getenv("OLLAMA_BASE_URL")
	if u == "" {
		return "http://localhost:11434"
	}
	return u
}

// NERProvider returns the entity-recognition provider.
// Defaults to "http". Valid values: http, mock
func NERProvider() string {
	p := os.Getenv("NER_PROVIDER")
	if p == "" {
		return "http"
	}
	return p
}

func NERServiceURL() string {
	u := os.Getenv("NER_SERVICE_URL")
	if u == "" {
		return "http://localhost:8000"
	}
	return u
}

// NERRetryAttempts is the total number of attempts per NER call.
func NERRetryAttempts() uint {
	n, err := strconv.Atoi(os.Getenv("NER_RETRY_ATTEMPTS"))
	if err != nil || n <= 0 {
		return 2
	}
	return uint(n)
}

// SerpAPIKey returns the web-search credential. Empty puts brand validation
// into bypass mode.
func SerpAPIKey() string {
	return os.Getenv("SERPAPI_API_KEY")
}

func SearchEndpoint() string {
	u := os.Getenv("SEARCH_ENDPOINT")
	if u == "" {
		return "https://serpapi.com/search.json"
	}
	return u
}

// ExternalCallTimeout bounds each NER, LLM, and search call.
// Accepts Go durations ("5s") or whole seconds. Defaults to 10s.
func ExternalCallTimeout() time.Duration {
	return durationEnv("EXTERNAL_CALL_TIMEOUT", 10*time.Second)
}

// ValidationConcurrency caps concurrent per-candidate validations.
// Defaults to 4.
func ValidationConcurrency() int {
	n, err := strconv.Atoi(os.Getenv("VALIDATION_CONCURRENCY"))
	if err != nil || n <= 0 {
		return 4
	}
	return n
}

// ValidationRPS bounds search queries per second across all validations.
// Defaults to 5.
func ValidationRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("VALIDATION_RPS"), 64)
	if err != nil || rps <= 0 {
		return 5
	}
	return rps
}

func ValidationBurst() int {
	burst, err := strconv.Atoi(os.Getenv("VALIDATION_BURST"))
	if err != nil || burst <= 0 {
		return 1
	}
	return burst
}

// ValidationCacheTTL is how long searched verdicts are reused. Zero disables
// the cache.
func ValidationCacheTTL() time.Duration {
	return durationEnv("VALIDATION_CACHE_TTL", 0)
}

// BrandNormalization selects how candidates are deduplicated.
// Defaults to "exact". Valid values: exact, casefold
func BrandNormalization() string {
	p := os.Getenv("BRAND_NORMALIZATION")
	if p == "" {
		return "exact"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if sec, err := strconv.Atoi(v); err == nil && sec >= 0 {
		return time.Duration(sec) * time.Second
	}
	return def
}

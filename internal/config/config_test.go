package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "LLM_PROVIDER", "NER_PROVIDER", "EXTERNAL_CALL_TIMEOUT",
		"VALIDATION_CONCURRENCY", "VALIDATION_RPS", "VALIDATION_CACHE_TTL",
		"BRAND_NORMALIZATION", "NER_RETRY_ATTEMPTS",
	} {
		t.Setenv(k, "")
	}

	if got := ServerAddr(); got != ":8080" {
		t.Errorf("ServerAddr() = %q, want :8080", got)
	}
	if got := LLMProvider(); got != "ollama" {
		t.Errorf("LLMProvider() = %q, want ollama", got)
	}
	if got := NERProvider(); got != "http" {
		t.Errorf("NERProvider() = %q, want http", got)
	}
	if got := ExternalCallTimeout(); got != 10*time.Second {
		t.Errorf("ExternalCallTimeout() = %v, want 10s", got)
	}
	if got := ValidationConcurrency(); got != 4 {
		t.Errorf("ValidationConcurrency() = %d, want 4", got)
	}
	if got := ValidationRPS(); got != 5 {
		t.Errorf("ValidationRPS() = %v, want 5", got)
	}
	if got := ValidationCacheTTL(); got != 0 {
		t.Errorf("ValidationCacheTTL() = %v, want 0", got)
	}
	if got := BrandNormalization(); got != "exact" {
		t.Errorf("BrandNormalization() = %q, want exact", got)
	}
	if got := NERRetryAttempts(); got != 2 {
		t.Errorf("NERRetryAttempts() = %d, want 2", got)
	}
}

func TestDurationEnv(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"3s", 3 * time.Second},
		{"250ms", 250 * time.Millisecond},
		{"7", 7 * time.Second},
		{"bogus", time.Minute},
		{"-1s", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := durationEnv("TEST_DURATION", time.Minute); got != tt.want {
				t.Errorf("durationEnv(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLLMAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	t.Setenv("LLM_PROVIDER", "anthropic")
	if got := LLMAPIKey(); got != "sk-anthropic" {
		t.Errorf("anthropic key = %q", got)
	}

	t.Setenv("LLM_PROVIDER", "openai")
	if got := LLMAPIKey(); got != "sk-openai" {
		t.Errorf("openai key = %q", got)
	}

	t.Setenv("LLM_PROVIDER", "ollama")
	if got := LLMAPIKey(); got != "" {
		t.Errorf("ollama key = %q, want empty", got)
	}
}

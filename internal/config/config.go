package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// FailurePolicy decides what a handler does when the AI provider fails.
type FailurePolicy string

const (
	// PolicyFallback serves a deterministic canned response with HTTP 200.
	PolicyFallback FailurePolicy = "fallback"
	// PolicyError surfaces HTTP 500 with a generic message.
	PolicyError FailurePolicy = "error"
)

// Config holds runtime configuration values.
type Config struct {
	Port            string
	DatabaseURL     string
	FailurePolicy   FailurePolicy
	ProviderTimeout time.Duration
	AI              AIConfig
	Media           MediaConfig
	Imagen          ImagenConfig
}

// AIConfig selects and credentials the generative-AI provider.
type AIConfig struct {
	Provider      string // "openai" or "gemini"
	ImageProvider string // "openai", "gemini" or "imagen"
	OpenAI        OpenAIConfig
	Gemini        GeminiConfig
}

// OpenAIConfig holds OpenAI credentials and model choice.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig holds Gemini credentials and model choices.
type GeminiConfig struct {
	APIKey     string
	Model      string
	ImageModel string
}

// MediaConfig describes S3/media related configuration.
type MediaConfig struct {
	Bucket         string
	Region         string
	Endpoint       string
	PublicURL      string
	KeyPrefix      string
	ForcePathStyle bool
	AccessKey      string
	SecretKey      string
}

// ImagenConfig describes the Vertex AI Imagen renderer.
type ImagenConfig struct {
	ProjectID          string
	Location           string
	Model              string
	ServiceAccountJSON string
}

// FromEnv loads configuration from environment variables and applies defaults.
func FromEnv() Config {
	cfg := Config{
		Port:            getenv("APP_PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		FailurePolicy:   parsePolicy(os.Getenv("PROVIDER_FAILURE_POLICY")),
		ProviderTimeout: time.Duration(getenvInt("PROVIDER_TIMEOUT_SECONDS", 60)) * time.Second,
		AI: AIConfig{
			Provider:      strings.ToLower(getenv("AI_PROVIDER", "openai")),
			ImageProvider: strings.ToLower(getenv("IMAGE_PROVIDER", "openai")),
			OpenAI: OpenAIConfig{
				APIKey: os.Getenv("OPENAI_API_KEY"),
				Model:  getenv("OPENAI_MODEL", "gpt-4o-mini"),
			},
			Gemini: GeminiConfig{
				APIKey:     os.Getenv("GEMINI_API_KEY"),
				Model:      getenv("GEMINI_MODEL", "gemini-1.5-flash"),
				ImageModel: os.Getenv("GEMINI_IMAGE_MODEL"),
			},
		},
		Media: MediaConfig{
			Bucket:         os.Getenv("S3_BUCKET"),
			Region:         os.Getenv("S3_REGION"),
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			PublicURL:      os.Getenv("S3_PUBLIC_URL"),
			KeyPrefix:      strings.Trim(os.Getenv("S3_KEY_PREFIX"), "/"),
			ForcePathStyle: getenvBool("S3_FORCE_PATH_STYLE", false),
			AccessKey:      os.Getenv("S3_ACCESS_KEY"),
			SecretKey:      os.Getenv("S3_SECRET_KEY"),
		},
		Imagen: ImagenConfig{
			ProjectID:          os.Getenv("IMAGEN_PROJECT_ID"),
			Location:           getenv("IMAGEN_LOCATION", "us-central1"),
			Model:              getenv("IMAGEN_MODEL", "imagegeneration@006"),
			ServiceAccountJSON: os.Getenv("IMAGEN_SERVICE_ACCOUNT_JSON"),
		},
	}

	if cfg.Port == "" {
		log.Fatal("APP_PORT cannot be empty")
	}

	return cfg
}

func parsePolicy(raw string) FailurePolicy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PolicyError):
		return PolicyError
	case "", string(PolicyFallback):
		return PolicyFallback
	default:
		log.Printf("unknown PROVIDER_FAILURE_POLICY %q, using %q", raw, PolicyFallback)
		return PolicyFallback
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return parsed
}

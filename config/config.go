package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	Environment       string
	TesseractDataPath string
	MaxFileSize       int64
	Nokia             NokiaConfig
	Scoring           ScoringWeights
}

// NokiaConfig holds the Network-as-Code provider credentials.
type NokiaConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	UseMock   bool
}

// ScoringWeights is the named table of risk weights and level
// thresholds used by the scoring algorithms. Hoisted here so the
// algorithm stays auditable and testable apart from orchestration.
type ScoringWeights struct {
	// Network fan-out: penalty on call failure vs. unfavorable result,
	// plus the confidence multiplier applied on failure.
	NumberFailure           int
	NumberUnverified        int
	NumberFailureConfidence float64

	SimSwapFailure           int
	SimSwapDetected          int
	SimSwapFailureConfidence float64

	LocationFailure           int
	LocationMismatch          int
	LocationFailureConfidence float64

	DeviceFailure           int
	DeviceInactive          int
	DeviceRoaming           int
	DeviceFailureConfidence float64

	// 4-tier network level thresholds.
	CriticalThreshold int
	HighThreshold     int
	MediumThreshold   int

	// Document-side fraud indicator weights.
	SuspiciousWord   int
	ShortTextWarning int
	ArtifactWarning  int
	SpecimenDocument int
	ImageFlagRisk    int
	QRMismatch       int

	// 3-tier document level thresholds.
	DocHighThreshold   int
	DocMediumThreshold int

	// Overall document result composition.
	FraudPenaltyRate   float64
	MinValidConfidence int
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		NumberFailure:           30,
		NumberUnverified:        25,
		NumberFailureConfidence: 0.7,

		SimSwapFailure:           20,
		SimSwapDetected:          40,
		SimSwapFailureConfidence: 0.8,

		LocationFailure:           10,
		LocationMismatch:          15,
		LocationFailureConfidence: 0.9,

		DeviceFailure:           5,
		DeviceInactive:          8,
		DeviceRoaming:           3,
		DeviceFailureConfidence: 0.95,

		CriticalThreshold: 80,
		HighThreshold:     60,
		MediumThreshold:   30,

		SuspiciousWord:   20,
		ShortTextWarning: 10,
		ArtifactWarning:  5,
		SpecimenDocument: 30,
		ImageFlagRisk:    15,
		QRMismatch:       20,

		DocHighThreshold:   70,
		DocMediumThreshold: 40,

		FraudPenaltyRate:   0.5,
		MinValidConfidence: 30,
	}
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		Nokia: NokiaConfig{
			BaseURL:   getEnv("NOKIA_BASE_URL", "https://api.networkascode.nokia.com"),
			APIKey:    getEnv("NOKIA_API_KEY", ""),
			APISecret: getEnv("NOKIA_API_SECRET", ""),
			UseMock:   getEnvAsBool("NOKIA_USE_MOCK", false),
		},
		Scoring: DefaultScoringWeights(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DraftBackendMemory   = "memory"
	DraftBackendRedis    = "redis"
	DraftBackendDynamoDB = "dynamodb"

	SubmissionBackendDynamoDB = "dynamodb"
	SubmissionBackendPostgres = "postgres"
)

// Config holds the service configuration read from the environment.
type Config struct {
	API        APIConfig
	Wizard     WizardConfig
	Drafts     DraftsConfig
	Submission SubmissionConfig
	Database   DatabaseConfig
	AWS        AWSConfig
}

type APIConfig struct {
	Port int
}

// WizardConfig bounds the wizards held in memory. Evicted wizards are
// mounted again from their drafts.
type WizardConfig struct {
	EagerValidation bool
	MaxSessions     int
	SessionIdleTTL  time.Duration
}

// DraftsConfig selects where in-progress wizard answers are kept.
type DraftsConfig struct {
	Backend  string
	RedisURL string
	TTL      time.Duration
}

// SubmissionConfig selects the store behind the submission boundary.
type SubmissionConfig struct {
	Backend string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	EstimatesTable  string
	DraftsTable     string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	apiPort, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	dbPort, err := strconv.Atoi(getenvDefault("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	draftTTL, err := time.ParseDuration(getenvDefault("DRAFT_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
	}

	submitTimeout, err := time.ParseDuration(getenvDefault("SUBMISSION_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMISSION_TIMEOUT: %w", err)
	}
	if submitTimeout <= 0 {
		return nil, fmt.Errorf("invalid SUBMISSION_TIMEOUT: must be positive, got %s", submitTimeout)
	}

	eager, err := strconv.ParseBool(getenvDefault("EAGER_VALIDATION", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid EAGER_VALIDATION: %w", err)
	}

	maxSessions, err := strconv.Atoi(getenvDefault("WIZARD_MAX_SESSIONS", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid WIZARD_MAX_SESSIONS: %w", err)
	}
	if maxSessions <= 0 {
		return nil, fmt.Errorf("invalid WIZARD_MAX_SESSIONS: must be positive, got %d", maxSessions)
	}

	sessionIdleTTL, err := time.ParseDuration(getenvDefault("WIZARD_SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WIZARD_SESSION_IDLE_TTL: %w", err)
	}
	if sessionIdleTTL <= 0 {
		return nil, fmt.Errorf("invalid WIZARD_SESSION_IDLE_TTL: must be positive, got %s", sessionIdleTTL)
	}

	draftBackend := strings.ToLower(getenvDefault("DRAFT_BACKEND", DraftBackendMemory))
	switch draftBackend {
	case DraftBackendMemory, DraftBackendRedis, DraftBackendDynamoDB:
	default:
		return nil, fmt.Errorf("invalid DRAFT_BACKEND %q", draftBackend)
	}

	submissionBackend := strings.ToLower(getenvDefault("SUBMISSION_BACKEND", SubmissionBackendDynamoDB))
	switch submissionBackend {
	case SubmissionBackendDynamoDB, SubmissionBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid SUBMISSION_BACKEND %q", submissionBackend)
	}

	return &Config{
		API: APIConfig{
			Port: apiPort,
		},
		Wizard: WizardConfig{
			EagerValidation: eager,
			MaxSessions:     maxSessions,
			SessionIdleTTL:  sessionIdleTTL,
		},
		Drafts: DraftsConfig{
			Backend:  draftBackend,
			RedisURL: getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
			TTL:      draftTTL,
		},
		Submission: SubmissionConfig{
			Backend: submissionBackend,
			Timeout: submitTimeout,
		},
		Database: DatabaseConfig{
			Host:     getenvDefault("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getenvDefault("DB_USER", "estimates"),
			Password: getenvDefault("DB_PASSWORD", "estimates"),
			DBName:   getenvDefault("DB_NAME", "estimates"),
			SSLMode:  getenvDefault("DB_SSLMODE", "disable"),
		},
		AWS: AWSConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			EstimatesTable:  getenvDefault("ESTIMATES_TABLE", "estimates"),
			DraftsTable:     getenvDefault("DRAFTS_TABLE", "estimate_drafts"),
		},
	}, nil
}

// DSN returns the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

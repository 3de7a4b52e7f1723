package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Storage     StorageConfig
	Log         LogConfig
	CORS        CORSConfig
	OCR         OCRConfig
	Translation TranslationConfig
	Summarizer  SummarizerConfig
	Imaging     ImagingConfig
	Email       EmailConfig
}

// EmailConfig holds newsletter email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OCRConfig holds settings for the Vision OCR client.
type OCRConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Endpoint          string        `mapstructure:"endpoint"`
	TimeoutSecs       int           `mapstructure:"timeout_secs"`
	LanguageHints     []string      `mapstructure:"language_hints"`
	MaxAttempts       int           `mapstructure:"max_attempts"`
	BackoffInitial    time.Duration `mapstructure:"backoff_initial"`
	BackoffMax        time.Duration `mapstructure:"backoff_max"`
	BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
}

// Timeout returns the per-request OCR timeout, defaulting to 30s.
func (o *OCRConfig) Timeout() time.Duration {
	if o.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(o.TimeoutSecs) * time.Second
}

// TranslationConfig holds settings for the machine translation engine.
type TranslationConfig struct {
	Provider       string `mapstructure:"provider"`
	APIKey         string `mapstructure:"api_key"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSecs    int    `mapstructure:"timeout_secs"`
	ChunkSize      int    `mapstructure:"chunk_size"`
	Concurrency    int    `mapstructure:"concurrency"`
	TargetLanguage string `mapstructure:"target_language"`
}

// Timeout returns the per-call translation timeout, defaulting to 30s.
func (t *TranslationConfig) Timeout() time.Duration {
	if t.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(t.TimeoutSecs) * time.Second
}

// SummarizerConfig holds settings for the generative summary provider.
type SummarizerConfig struct {
	Provider      string        `mapstructure:"provider"`
	APIKey        string        `mapstructure:"api_key"`
	Model         string        `mapstructure:"model"`
	Project       string        `mapstructure:"project"`
	Location      string        `mapstructure:"location"`
	TimeoutSecs   int           `mapstructure:"timeout_secs"`
	MaxInputChars int           `mapstructure:"max_input_chars"`
	BackfillEvery time.Duration `mapstructure:"backfill_every"` // zero disables the backfill worker
	BackfillBatch int           `mapstructure:"backfill_batch"`

	Fallback SummarizerFallbackConfig `mapstructure:"fallback"`
}

// SummarizerFallbackConfig names a second provider tried when the primary fails.
type SummarizerFallbackConfig struct {
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
}

// FallbackConfig returns the fallback provider settings, or nil if not configured.
// Shared settings such as timeouts and input limits are inherited.
func (s *SummarizerConfig) FallbackConfig() *SummarizerConfig {
	if s.Fallback.Provider == "" {
		return nil
	}
	fb := *s
	fb.Provider = s.Fallback.Provider
	fb.APIKey = s.Fallback.APIKey
	fb.Model = s.Fallback.Model
	fb.Fallback = SummarizerFallbackConfig{}
	return &fb
}

// ImagingConfig holds image preprocessing settings.
type ImagingConfig struct {
	JPEGQuality    int   `mapstructure:"jpeg_quality"`
	ThresholdFloor int   `mapstructure:"threshold_floor"`
	MaxPixels      int64 `mapstructure:"max_pixels"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// StorageConfig selects and configures the blob store for uploaded scans.
type StorageConfig struct {
	Provider      string `mapstructure:"provider"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
	S3            S3Config
	GCS           GCSConfig
	Local         LocalConfig
}

// Bucket returns the bucket name for the active provider.
func (s *StorageConfig) Bucket() string {
	switch s.Provider {
	case "s3":
		return s.S3.Bucket
	case "gcs":
		return s.GCS.Bucket
	default:
		return ""
	}
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// GCSConfig holds Google Cloud Storage settings.
type GCSConfig struct {
	Bucket          string `mapstructure:"bucket"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// LocalConfig holds settings for the local-disk blob store.
type LocalConfig struct {
	Root      string `mapstructure:"root"`
	PublicURL string `mapstructure:"public_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LANDREC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LANDREC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "landrec")
	v.SetDefault("db.password", "landrec_secret")
	v.SetDefault("db.name", "landrecords")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.max_file_size_mb", 16)
	v.SetDefault("storage.presign_expiry", 3600)
	v.SetDefault("storage.s3.region", "ap-south-1")
	v.SetDefault("storage.s3.bucket", "landrecords-uploads")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.gcs.bucket", "landrecords-uploads")
	v.SetDefault("storage.gcs.credentials_file", "")
	v.SetDefault("storage.local.root", "./uploads")
	v.SetDefault("storage.local.public_url", "http://localhost:8080/uploads")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (vite dev server)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// OCR defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "")
	v.SetDefault("ocr.timeout_secs", 30)
	v.SetDefault("ocr.language_hints", "ur,hi,en,pa")
	v.SetDefault("ocr.max_attempts", 3)
	v.SetDefault("ocr.backoff_initial", "500ms")
	v.SetDefault("ocr.backoff_max", "5s")
	v.SetDefault("ocr.backoff_multiplier", 2.0)

	// Translation defaults
	v.SetDefault("translation.provider", "google")
	v.SetDefault("translation.api_key", "")
	v.SetDefault("translation.endpoint", "")
	v.SetDefault("translation.timeout_secs", 30)
	v.SetDefault("translation.chunk_size", 5000)
	v.SetDefault("translation.concurrency", 4)
	v.SetDefault("translation.target_language", "en")

	// Summarizer defaults
	v.SetDefault("summarizer.provider", "gemini")
	v.SetDefault("summarizer.api_key", "")
	v.SetDefault("summarizer.model", "")
	v.SetDefault("summarizer.project", "")
	v.SetDefault("summarizer.location", "asia-south1")
	v.SetDefault("summarizer.timeout_secs", 30)
	v.SetDefault("summarizer.max_input_chars", 15000)
	v.SetDefault("summarizer.backfill_every", "0s")
	v.SetDefault("summarizer.backfill_batch", 20)
	v.SetDefault("summarizer.fallback.provider", "")
	v.SetDefault("summarizer.fallback.api_key", "")
	v.SetDefault("summarizer.fallback.model", "")

	// Imaging defaults
	v.SetDefault("imaging.jpeg_quality", 90)
	v.SetDefault("imaging.threshold_floor", 150)
	v.SetDefault("imaging.max_pixels", 50_000_000)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@landrecords.local")
	v.SetDefault("email.from_name", "Land Records Digitization")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "LANDREC_SERVER_PORT",
		"server.read_timeout":          "LANDREC_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "LANDREC_SERVER_WRITE_TIMEOUT",
		"server.environment":           "LANDREC_SERVER_ENVIRONMENT",
		"db.host":                      "LANDREC_DB_HOST",
		"db.port":                      "LANDREC_DB_PORT",
		"db.user":                      "LANDREC_DB_USER",
		"db.password":                  "LANDREC_DB_PASSWORD",
		"db.name":                      "LANDREC_DB_NAME",
		"db.sslmode":                   "LANDREC_DB_SSLMODE",
		"db.max_open":                  "LANDREC_DB_MAX_OPEN",
		"db.max_idle":                  "LANDREC_DB_MAX_IDLE",
		"storage.provider":             "LANDREC_STORAGE_PROVIDER",
		"storage.max_file_size_mb":     "LANDREC_STORAGE_MAX_FILE_SIZE_MB",
		"storage.presign_expiry":       "LANDREC_STORAGE_PRESIGN_EXPIRY",
		"storage.s3.region":            "LANDREC_STORAGE_S3_REGION",
		"storage.s3.bucket":            "LANDREC_STORAGE_S3_BUCKET",
		"storage.s3.endpoint":          "LANDREC_STORAGE_S3_ENDPOINT",
		"storage.s3.access_key":        "LANDREC_STORAGE_S3_ACCESS_KEY",
		"storage.s3.secret_key":        "LANDREC_STORAGE_S3_SECRET_KEY",
		"storage.gcs.bucket":           "LANDREC_STORAGE_GCS_BUCKET",
		"storage.gcs.credentials_file": "LANDREC_STORAGE_GCS_CREDENTIALS_FILE",
		"storage.local.root":           "LANDREC_STORAGE_LOCAL_ROOT",
		"storage.local.public_url":     "LANDREC_STORAGE_LOCAL_PUBLIC_URL",
		"log.level":                    "LANDREC_LOG_LEVEL",
		"log.format":                   "LANDREC_LOG_FORMAT",
		"cors.allowed_origins":         "LANDREC_CORS_ALLOWED_ORIGINS",
		"ocr.api_key":                  "LANDREC_OCR_API_KEY",
		"ocr.endpoint":                 "LANDREC_OCR_ENDPOINT",
		"ocr.timeout_secs":             "LANDREC_OCR_TIMEOUT_SECS",
		"ocr.language_hints":           "LANDREC_OCR_LANGUAGE_HINTS",
		"ocr.max_attempts":             "LANDREC_OCR_MAX_ATTEMPTS",
		"ocr.backoff_initial":          "LANDREC_OCR_BACKOFF_INITIAL",
		"ocr.backoff_max":              "LANDREC_OCR_BACKOFF_MAX",
		"ocr.backoff_multiplier":       "LANDREC_OCR_BACKOFF_MULTIPLIER",
		"translation.provider":         "LANDREC_TRANSLATION_PROVIDER",
		"translation.api_key":          "LANDREC_TRANSLATION_API_KEY",
		"translation.endpoint":         "LANDREC_TRANSLATION_ENDPOINT",
		"translation.timeout_secs":     "LANDREC_TRANSLATION_TIMEOUT_SECS",
		"translation.chunk_size":       "LANDREC_TRANSLATION_CHUNK_SIZE",
		"translation.concurrency":      "LANDREC_TRANSLATION_CONCURRENCY",
		"translation.target_language":  "LANDREC_TRANSLATION_TARGET_LANGUAGE",
		"summarizer.provider":          "LANDREC_SUMMARIZER_PROVIDER",
		"summarizer.api_key":           "LANDREC_SUMMARIZER_API_KEY",
		"summarizer.model":             "LANDREC_SUMMARIZER_MODEL",
		"summarizer.project":           "LANDREC_SUMMARIZER_PROJECT",
		"summarizer.location":          "LANDREC_SUMMARIZER_LOCATION",
		"summarizer.timeout_secs":      "LANDREC_SUMMARIZER_TIMEOUT_SECS",
		"summarizer.max_input_chars":   "LANDREC_SUMMARIZER_MAX_INPUT_CHARS",
		"summarizer.backfill_every":    "LANDREC_SUMMARIZER_BACKFILL_EVERY",
		"summarizer.backfill_batch":    "LANDREC_SUMMARIZER_BACKFILL_BATCH",
		"summarizer.fallback.provider": "LANDREC_SUMMARIZER_FALLBACK_PROVIDER",
		"summarizer.fallback.api_key":  "LANDREC_SUMMARIZER_FALLBACK_API_KEY",
		"summarizer.fallback.model":    "LANDREC_SUMMARIZER_FALLBACK_MODEL",
		"imaging.jpeg_quality":         "LANDREC_IMAGING_JPEG_QUALITY",
		"imaging.threshold_floor":      "LANDREC_IMAGING_THRESHOLD_FLOOR",
		"imaging.max_pixels":           "LANDREC_IMAGING_MAX_PIXELS",
		"email.provider":               "LANDREC_EMAIL_PROVIDER",
		"email.region":                 "LANDREC_EMAIL_REGION",
		"email.from_address":           "LANDREC_EMAIL_FROM_ADDRESS",
		"email.from_name":              "LANDREC_EMAIL_FROM_NAME",
		"email.frontend_url":           "LANDREC_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LANDREC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LANDREC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Storage = StorageConfig{
		Provider:      strings.ToLower(v.GetString("storage.provider")),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
		S3: S3Config{
			Region:    v.GetString("storage.s3.region"),
			Bucket:    v.GetString("storage.s3.bucket"),
			Endpoint:  v.GetString("storage.s3.endpoint"),
			AccessKey: v.GetString("storage.s3.access_key"),
			SecretKey: v.GetString("storage.s3.secret_key"),
		},
		GCS: GCSConfig{
			Bucket:          v.GetString("storage.gcs.bucket"),
			CredentialsFile: v.GetString("storage.gcs.credentials_file"),
		},
		Local: LocalConfig{
			Root:      v.GetString("storage.local.root"),
			PublicURL: v.GetString("storage.local.public_url"),
		},
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	cfg.OCR = OCRConfig{
		APIKey:            v.GetString("ocr.api_key"),
		Endpoint:          v.GetString("ocr.endpoint"),
		TimeoutSecs:       v.GetInt("ocr.timeout_secs"),
		LanguageHints:     splitList(v.GetString("ocr.language_hints")),
		MaxAttempts:       v.GetInt("ocr.max_attempts"),
		BackoffInitial:    v.GetDuration("ocr.backoff_initial"),
		BackoffMax:        v.GetDuration("ocr.backoff_max"),
		BackoffMultiplier: v.GetFloat64("ocr.backoff_multiplier"),
	}

	cfg.Translation = TranslationConfig{
		Provider:       v.GetString("translation.provider"),
		APIKey:         v.GetString("translation.api_key"),
		Endpoint:       v.GetString("translation.endpoint"),
		TimeoutSecs:    v.GetInt("translation.timeout_secs"),
		ChunkSize:      v.GetInt("translation.chunk_size"),
		Concurrency:    v.GetInt("translation.concurrency"),
		TargetLanguage: v.GetString("translation.target_language"),
	}

	cfg.Summarizer = SummarizerConfig{
		Provider:      v.GetString("summarizer.provider"),
		APIKey:        v.GetString("summarizer.api_key"),
		Model:         v.GetString("summarizer.model"),
		Project:       v.GetString("summarizer.project"),
		Location:      v.GetString("summarizer.location"),
		TimeoutSecs:   v.GetInt("summarizer.timeout_secs"),
		MaxInputChars: v.GetInt("summarizer.max_input_chars"),
		BackfillEvery: v.GetDuration("summarizer.backfill_every"),
		BackfillBatch: v.GetInt("summarizer.backfill_batch"),
		Fallback: SummarizerFallbackConfig{
			Provider: v.GetString("summarizer.fallback.provider"),
			APIKey:   v.GetString("summarizer.fallback.api_key"),
			Model:    v.GetString("summarizer.fallback.model"),
		},
	}

	cfg.Imaging = ImagingConfig{
		JPEGQuality:    v.GetInt("imaging.jpeg_quality"),
		ThresholdFloor: v.GetInt("imaging.threshold_floor"),
		MaxPixels:      v.GetInt64("imaging.max_pixels"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

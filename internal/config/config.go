package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// URL validation, capture pipeline, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the browser origins allowed by CORS, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"presell" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to issue and verify API tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Admin configures the administrative endpoints
	Admin struct {
		// APIKey must be sent in the X-API-Key header. Admin endpoints reject every request when empty
		APIKey string `env:"ADMIN_API_KEY" yaml:"apiKey"`
	} `yaml:"admin"`

	// Validator configures destination URL validation
	Validator struct {
		// AllowedDomains are the platform domains whose subdomains are accepted as destinations
		AllowedDomains []string `env:"VALIDATOR_ALLOWED_DOMAINS" env-default:"hotmart.com,kiwify.com.br,eduzz.com,monetizze.com.br,braip.com,clickbank.net,digistore24.com" env-separator:"," yaml:"allowedDomains"` //nolint: lll
		// MaxLength is the maximum accepted URL length in characters
		MaxLength int `env:"VALIDATOR_MAX_LENGTH" env-default:"2000" yaml:"maxLength"`
		// RefreshInterval controls how often domains trusted by other processes are loaded
		RefreshInterval time.Duration `env:"VALIDATOR_REFRESH_INTERVAL" env-default:"1m" yaml:"refreshInterval"`
	} `yaml:"validator"`

	// Capture configures the bounded capture orchestrator
	Capture struct {
		// Budget is the wall-clock limit for a single capture invocation
		Budget time.Duration `env:"CAPTURE_BUDGET" env-default:"30s" yaml:"budget"`
		// PersistTimeout bounds every attempt to persist a capture outcome
		PersistTimeout time.Duration `env:"CAPTURE_PERSIST_TIMEOUT" env-default:"5s" yaml:"persistTimeout"`
		// PollDeadline is how long after a capture request pollers are told the capture is over regardless of storage
		PollDeadline time.Duration `env:"CAPTURE_POLL_DEADLINE" env-default:"45s" yaml:"pollDeadline"`
		// MaxAttempts is the number of times a capture job may be attempted when it errors before persisting
		MaxAttempts int `env:"CAPTURE_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
	} `yaml:"capture"`

	// Screenshot configures the capture backend
	Screenshot struct {
		// Backend selects the implementation: chromedp, urlscanio or none
		Backend string `env:"SCREENSHOT_BACKEND" env-default:"chromedp" yaml:"backend"`
		// MaxParallel bounds the number of browser tabs open at the same time
		MaxParallel int `env:"SCREENSHOT_MAX_PARALLEL" env-default:"4" yaml:"maxParallel"`
		// DomainQPS limits page loads per destination host
		DomainQPS float64 `env:"SCREENSHOT_DOMAIN_QPS" env-default:"1" yaml:"domainQPS"`
		// SettleDelay is waited after the page is ready and before the screenshot is taken
		SettleDelay time.Duration `env:"SCREENSHOT_SETTLE_DELAY" env-default:"1500ms" yaml:"settleDelay"`
		// Quality is the JPEG quality of the screenshots
		Quality int `env:"SCREENSHOT_QUALITY" env-default:"80" yaml:"quality"`
		// DesktopWidth and DesktopHeight are the desktop viewport size
		DesktopWidth  int64 `env:"SCREENSHOT_DESKTOP_WIDTH" env-default:"1366" yaml:"desktopWidth"`
		DesktopHeight int64 `env:"SCREENSHOT_DESKTOP_HEIGHT" env-default:"768" yaml:"desktopHeight"`
		// MobileWidth and MobileHeight are the mobile viewport size
		MobileWidth  int64 `env:"SCREENSHOT_MOBILE_WIDTH" env-default:"390" yaml:"mobileWidth"`
		MobileHeight int64 `env:"SCREENSHOT_MOBILE_HEIGHT" env-default:"844" yaml:"mobileHeight"`
		// MobileUserAgent is sent when capturing the mobile viewport
		MobileUserAgent string `env:"SCREENSHOT_MOBILE_USER_AGENT" env-default:"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1" yaml:"mobileUserAgent"` //nolint: lll
		// ExecPath optionally points to the Chrome binary
		ExecPath string `env:"SCREENSHOT_EXEC_PATH" yaml:"execPath"`

		// URLScanIO configures the urlscan.io backend
		URLScanIO struct {
			// Token is the urlscan.io API key
			Token string `env:"URLSCANIO_TOKEN" yaml:"token"`
			// PollInterval is the delay between result polls
			PollInterval time.Duration `env:"URLSCANIO_POLL_INTERVAL" env-default:"2s" yaml:"pollInterval"`
		} `yaml:"urlscanio"`
	} `yaml:"screenshot"`

	// Artifacts configures where screenshots are stored
	Artifacts struct {
		// Driver selects the store: local or gcs
		Driver string `env:"ARTIFACTS_DRIVER" env-default:"local" yaml:"driver"`
		// LocalDir is the base directory of the local store
		LocalDir string `env:"ARTIFACTS_LOCAL_DIR" env-default:"./artifacts" yaml:"localDir"`
		// Bucket is the GCS bucket name
		Bucket string `env:"ARTIFACTS_BUCKET" yaml:"bucket"`
		// PublicBaseURL, when set, is used as the prefix of artifact references
		PublicBaseURL string `env:"ARTIFACTS_PUBLIC_BASE_URL" yaml:"publicBaseURL"`
	} `yaml:"artifacts"`

	// PubSub configures capture completion events
	PubSub struct {
		// Enabled turns event publishing on
		Enabled bool `env:"PUBSUB_ENABLED" env-default:"false" yaml:"enabled"`
		// ProjectID is the Google Cloud project of the topic
		ProjectID string `env:"PUBSUB_PROJECT_ID" yaml:"projectID"`
		// Topic is the topic events are published to
		Topic string `env:"PUBSUB_TOPIC" env-default:"presell-captures" yaml:"topic"`
	} `yaml:"pubsub"`

	// Tracing configures otel spans
	Tracing struct {
		// SampleRatio is the share of root traces sampled, between 0 and 1
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
		// LogSpans writes ended spans to the debug log
		LogSpans bool `env:"TRACING_LOG_SPANS" env-default:"false" yaml:"logSpans"`
	} `yaml:"tracing"`

	// Worker configures background job processing
	Worker struct {
		// MaxWorkers is the number of capture jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

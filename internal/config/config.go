package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vnode/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vnode.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultMaxBodyBytes bounds request bodies.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "vnode"
)

// Environment variables that override file values.
const (
	EnvHost = "VNODE_HOST"
	EnvPort = "VNODE_PORT"

	// EnvOTLPEndpoint sets Tracing.Endpoint.
	EnvOTLPEndpoint = "VNODE_OTLP_ENDPOINT"
)

// Config represents the complete vnode.json configuration.
type Config struct {
	// Server contains HTTP service settings.
	Server ServerConfig `json:"server,omitempty"`

	// Log contains logger settings.
	Log LogConfig `json:"log,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Components is the path to a YAML file of component definitions.
	// Relative paths resolve against the config file's directory.
	Components string `json:"components,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP service settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MetricsPath is the Prometheus scrape path. Empty disables it.
	MetricsPath string `json:"metricsPath,omitempty"`

	// MaxBodyBytes bounds the size of request bodies.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`

	// ShutdownTimeout is a duration string (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// JSON selects the JSON handler instead of text.
	JSON bool `json:"json,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// TracerName is the name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`

	// Endpoint is the OTLP/HTTP collector as host:port.
	// Empty keeps tracing in-process with no exporter.
	Endpoint string `json:"endpoint,omitempty"`

	// Insecure disables TLS to the collector.
	Insecure bool `json:"insecure,omitempty"`

	// SampleRatio is the fraction of traces sampled, in (0, 1].
	// Zero selects 1.
	SampleRatio float64 `json:"sampleRatio,omitempty"`

	// Environment is reported as the deployment environment.
	Environment string `json:"environment,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads vnode.json from dir. A missing file yields defaults.
// Environment overrides are applied after the file.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg := New()
	if _, err := os.Stat(path); err == nil {
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E140").Wrap(err).
			WithDetail("Could not read " + path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E140").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory of the config file, or ".".
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// ComponentsPath returns the resolved component definitions path, or "".
func (c *Config) ComponentsPath() string {
	if c.Components == "" || filepath.IsAbs(c.Components) {
		return c.Components
	}
	return filepath.Join(c.Dir(), c.Components)
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return DefaultShutdownTimeout
	}
	return d
}

// LogLevel returns the slog level for Log.Level. Unknown values map to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyDefaults fills unset fields with default values.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}
	if c.Tracing.Environment == "" {
		c.Tracing.Environment = "development"
	}
}

// applyEnv applies VNODE_HOST, VNODE_PORT and VNODE_OTLP_ENDPOINT.
func (c *Config) applyEnv() error {
	if host := os.Getenv(EnvHost); host != "" {
		c.Server.Host = host
	}
	if endpoint := os.Getenv(EnvOTLPEndpoint); endpoint != "" {
		c.Tracing.Endpoint = endpoint
	}
	if port := os.Getenv(EnvPort); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return errors.New("E141").
				WithDetail(EnvPort + " must be a number, got " + strconv.Quote(port)).
				Wrap(err)
		}
		c.Server.Port = n
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("E141").
			WithDetail("server.port must be between 1 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("E141").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	if c.Server.MetricsPath != "" && !strings.HasPrefix(c.Server.MetricsPath, "/") {
		return errors.New("E141").
			WithDetail("server.metricsPath must start with /, got " + strconv.Quote(c.Server.MetricsPath))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("E141").
			WithDetail("tracing.sampleRatio must be between 0 and 1, got " + strconv.FormatFloat(c.Tracing.SampleRatio, 'g', -1, 64))
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E141").
			WithDetail("server.shutdownTimeout is not a duration: " + c.Server.ShutdownTimeout).
			Wrap(err)
	}
	return nil
}

package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultBasePath       = "/"
	defaultSiteTitle      = "Sibna Protocol Docs"
	defaultSiteLang       = "en"
	defaultPage           = "home"
	defaultEnvironment    = "local"
	defaultExportDir      = "dist"
	defaultLogLevel       = "info"
)

// Environment keys.
const (
	EnvConfigFile     = "DOCS_CONFIG_FILE"
	EnvHTTPAddr       = "DOCS_HTTP_ADDR"
	EnvPort           = "PORT"
	EnvReadTimeout    = "DOCS_SERVER_READ_TIMEOUT"
	EnvWriteTimeout   = "DOCS_SERVER_WRITE_TIMEOUT"
	EnvIdleTimeout    = "DOCS_SERVER_IDLE_TIMEOUT"
	EnvRequestTimeout = "DOCS_SERVER_REQUEST_TIMEOUT"
	EnvBasePath       = "DOCS_BASE_PATH"
	EnvSiteTitle      = "DOCS_SITE_TITLE"
	EnvSiteLang       = "DOCS_SITE_LANG"
	EnvDefaultPage    = "DOCS_DEFAULT_PAGE"
	EnvContentDir     = "DOCS_CONTENT_DIR"
	EnvEnvironment    = "DOCS_ENVIRONMENT"
	EnvExportDir      = "DOCS_EXPORT_DIR"
	EnvPublishBucket  = "DOCS_PUBLISH_BUCKET"
	EnvPublishPrefix  = "DOCS_PUBLISH_PREFIX"
	EnvLogLevel       = "LOG_LEVEL"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Export  ExportConfig
	Publish PublishConfig
	Log     LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// SiteConfig describes the documentation site itself.
type SiteConfig struct {
	Title       string
	Lang        string
	BasePath    string
	DefaultPage string
	ContentDir  string
	Environment string
}

// ExportConfig controls static exports.
type ExportConfig struct {
	Dir string
}

// PublishConfig names the Cloud Storage destination for exports.
type PublishConfig struct {
	Bucket string
	Prefix string
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	configFile   string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithConfigFile loads a TOML file beneath every other source. It takes precedence over
// DOCS_CONFIG_FILE.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) {
		o.configFile = path
	}
}

// WithEnvMap injects an explicit key/value map. Values in the map take precedence over
// system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration. Precedence, lowest first: defaults, TOML file,
// .env file, process environment, explicit env map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookupEnv := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	configFile := strings.TrimSpace(options.configFile)
	if configFile == "" {
		configFile, _ = lookupEnv(EnvConfigFile)
	}
	fileValues, err := loadConfigFile(configFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := lookupEnv(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}

	var invalid []string
	duration := func(field, key string, fallback time.Duration) time.Duration {
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			return fallback
		}
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil || d <= 0 {
			invalid = append(invalid, field)
			return fallback
		}
		return d
	}

	port := stringWithDefault(lookup, EnvPort, defaultPort)
	cfg := Config{
		Server: ServerConfig{
			Addr:           stringWithDefault(lookup, EnvHTTPAddr, ":"+port),
			ReadTimeout:    duration("Server.ReadTimeout", EnvReadTimeout, defaultReadTimeout),
			WriteTimeout:   duration("Server.WriteTimeout", EnvWriteTimeout, defaultWriteTimeout),
			IdleTimeout:    duration("Server.IdleTimeout", EnvIdleTimeout, defaultIdleTimeout),
			RequestTimeout: duration("Server.RequestTimeout", EnvRequestTimeout, defaultRequestTimeout),
		},
		Site: SiteConfig{
			Title:       stringWithDefault(lookup, EnvSiteTitle, defaultSiteTitle),
			Lang:        stringWithDefault(lookup, EnvSiteLang, defaultSiteLang),
			BasePath:    NormalizeBasePath(stringWithDefault(lookup, EnvBasePath, defaultBasePath)),
			DefaultPage: strings.ToLower(stringWithDefault(lookup, EnvDefaultPage, defaultPage)),
			ContentDir:  stringWithDefault(lookup, EnvContentDir, ""),
			Environment: strings.ToLower(stringWithDefault(lookup, EnvEnvironment, defaultEnvironment)),
		},
		Export: ExportConfig{
			Dir: stringWithDefault(lookup, EnvExportDir, defaultExportDir),
		},
		Publish: PublishConfig{
			Bucket: stringWithDefault(lookup, EnvPublishBucket, ""),
			Prefix: strings.Trim(stringWithDefault(lookup, EnvPublishPrefix, ""), "/"),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, EnvLogLevel, defaultLogLevel)),
		},
	}

	if tag, err := language.Parse(cfg.Site.Lang); err != nil {
		invalid = append(invalid, "Site.Lang")
	} else {
		cfg.Site.Lang = tag.String()
	}

	if err := validateConfig(cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	missing := append([]string(nil), invalid...)
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		missing = append(missing, "Server.Addr")
	}
	if strings.TrimSpace(cfg.Site.Title) == "" {
		missing = append(missing, "Site.Title")
	}
	if strings.TrimSpace(cfg.Site.DefaultPage) == "" {
		missing = append(missing, "Site.DefaultPage")
	}
	if strings.TrimSpace(cfg.Export.Dir) == "" {
		missing = append(missing, "Export.Dir")
	}
	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

// NormalizeBasePath returns a path that starts and ends with "/".
func NormalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p + "/"
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

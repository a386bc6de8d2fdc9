package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Security SecurityConfig `yaml:"security"`
	Media    MediaConfig    `yaml:"media"`
	Email    EmailConfig    `yaml:"email"`
	Admin    AdminConfig    `yaml:"admin"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port                string `yaml:"port"`
	Debug               bool   `yaml:"debug"`
	APIPrefix           string `yaml:"api_prefix"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	// MaxUploadBytes bounds every request body.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

type DatabaseConfig struct {
	Driver                string `yaml:"driver"`
	URL                   string `yaml:"url"`
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	User                  string `yaml:"user"`
	Password              string `yaml:"password"`
	Name                  string `yaml:"name"`
	SSLMode               string `yaml:"sslmode"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
	AutoMigrate           bool   `yaml:"auto_migrate"`
}

type SecurityConfig struct {
	SecretKey          string   `yaml:"secret_key"`
	TokenTTLMinutes    int      `yaml:"token_ttl_minutes"`
	AllowedHosts       []string `yaml:"allowed_hosts"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	SSLRedirect        bool     `yaml:"ssl_redirect"`
	HSTSSeconds        int      `yaml:"hsts_seconds"`
}

type MediaConfig struct {
	Backend      string   `yaml:"backend"`
	Root         string   `yaml:"root"`
	URL          string   `yaml:"url"`
	ImageQuality int      `yaml:"image_quality"`
	MaxWidth     int      `yaml:"max_width"`
	MaxHeight    int      `yaml:"max_height"`
	S3           S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	// PublicURL is the base used in stored references, e.g. a CDN host.
	PublicURL string `yaml:"public_url"`
}

type EmailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	UseTLS   bool   `yaml:"use_tls"`
	UseSSL   bool   `yaml:"use_ssl"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
	// ResetURL is the admin page that accepts ?token= for password resets.
	ResetURL string `yaml:"reset_url"`
}

// Enabled reports whether SMTP credentials are configured.
func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.User != ""
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                "8000",
			APIPrefix:           "/api",
			ReadTimeoutSeconds:  60,
			WriteTimeoutSeconds: 60,
			MaxUploadBytes:      100 << 20,
		},
		Database: DatabaseConfig{
			Driver:                "postgres",
			Host:                  "localhost",
			Port:                  5432,
			User:                  "postgres",
			Name:                  "eco_tours_db",
			SSLMode:               "disable",
			ConnectTimeoutSeconds: 60,
			AutoMigrate:           true,
		},
		Security: SecurityConfig{
			SecretKey:          "insecure-change-this-in-production",
			TokenTTLMinutes:    60,
			AllowedHosts:       []string{"*"},
			CORSAllowedOrigins: []string{"https://admin.echotourslanka.lk", "https://echotourslanka.lk"},
			SSLRedirect:        true,
			HSTSSeconds:        31536000,
		},
		Media: MediaConfig{
			Backend:      "local",
			Root:         "media",
			URL:          "/media/",
			ImageQuality: 95,
			MaxWidth:     1920,
			MaxHeight:    1080,
		},
		Email: EmailConfig{
			Host:     "smtp.gmail.com",
			Port:     587,
			UseTLS:   true,
			FromName: "Eco Tours Lanka",
			ResetURL: "https://admin.echotourslanka.lk/reset-password",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONFIG_PATH, and finally the environment (a local .env file is honoured).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	e := envReader{lookup: lookup}

	e.str("PORT", &c.Server.Port)
	e.boolean("DEBUG", &c.Server.Debug)
	e.str("API_PREFIX", &c.Server.APIPrefix)
	e.integer("READ_TIMEOUT_SECONDS", &c.Server.ReadTimeoutSeconds)
	e.integer("WRITE_TIMEOUT_SECONDS", &c.Server.WriteTimeoutSeconds)
	e.int64("DATA_UPLOAD_MAX_MEMORY_SIZE", &c.Server.MaxUploadBytes)

	e.str("DB_DRIVER", &c.Database.Driver)
	e.str("DATABASE_URL", &c.Database.URL)
	e.str("DB_HOST", &c.Database.Host)
	e.integer("DB_PORT", &c.Database.Port)
	e.str("DB_USER", &c.Database.User)
	e.str("DB_PASSWORD", &c.Database.Password)
	e.str("DB_NAME", &c.Database.Name)
	e.str("DB_SSLMODE", &c.Database.SSLMode)
	e.integer("DB_CONNECT_TIMEOUT", &c.Database.ConnectTimeoutSeconds)
	e.boolean("DB_AUTO_MIGRATE", &c.Database.AutoMigrate)

	e.str("SECRET_KEY", &c.Security.SecretKey)
	e.integer("JWT_TTL_MINUTES", &c.Security.TokenTTLMinutes)
	e.list("ALLOWED_HOSTS", &c.Security.AllowedHosts)
	e.list("CORS_ALLOWED_ORIGINS", &c.Security.CORSAllowedOrigins)
	e.boolean("SECURE_SSL_REDIRECT", &c.Security.SSLRedirect)
	e.integer("SECURE_HSTS_SECONDS", &c.Security.HSTSSeconds)

	e.str("MEDIA_BACKEND", &c.Media.Backend)
	e.str("MEDIA_ROOT", &c.Media.Root)
	e.str("MEDIA_URL", &c.Media.URL)
	e.integer("IMAGE_QUALITY", &c.Media.ImageQuality)
	e.size("IMAGE_MAX_SIZE", &c.Media.MaxWidth, &c.Media.MaxHeight)
	e.str("S3_BUCKET", &c.Media.S3.Bucket)
	e.str("S3_REGION", &c.Media.S3.Region)
	e.str("S3_ENDPOINT", &c.Media.S3.Endpoint)
	e.str("S3_ACCESS_KEY_ID", &c.Media.S3.AccessKeyID)
	e.str("S3_SECRET_ACCESS_KEY", &c.Media.S3.SecretAccessKey)
	e.str("S3_PUBLIC_URL", &c.Media.S3.PublicURL)

	e.str("EMAIL_HOST", &c.Email.Host)
	e.integer("EMAIL_PORT", &c.Email.Port)
	e.boolean("EMAIL_USE_TLS", &c.Email.UseTLS)
	e.boolean("EMAIL_USE_SSL", &c.Email.UseSSL)
	e.str("EMAIL_HOST_USER", &c.Email.User)
	e.str("EMAIL_HOST_PASSWORD", &c.Email.Password)
	e.str("DEFAULT_FROM_EMAIL", &c.Email.From)
	e.str("PASSWORD_RESET_URL", &c.Email.ResetURL)

	e.str("ADMIN_EMAIL", &c.Admin.Email)
	e.str("ADMIN_PASSWORD", &c.Admin.Password)

	e.str("LOG_LEVEL", &c.Logging.Level)

	if c.Email.From == "" {
		c.Email.From = c.Email.User
	}
	return e.err
}

// Validate rejects combinations that cannot work at runtime.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres or mysql)", c.Database.Driver)
	}
	switch c.Media.Backend {
	case "local":
	case "s3":
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when MEDIA_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unsupported MEDIA_BACKEND %q (use local or s3)", c.Media.Backend)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("DATA_UPLOAD_MAX_MEMORY_SIZE must be positive")
	}
	if c.Media.ImageQuality < 1 || c.Media.ImageQuality > 100 {
		return fmt.Errorf("IMAGE_QUALITY must be between 1 and 100")
	}
	if !c.Server.Debug && c.Security.SecretKey == DefaultConfig().Security.SecretKey {
		return fmt.Errorf("SECRET_KEY must be set when DEBUG is off")
	}
	return nil
}

// DSN returns the driver specific connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	switch d.Driver {
	case "mysql":
		my := mysql.NewConfig()
		my.User = d.User
		my.Passwd = d.Password
		my.Net = "tcp"
		my.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
		my.DBName = d.Name
		my.ParseTime = true
		my.Loc = time.UTC
		my.Timeout = time.Duration(d.ConnectTimeoutSeconds) * time.Second
		my.Params = map[string]string{"charset": "utf8mb4"}
		return my.FormatDSN()
	default:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:   d.Name,
		}
		q := url.Values{}
		q.Set("sslmode", d.SSLMode)
		q.Set("connect_timeout", strconv.Itoa(d.ConnectTimeoutSeconds))
		u.RawQuery = q.Encode()
		return u.String()
	}
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s SecurityConfig) TokenTTL() time.Duration {
	return time.Duration(s.TokenTTLMinutes) * time.Minute
}

type envReader struct {
	lookup lookupFunc
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	v, ok := e.lookup(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (e *envReader) fail(key, value string) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid value %q for %s", value, key)
	}
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) boolean(key string, dst *bool) {
	if v, ok := e.get(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v)
			return
		}
		*dst = b
	}
}

func (e *envReader) integer(key string, dst *int) {
	if v, ok := e.get(key); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v)
			return
		}
		*dst = n
	}
}

func (e *envReader) int64(key string, dst *int64) {
	if v, ok := e.get(key); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			e.fail(key, v)
			return
		}
		*dst = n
	}
}

func (e *envReader) list(key string, dst *[]string) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func (e *envReader) size(key string, w, h *int) {
	v, ok := e.get(key)
	if !ok || v == "" {
		return
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		e.fail(key, v)
		return
	}
	width, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		e.fail(key, v)
		return
	}
	*w, *h = width, height
}

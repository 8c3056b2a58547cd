package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration
type Config struct {
	MySQL    MySQLConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Migrate  bool
	HTTPAddr string
	SEO      SEOConfig
	Audit    AuditConfig
}

// MySQLConfig holds MySQL configuration
type MySQLConfig struct {
	DSN string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	ExpireMinutes int
	Issuer        string
}

// SEOConfig holds metadata/sitemap behavior configuration
type SEOConfig struct {
	CacheTTLSec         int
	DefaultLanguage     string
	SupportedLanguages  []string          // language codes served via hreflang
	I18nURLType         string            // "prefix" or "domain"
	I18nDomainMapping   map[string]string // language -> domain, for domain mode
	MobileViewportWidth int
	MobileThemeColor    string
	SmartAppBanner      string
	WebAppManifest      string
	AMPEnabled          bool
}

// AuditConfig holds SEO audit configuration
type AuditConfig struct {
	Enabled           bool
	MaxConcurrency    int
	RequestTimeoutSec int
	LinkCheckLimit    int // max links verified per page, 0 disables link checks
	MobileUserAgent   string
	DesktopUserAgent  string
}

const (
	defaultMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	defaultDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getEnv("MYSQL_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 1440),
			Issuer:        getEnv("JWT_ISSUER", "go_seo"),
		},
		Migrate:  getEnv("MIGRATE", "0") == "1",
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		SEO: SEOConfig{
			CacheTTLSec:         getEnvInt("SEO_CACHE_TTL_SEC", 3600),
			DefaultLanguage:     getEnv("SEO_DEFAULT_LANGUAGE", "en"),
			SupportedLanguages:  getEnvList("SEO_SUPPORTED_LANGUAGES", []string{"en"}),
			I18nURLType:         getEnv("SEO_I18N_URL_TYPE", "prefix"),
			I18nDomainMapping:   getEnvMap("SEO_I18N_DOMAIN_MAPPING"),
			MobileViewportWidth: getEnvInt("SEO_MOBILE_VIEWPORT_WIDTH", 375),
			MobileThemeColor:    getEnv("SEO_MOBILE_THEME_COLOR", "#000000"),
			SmartAppBanner:      getEnv("SEO_SMART_APP_BANNER", ""),
			WebAppManifest:      getEnv("SEO_WEB_APP_MANIFEST", ""),
			AMPEnabled:          getEnv("SEO_ENABLE_AMP", "0") == "1",
		},
		Audit: AuditConfig{
			Enabled:           getEnv("AUDIT_ENABLED", "1") == "1",
			MaxConcurrency:    getEnvInt("AUDIT_MAX_CONCURRENCY", 10),
			RequestTimeoutSec: getEnvInt("AUDIT_REQUEST_TIMEOUT_SEC", 30),
			LinkCheckLimit:    getEnvInt("AUDIT_LINK_CHECK_LIMIT", 50),
			MobileUserAgent:   getEnv("AUDIT_MOBILE_UA", defaultMobileUA),
			DesktopUserAgent:  getEnv("AUDIT_DESKTOP_UA", defaultDesktopUA),
		},
	}

	// Validate required fields
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SEO.I18nURLType != "prefix" && cfg.SEO.I18nURLType != "domain" {
		return nil, fmt.Errorf("SEO_I18N_URL_TYPE must be 'prefix' or 'domain'")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList parses a comma separated list, e.g. "en,de,fr"
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// getEnvMap parses "key=value,key=value" pairs, e.g. "de=example.de,fr=example.fr"
func getEnvMap(key string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(os.Getenv(key), ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}

// LoadFromINI loads configuration from INI file with environment variable override
func LoadFromINI(iniPath string) (*Config, error) {
	cfgFile, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load INI file: %w", err)
	}

	// Priority: ENV > INI > default
	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
			return value
		}
		return defaultValue
	}

	getValueInt := func(envKey, iniSection, iniKey string, defaultValue int) int {
		if value := os.Getenv(envKey); value != "" {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		if cfgFile.Section(iniSection).HasKey(iniKey) {
			if value, err := cfgFile.Section(iniSection).Key(iniKey).Int(); err == nil {
				return value
			}
		}
		return defaultValue
	}

	getValueBool := func(envKey, iniSection, iniKey string, defaultValue bool) bool {
		if value := os.Getenv(envKey); value != "" {
			return value == "1" || value == "true"
		}
		if value, err := cfgFile.Section(iniSection).Key(iniKey).Bool(); err == nil {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		MySQL: MySQLConfig{
			DSN: getValue("MYSQL_DSN", "mysql", "dsn", ""),
		},
		Redis: RedisConfig{
			Addr:     getValue("REDIS_ADDR", "redis", "addr", "localhost:6379"),
			Password: getValue("REDIS_PASS", "redis", "pass", ""),
			DB:       getValueInt("REDIS_DB", "redis", "db", 0),
		},
		JWT: JWTConfig{
			Secret:        getValue("JWT_SECRET", "jwt", "secret", ""),
			ExpireMinutes: getValueInt("JWT_EXPIRE_MINUTES", "jwt", "expire_minutes", 1440),
			Issuer:        getValue("JWT_ISSUER", "jwt", "issuer", "go_seo"),
		},
		Migrate:  getValueBool("MIGRATE", "app", "migrate", false),
		HTTPAddr: getValue("HTTP_ADDR", "http", "addr", ":8080"),
		SEO: SEOConfig{
			CacheTTLSec:         getValueInt("SEO_CACHE_TTL_SEC", "seo", "cache_ttl_sec", 3600),
			DefaultLanguage:     getValue("SEO_DEFAULT_LANGUAGE", "seo", "default_language", "en"),
			SupportedLanguages:  splitList(getValue("SEO_SUPPORTED_LANGUAGES", "seo", "supported_languages", "en")),
			I18nURLType:         getValue("SEO_I18N_URL_TYPE", "seo", "i18n_url_type", "prefix"),
			I18nDomainMapping:   splitMap(getValue("SEO_I18N_DOMAIN_MAPPING", "seo", "i18n_domain_mapping", "")),
			MobileViewportWidth: getValueInt("SEO_MOBILE_VIEWPORT_WIDTH", "seo", "mobile_viewport_width", 375),
			MobileThemeColor:    getValue("SEO_MOBILE_THEME_COLOR", "seo", "mobile_theme_color", "#000000"),
			SmartAppBanner:      getValue("SEO_SMART_APP_BANNER", "seo", "smart_app_banner", ""),
			WebAppManifest:      getValue("SEO_WEB_APP_MANIFEST", "seo", "web_app_manifest", ""),
			AMPEnabled:          getValueBool("SEO_ENABLE_AMP", "seo", "enable_amp", false),
		},
		Audit: AuditConfig{
			Enabled:           getValueBool("AUDIT_ENABLED", "audit", "enabled", true),
			MaxConcurrency:    getValueInt("AUDIT_MAX_CONCURRENCY", "audit", "max_concurrency", 10),
			RequestTimeoutSec: getValueInt("AUDIT_REQUEST_TIMEOUT_SEC", "audit", "request_timeout_sec", 30),
			LinkCheckLimit:    getValueInt("AUDIT_LINK_CHECK_LIMIT", "audit", "link_check_limit", 50),
			MobileUserAgent:   getValue("AUDIT_MOBILE_UA", "audit", "mobile_ua", defaultMobileUA),
			DesktopUserAgent:  getValue("AUDIT_DESKTOP_UA", "audit", "desktop_ua", defaultDesktopUA),
		},
	}

	// Validate required fields
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitMap(value string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(value, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}

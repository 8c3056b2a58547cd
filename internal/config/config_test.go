package config

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.MySQL.DSN == "" {
		t.Error("MySQL DSN should not be empty")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.JWT.Issuer != "go_seo" {
		t.Errorf("Expected issuer go_seo, got %s", cfg.JWT.Issuer)
	}
	if cfg.SEO.DefaultLanguage != "en" {
		t.Errorf("Expected default language en, got %s", cfg.SEO.DefaultLanguage)
	}
	if cfg.SEO.I18nURLType != "prefix" {
		t.Errorf("Expected i18n URL type prefix, got %s", cfg.SEO.I18nURLType)
	}
	if !cfg.Audit.Enabled {
		t.Error("Expected audits enabled by default")
	}
	if cfg.Audit.MaxConcurrency != 10 {
		t.Errorf("Expected audit concurrency 10, got %d", cfg.Audit.MaxConcurrency)
	}
}

func TestLoad_MissingMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Error("Expected error when MYSQL_DSN is missing")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/test")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when JWT_SECRET is missing")
	}
}

func TestLoad_InvalidI18nURLType(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SEO_I18N_URL_TYPE", "subfolder")

	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown i18n URL type")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "redis.example.com:6379")
	t.Setenv("REDIS_DB", "5")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SEO_SUPPORTED_LANGUAGES", "en, de ,fr")
	t.Setenv("SEO_I18N_URL_TYPE", "domain")
	t.Setenv("SEO_I18N_DOMAIN_MAPPING", "de=example.de, fr=example.fr")
	t.Setenv("AUDIT_LINK_CHECK_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Redis.Addr != "redis.example.com:6379" {
		t.Errorf("Expected custom Redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 5 {
		t.Errorf("Expected Redis DB 5, got %d", cfg.Redis.DB)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected HTTPAddr :9090, got %s", cfg.HTTPAddr)
	}

	langs := cfg.SEO.SupportedLanguages
	if len(langs) != 3 || langs[0] != "en" || langs[1] != "de" || langs[2] != "fr" {
		t.Errorf("Expected [en de fr], got %v", langs)
	}
	if cfg.SEO.I18nDomainMapping["de"] != "example.de" {
		t.Errorf("Expected de mapped to example.de, got %v", cfg.SEO.I18nDomainMapping)
	}
	if cfg.Audit.LinkCheckLimit != 5 {
		t.Errorf("Expected link check limit 5, got %d", cfg.Audit.LinkCheckLimit)
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("TEST_INT_VALUE", "not-a-number")

	if got := getEnvInt("TEST_INT_VALUE", 42); got != 42 {
		t.Errorf("Expected fallback 42, got %d", got)
	}
}

func TestLoadFromINI(t *testing.T) {
	iniContent := `[mysql]
dsn = ini:pass@tcp(localhost:3306)/ini

[jwt]
secret = ini-secret

[seo]
default_language = de
supported_languages = de,en

[audit]
enabled = false
`
	path := t.TempDir() + "/config.ini"
	if err := os.WriteFile(path, []byte(iniContent), 0644); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}

	// ENV must take precedence over INI
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SEO_DEFAULT_LANGUAGE", "fr")

	cfg, err := LoadFromINI(path)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.MySQL.DSN != "ini:pass@tcp(localhost:3306)/ini" {
		t.Errorf("Expected DSN from INI, got %s", cfg.MySQL.DSN)
	}
	if cfg.JWT.Secret != "ini-secret" {
		t.Errorf("Expected secret from INI, got %s", cfg.JWT.Secret)
	}
	if cfg.SEO.DefaultLanguage != "fr" {
		t.Errorf("Expected env override fr, got %s", cfg.SEO.DefaultLanguage)
	}
	if len(cfg.SEO.SupportedLanguages) != 2 {
		t.Errorf("Expected 2 supported languages, got %v", cfg.SEO.SupportedLanguages)
	}
	if cfg.Audit.Enabled {
		t.Error("Expected audits disabled via INI")
	}
}

func TestLoadFromINI_MissingFile(t *testing.T) {
	if _, err := LoadFromINI("/nonexistent/config.ini"); err == nil {
		t.Error("Expected error for missing INI file")
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL  = "15m"
	defaultRefreshTTL    = "168h"
	defaultVerifyCodeTTL = "5m"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultListenAddr    = ":8080"
	defaultUploadsDir    = "./uploads"
	defaultPortalSuffix  = "estatelink.local"
	defaultRateLimit     = "60"
	defaultAuthRateLimit = "10"
)

type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration
	RefreshTTL   time.Duration

	VerifyCodeTTL time.Duration

	// Requests per minute, per client IP.
	RateLimitPerMinute     int
	AuthRateLimitPerMinute int

	UploadsDir string
	// Base domain under which property portals are served; a request to
	// <subdomain>.<PortalSuffix> is routed to that property's portal.
	PortalSuffix string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	AppBaseURL   string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL, err = parseDurationEnv("REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}
	cfg.VerifyCodeTTL, err = parseDurationEnv("VERIFY_CODE_TTL", defaultVerifyCodeTTL)
	if err != nil {
		return nil, err
	}

	cfg.RateLimitPerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", defaultRateLimit)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateLimitPerMinute, err = parseIntEnv("AUTH_RATE_LIMIT_PER_MINUTE", defaultAuthRateLimit)
	if err != nil {
		return nil, err
	}

	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.PortalSuffix = getEnv("PORTAL_SUFFIX", defaultPortalSuffix)

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", "587")
	if err != nil {
		return nil, err
	}
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "noreply@estatelink.local")
	cfg.AppBaseURL = getEnv("APP_BASE_URL", "http://localhost:3000")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded env=%s addr=%s portal_suffix=%s smtp=%t",
		cfg.AppEnv, cfg.ListenAddr, cfg.PortalSuffix, cfg.SMTPHost != "")

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.RefreshTTL <= 0 {
		return fmt.Errorf("REFRESH_TTL must be > 0")
	}
	if cfg.RateLimitPerMinute <= 0 || cfg.AuthRateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limits must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.SMTPHost == "" {
			return fmt.Errorf("in prod/release SMTP_HOST must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

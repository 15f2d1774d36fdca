package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	AppName   string

	// DBDSN: si viene, las cuentas se guardan en Postgres.
	DBDSN string

	Supabase Supabase

	AllowedOrigins []string

	TokenCacheSize  int
	TokenCacheTTL   time.Duration
	SessionCacheTTL time.Duration
	HTTPTimeout     time.Duration
}

// Supabase es el backend hospedado (auth + REST). Con URL vacía no se usa.
type Supabase struct {
	URL        string
	AnonKey    string
	ServiceKey string
	JWTSecret  string
}

func (c Config) Addr() string { return ":" + c.Port }

var defaults = map[string]any{
	"port":                 "8080",
	"log_level":            "info",
	"log_format":           "text",
	"app_name":             "nutrisnap-api",
	"db_dsn":               "",
	"supabase_url":         "",
	"supabase_anon_key":    "",
	"supabase_service_key": "",
	"supabase_jwt_secret":  "",
	"allowed_origins":      "",
	"token_cache_size":     1024,
	"token_cache_ttl":      "1m",
	"session_cache_ttl":    "30s",
	"http_timeout":         "10s",
}

// Load arma la config: defaults < archivo (si file != "") < .env < entorno.
// El .env es opcional y nunca pisa variables ya exportadas.
func Load(file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	c := Config{
		Port:      strings.TrimSpace(v.GetString("port")),
		LogLevel:  v.GetString("log_level"),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		AppName:   v.GetString("app_name"),
		DBDSN:     strings.TrimSpace(v.GetString("db_dsn")),
		Supabase: Supabase{
			URL:        strings.TrimRight(strings.TrimSpace(v.GetString("supabase_url")), "/"),
			AnonKey:    strings.TrimSpace(v.GetString("supabase_anon_key")),
			ServiceKey: strings.TrimSpace(v.GetString("supabase_service_key")),
			JWTSecret:  strings.TrimSpace(v.GetString("supabase_jwt_secret")),
		},
		AllowedOrigins:  origins(v.Get("allowed_origins")),
		TokenCacheSize:  v.GetInt("token_cache_size"),
		TokenCacheTTL:   v.GetDuration("token_cache_ttl"),
		SessionCacheTTL: v.GetDuration("session_cache_ttl"),
		HTTPTimeout:     v.GetDuration("http_timeout"),
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("config: invalid PORT %q", c.Port)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid LOG_FORMAT %q (text|json)", c.LogFormat)
	}
	if c.Supabase.URL != "" && c.Supabase.AnonKey == "" {
		return errors.New("config: SUPABASE_ANON_KEY is required with SUPABASE_URL")
	}
	if c.TokenCacheSize <= 0 {
		return fmt.Errorf("config: invalid TOKEN_CACHE_SIZE %d", c.TokenCacheSize)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: invalid HTTP_TIMEOUT %s", c.HTTPTimeout)
	}
	return nil
}

// origins acepta "a,b" (entorno) o una lista (archivo de config).
func origins(raw any) []string {
	var items []string
	switch t := raw.(type) {
	case string:
		items = strings.Split(t, ",")
	case []string:
		items = t
	case []any:
		for _, it := range t {
			items = append(items, fmt.Sprint(it))
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

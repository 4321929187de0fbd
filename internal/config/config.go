package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Log     *Log
		Token   *Token
		Baserow *Baserow
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Stock   *Stock
	}

	App struct {
		Name   string
		Env    string
		Locale string
	}

	Log struct {
		Level string
	}

	Token struct {
		Secret   string
		Duration string
	}

	Baserow struct {
		URL          string
		Token        string
		TokenScheme  string
		BikesTableID string
		UsersTableID string
		Timeout      string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	Stock struct {
		LowThreshold string
	}
)

const (
	defaultBaserowURL     = "https://api.baserow.io/api/database/rows/table"
	defaultTimeout        = 15 * time.Second
	defaultTokenTTL       = 24 * time.Hour
	defaultLowStock       = 3
	bikesTablePlaceholder = "your_bikes_table_id_here"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// .env is optional outside production
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	app := &App{
		Name:   getenv("APP_NAME", "webike-inventory"),
		Env:    getenv("APP_ENV", "development"),
		Locale: getenv("APP_LOCALE", "fr"),
	}

	log := &Log{
		Level: getenv("LOG_LEVEL", "info"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}

	baserow := &Baserow{
		URL:          getenv("BASEROW_URL", defaultBaserowURL),
		Token:        os.Getenv("BASEROW_TOKEN"),
		TokenScheme:  getenv("BASEROW_TOKEN_SCHEME", "Token"),
		BikesTableID: os.Getenv("BASEROW_BIKES_TABLE_ID"),
		UsersTableID: os.Getenv("BASEROW_USERS_TABLE_ID"),
		Timeout:      os.Getenv("BASEROW_TIMEOUT"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     getenv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           getenv("HTTP_PORT", "8081"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	stock := &Stock{
		LowThreshold: os.Getenv("LOW_STOCK_THRESHOLD"),
	}

	return &Container{
		App:     app,
		Log:     log,
		Token:   token,
		Baserow: baserow,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
		Stock:   stock,
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BikesConfigured reports whether a real bikes table id is set.
func (b *Baserow) BikesConfigured() bool {
	return b.BikesTableID != "" && b.BikesTableID != bikesTablePlaceholder
}

func (b *Baserow) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(b.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

func (t *Token) TTL() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil || d <= 0 {
		return defaultTokenTTL
	}
	return d
}

func (d *DB) Enabled() bool {
	return d.Host != ""
}

func (s *Stock) LowThresholdInt() int {
	n, err := strconv.Atoi(s.LowThreshold)
	if err != nil || n < 0 {
		return defaultLowStock
	}
	return n
}

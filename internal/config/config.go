package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	CatalogService CatalogService `toml:"catalog_service"`
	Booking        Booking        `toml:"booking"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает URL подключения для golang-migrate
func (d Database) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CatalogService настройки клиента каталога услуг
type CatalogService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Booking бизнес-настройки бронирования
type Booking struct {
	// DefaultGranularityMinutes шаг сетки слотов, когда он не задан явно
	// и не выводится из единственной услуги мастера
	DefaultGranularityMinutes int `toml:"default_granularity_minutes"`

	// MinGranularityMinutes нижняя граница шага сетки
	// История проекта: границу уже меняли (5 -> 15 минут), поэтому
	// это конфигурация, а не константа
	MinGranularityMinutes int `toml:"min_granularity_minutes"`

	// MinNoticeMinutes минимальное время от "сейчас" до начала слота
	MinNoticeMinutes int `toml:"min_notice_minutes"`

	// AdvanceBookingDays горизонт бронирования в днях (0 = без ограничений)
	AdvanceBookingDays int `toml:"advance_booking_days"`

	// ReserveTimeoutSeconds максимальное время попытки резервирования;
	// по истечении операция прерывается с конфликтом, а не висит
	ReserveTimeoutSeconds int `toml:"reserve_timeout_seconds"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "migrations"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Booking.DefaultGranularityMinutes == 0 {
		cfg.Booking.DefaultGranularityMinutes = 30
	}
	if cfg.Booking.MinGranularityMinutes == 0 {
		cfg.Booking.MinGranularityMinutes = 15
	}
	if cfg.Booking.ReserveTimeoutSeconds == 0 {
		cfg.Booking.ReserveTimeoutSeconds = 10
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Booking.MinGranularityMinutes < 1 {
		return fmt.Errorf("config: booking.min_granularity_minutes must be >= 1")
	}
	if cfg.Booking.DefaultGranularityMinutes < cfg.Booking.MinGranularityMinutes {
		return fmt.Errorf("config: booking.default_granularity_minutes is below the minimum")
	}
	if cfg.Booking.MinNoticeMinutes < 0 {
		return fmt.Errorf("config: booking.min_notice_minutes must not be negative")
	}
	if cfg.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("config: booking.advance_booking_days must not be negative")
	}
	return nil
}

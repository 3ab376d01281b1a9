package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Режимы хранилища
const (
	StorageModeMemory   = "memory"
	StorageModePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Storage         StorageConfig         `toml:"storage"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Grid            GridConfig            `toml:"grid"`
	ScheduleService ScheduleServiceConfig `toml:"schedule_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig режим хранилища: memory или postgres, с опциональным
// remote-режимом поверх локального
type StorageConfig struct {
	Mode   string `toml:"mode"`
	Remote bool   `toml:"remote"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GridConfig параметры визуальной сетки расписания
type GridConfig struct {
	DayStart    string `toml:"day_start"`
	DayEnd      string `toml:"day_end"`
	StepMinutes int    `toml:"step_minutes"`
}

// ScheduleServiceConfig настройки клиента удаленного сервиса расписаний
type ScheduleServiceConfig struct {
	URL           string `toml:"url"`
	AuthToken     string `toml:"auth_token"`
	Timeout       int    `toml:"timeout"`
	RetryAttempts int    `toml:"retry_attempts"`
	RetryBaseMS   int    `toml:"retry_base_ms"`
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}

	switch c.Storage.Mode {
	case StorageModeMemory, StorageModePostgres:
	default:
		return fmt.Errorf("storage.mode must be %q or %q, got %q",
			StorageModeMemory, StorageModePostgres, c.Storage.Mode)
	}

	if c.Storage.Remote && c.ScheduleService.URL == "" {
		return fmt.Errorf("schedule_service.url is required when storage.remote is enabled")
	}

	return nil
}

package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName      string
	Database       string
	Username       string
	Password       string
	SSLMode        string
	StartupTimeout time.Duration
	Logger         Logger
}

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithDatabase(database string) Option {
	return func(c *Config) {
		c.Database = database
	}
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithStartupTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.StartupTimeout = d
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName:      "postgres:17.0-alpine3.20",
		Database:       "test",
		Username:       "postgres",
		Password:       "postgres",
		SSLMode:        "disable",
		StartupTimeout: time.Minute,
		Logger:         nopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

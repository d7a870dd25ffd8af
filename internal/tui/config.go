package tui

import (
	"context"
	"time"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/gateway"
	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
)

// Remote is the gateway surface the dashboard needs.
type Remote interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, update engine.Update) error
	RecentLogs(ctx context.Context) ([]gateway.EditLog, error)
	Ping(ctx context.Context) error
}

// Config holds dashboard configuration.
type Config struct {
	Remote      Remote
	Theme       themes.Theme
	LoadTimeout time.Duration
	SyncTimeout time.Duration
	KeepAlive   time.Duration
	ToastFor    time.Duration
	Width       int
	Height      int
}

// Option is a functional option for configuring the dashboard.
type Option func(*Config)

// defaultConfig returns the default configuration. The initial load gives up
// after fifteen seconds and proceeds with an empty record set; keep-alive
// pings go out every three minutes.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		LoadTimeout: 15 * time.Second,
		SyncTimeout: 30 * time.Second,
		KeepAlive:   180 * time.Second,
		ToastFor:    3 * time.Second,
		Width:       80,
		Height:      24,
	}
}

// WithRemote sets the gateway client.
func WithRemote(remote Remote) Option {
	return func(c *Config) {
		c.Remote = remote
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithLoadTimeout overrides the initial-load safety timeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.LoadTimeout = d
		}
	}
}

// WithKeepAlive overrides the keep-alive interval.
func WithKeepAlive(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.KeepAlive = d
		}
	}
}

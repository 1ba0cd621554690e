package cookie

import "net/http"

// Config holds cookie manager configuration loaded from the environment.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"` // enable in production
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite int    `env:"COOKIE_SAME_SITE" envDefault:"3"` // 3 = http.SameSiteStrictMode
}

// NewFromConfig creates a Manager from the provided Config. Additional
// options take precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 5)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure))
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite >= int(http.SameSiteDefaultMode) && cfg.SameSite <= int(http.SameSiteNoneMode) {
		configOpts = append(configOpts, WithSameSite(http.SameSite(cfg.SameSite)))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

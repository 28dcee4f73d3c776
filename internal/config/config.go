package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/backendservices/python-api/internal/validators"
)

// DefaultEnvFile is loaded on startup unless ENV_FILE points elsewhere
const DefaultEnvFile = ".env"

// Config holds all configuration for the server
type Config struct {
	Host            string
	Port            int
	GinMode         string
	EnableSwagger   bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	// TrustedProxies lists proxies whose X-Forwarded-For is believed; empty trusts none
	TrustedProxies []string
}

// NewConfigFromFlags creates a Config from CLI context
func NewConfigFromFlags(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		Host:            strings.TrimSpace(ctx.String(HostFlagName)),
		Port:            ctx.Int(PortFlagName),
		GinMode:         strings.TrimSpace(ctx.String(GinModeFlagName)),
		EnableSwagger:   ctx.Bool(SwaggerFlagName),
		AllowedOrigins:  splitCSV(ctx.String(AllowedOriginsFlagName)),
		ShutdownTimeout: ctx.Duration(ShutdownTimeoutFlagName),
		TrustedProxies:  splitCSV(ctx.String(TrustedProxiesFlagName)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validators.ValidatePort(c.Port, PortFlagName); err != nil {
		return err
	}
	if err := validators.ValidateOneOf(c.GinMode, GinModeFlagName, gin.DebugMode, gin.ReleaseMode, gin.TestMode); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return validators.NewValidationError(ShutdownTimeoutFlagName, "must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if err := validators.ValidateIPOrCIDR(proxy, TrustedProxiesFlagName); err != nil {
			return err
		}
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CORS configures CORS middleware based on allowed origins.
// The API is read-only, so only GET and preflight are advertised.
func (c *Config) CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()

	if len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = c.AllowedOrigins
	}

	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	config.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	config.MaxAge = 12 * time.Hour

	return cors.New(config)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	log.Printf("Loaded environment from %s", path)
	return nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

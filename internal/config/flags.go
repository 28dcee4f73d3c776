package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

const (
	// Default values for the API server
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultGinMode         = "release"
	DefaultEnableSwagger   = false
	DefaultAllowedOrigins  = "*"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTrustedProxies  = ""
)

// Flag names, shared between CLIFlags and NewConfigFromFlags
const (
	HostFlagName            = "host"
	PortFlagName            = "port"
	GinModeFlagName         = "gin-mode"
	SwaggerFlagName         = "swagger"
	AllowedOriginsFlagName  = "allowed-origins"
	ShutdownTimeoutFlagName = "shutdown-timeout"
	TrustedProxiesFlagName  = "trusted-proxies"
)

var (
	HostFlag = &cli.StringFlag{
		Name:    HostFlagName,
		Usage:   "Address to bind (all interfaces by default)",
		Value:   DefaultHost,
		EnvVars: []string{"HOST"},
	}
	PortFlag = &cli.IntFlag{
		Name:    PortFlagName,
		Usage:   "TCP port to listen on",
		Value:   DefaultPort,
		EnvVars: []string{"PORT"},
	}
	GinModeFlag = &cli.StringFlag{
		Name:    GinModeFlagName,
		Usage:   "Gin mode (debug, release, test)",
		Value:   DefaultGinMode,
		EnvVars: []string{"GIN_MODE"},
	}
	SwaggerFlag = &cli.BoolFlag{
		Name:    SwaggerFlagName,
		Usage:   "Serve the Swagger UI under /swagger/",
		Value:   DefaultEnableSwagger,
		EnvVars: []string{"ENABLE_SWAGGER"},
	}
	AllowedOriginsFlag = &cli.StringFlag{
		Name:    AllowedOriginsFlagName,
		Usage:   "CORS allowed origins (comma-separated, * for any)",
		Value:   DefaultAllowedOrigins,
		EnvVars: []string{"ALLOWED_ORIGINS"},
	}
	ShutdownTimeoutFlag = &cli.DurationFlag{
		Name:    ShutdownTimeoutFlagName,
		Usage:   "Time allowed for in-flight requests on shutdown",
		Value:   DefaultShutdownTimeout,
		EnvVars: []string{"SHUTDOWN_TIMEOUT"},
	}
	TrustedProxiesFlag = &cli.StringFlag{
		Name:    TrustedProxiesFlagName,
		Usage:   "Proxy IPs or CIDRs allowed to set X-Forwarded-For (comma-separated, none by default)",
		Value:   DefaultTrustedProxies,
		EnvVars: []string{"TRUSTED_PROXIES"},
	}
)

// CLIFlags returns every flag understood by the server
func CLIFlags() []cli.Flag {
	return []cli.Flag{
		HostFlag,
		PortFlag,
		GinModeFlag,
		SwaggerFlag,
		AllowedOriginsFlag,
		ShutdownTimeoutFlag,
		TrustedProxiesFlag,
	}
}

// Package sysinfo reads the host facts reported by the info endpoints.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
)

// platformNames maps GOOS values to the conventional OS family name
var platformNames = map[string]string{
	"aix":       "AIX",
	"android":   "Android",
	"darwin":    "Darwin",
	"dragonfly": "DragonFly",
	"freebsd":   "FreeBSD",
	"illumos":   "illumos",
	"ios":       "iOS",
	"js":        "JavaScript",
	"linux":     "Linux",
	"netbsd":    "NetBSD",
	"openbsd":   "OpenBSD",
	"plan9":     "Plan9",
	"solaris":   "SunOS",
	"wasip1":    "WASI",
	"windows":   "Windows",
}

// Provider supplies host facts. The default implementation asks the OS and
// the Go runtime; tests substitute fixed values.
type Provider interface {
	Hostname() (string, error)
	Platform() string
	RuntimeVersion() string
}

// Host is the Provider backed by the running process
type Host struct{}

// NewHost creates a Provider that reads from the local machine
func NewHost() *Host {
	return &Host{}
}

// Hostname returns the network name of the host as reported by the kernel
func (Host) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to resolve hostname: %w", err)
	}
	return name, nil
}

// Platform returns the OS family name, e.g. "Linux"
func (Host) Platform() string {
	return PlatformName(runtime.GOOS)
}

// RuntimeVersion returns the version of the Go runtime executing the service,
// verbatim (e.g. "go1.24.0"). This is deliberately not the OS version.
func (Host) RuntimeVersion() string {
	return runtime.Version()
}

// PlatformName converts a GOOS identifier to its OS family name.
// Unknown identifiers are returned unchanged.
func PlatformName(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	return goos
}

// Static is a Provider with fixed answers
type Static struct {
	Host    string
	Err     error
	OS      string
	Version string
}

// Hostname returns the fixed hostname, or Err if set
func (s Static) Hostname() (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Host, nil
}

// Platform returns the fixed platform name
func (s Static) Platform() string {
	return s.OS
}

// RuntimeVersion returns the fixed runtime version
func (s Static) RuntimeVersion() string {
	return s.Version
}

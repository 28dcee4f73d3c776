package validators

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// UUID validation regex (RFC 4122, any version)
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidUUID checks if the string is a canonical RFC 4122 UUID
// Format: xxxxxxxx-xxxx-Mxxx-Nxxx-xxxxxxxxxxxx
func IsValidUUID(uuid string) bool {
	if uuid == "" {
		return false
	}
	// Convert to lowercase for validation
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// IsValidPort checks if the value is a usable TCP port
// Valid range: 1 to 65535
func IsValidPort(port int) bool {
	return port >= 1 && port <= 65535
}

// ValidatePort validates a listen port and returns an error if invalid
func ValidatePort(port int, fieldName string) error {
	if !IsValidPort(port) {
		return NewValidationError(fieldName, fmt.Sprintf("port must be between 1 and 65535 (got: %d)", port))
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed options
func ValidateOneOf(value string, fieldName string, allowed ...string) error {
	if value == "" {
		return NewValidationError(fieldName, "value is required")
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(fieldName, fmt.Sprintf("invalid value %q (allowed: %s)", value, strings.Join(allowed, ", ")))
}

// ValidateIPOrCIDR validates a single IP address or CIDR block
// Examples: 10.0.0.1, 10.0.0.0/8, ::1
func ValidateIPOrCIDR(value string, fieldName string) error {
	if value == "" {
		return NewValidationError(fieldName, "value is required")
	}
	if strings.Contains(value, "/") {
		if _, _, err := net.ParseCIDR(value); err != nil {
			return NewValidationError(fieldName, fmt.Sprintf("invalid CIDR %q", value))
		}
		return nil
	}
	if net.ParseIP(value) == nil {
		return NewValidationError(fieldName, fmt.Sprintf("invalid IP address %q", value))
	}
	return nil
}

// Package validate provides network and option validation for kontroll and
// the simulated controller daemon.
//
// Implements IP address, port range, and address format validation using the
// go-playground/validator library, so a mistyped --addr fails at flag
// validation instead of surfacing later as an unreachable daemon.
//
// VALIDATION FEATURES:
//   - IP Address: IPv4 and IPv6 format validation
//   - Port Range: Valid port numbers (0-65535)
//   - Format: Proper "host:port" address formatting
//   - Structs: Option structs validated through their `validate` tags
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// NetworkAddress represents a validated "host:port" pair for TCP transport
// between the CLI and a controller daemon.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" address string.
//
// Used for the CLI's --addr target and the simulator's --addr listener.
// Returns a validated NetworkAddress or an error describing which part of
// the address is malformed.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	// Validate using struct tags
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates individual values against validator tags.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct against its `validate` tags.
// Used for the simulator's keyboard model options.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

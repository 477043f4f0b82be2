package validate

import (
	"strings"
	"testing"
	"time"
)

// TestValidateSocketPath tests unix socket path validation
func TestValidateSocketPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{name: "runtime dir socket", path: "/run/user/1000/kontroll.sock"},
		{name: "tmp socket", path: "/tmp/kontroll.sock"},
		{name: "empty", path: "", expectError: true},
		{name: "relative", path: "kontroll.sock", expectError: true},
		{name: "too long", path: "/" + strings.Repeat("s", 120), expectError: true},
		{name: "at limit", path: "/" + strings.Repeat("s", 106)},
		{name: "multibyte over limit", path: "/" + strings.Repeat("é", 60), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSocketPath(tt.path)
			if tt.expectError && err == nil {
				t.Errorf("ValidateSocketPath(%q) expected error", tt.path)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateSocketPath(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

// TestValidatePortRange tests port bounds
func TestValidatePortRange(t *testing.T) {
	for _, port := range []int{1, 7630, 65535} {
		if err := ValidatePortRange(port); err != nil {
			t.Errorf("ValidatePortRange(%d) unexpected error: %v", port, err)
		}
	}
	for _, port := range []int{0, -1, 65536} {
		if err := ValidatePortRange(port); err == nil {
			t.Errorf("ValidatePortRange(%d) expected error", port)
		}
	}
}

// TestValidatePositiveTimeout tests timeout validation
func TestValidatePositiveTimeout(t *testing.T) {
	if err := ValidatePositiveTimeout(5*time.Second, "timeout"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := ValidatePositiveTimeout(0, "timeout"); err == nil {
		t.Error("Expected error for zero timeout")
	}
	if err := ValidatePositiveTimeout(-time.Second, "timeout"); err == nil {
		t.Error("Expected error for negative timeout")
	}
}

// TestValidateRequiredString tests the required string helper
func TestValidateRequiredString(t *testing.T) {
	if err := ValidateRequiredString("x", "field"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	err := ValidateRequiredString("", "field")
	if err == nil || err.Error() != "field cannot be empty" {
		t.Errorf("ValidateRequiredString(\"\") = %v, want 'field cannot be empty'", err)
	}
}

package display

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/resolver"
)

func listOutcome(keyboards ...controller.Keyboard) *resolver.Outcome {
	return &resolver.Outcome{Intent: resolver.List{}.Name(), Keyboards: keyboards}
}

func TestOutcome_Plain(t *testing.T) {
	tests := []struct {
		name    string
		outcome *resolver.Outcome
		want    string
	}{
		{
			name:    "message",
			outcome: &resolver.Outcome{Intent: "set-layer", Message: "Layer set to 2"},
			want:    "Layer set to 2\n",
		},
		{
			name: "list",
			outcome: listOutcome(
				controller.Keyboard{ID: 0, FriendlyName: "Voyager"},
				controller.Keyboard{ID: 1, FriendlyName: "Moonlander", IsConnected: true},
			),
			want: "0: Voyager \n1: Moonlander (connected)\n",
		},
		{
			name:    "empty list",
			outcome: listOutcome(),
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Outcome(&buf, tt.outcome, config.OutputPlain); err != nil {
				t.Fatalf("Outcome() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Outcome() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestOutcome_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Outcome(&buf, listOutcome(), config.OutputJSON); err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty list JSON = %q, want []", buf.String())
	}

	buf.Reset()
	outcome := &resolver.Outcome{Intent: "connect", Message: "Connected to keyboard 1"}
	if err := Outcome(&buf, outcome, config.OutputJSON); err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}
	var decoded resolver.Outcome
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.Intent != outcome.Intent || decoded.Message != outcome.Message || decoded.Keyboards != nil {
		t.Errorf("decoded %+v, want %+v", decoded, *outcome)
	}
}

func TestOutcome_Table(t *testing.T) {
	var buf bytes.Buffer
	outcome := listOutcome(
		controller.Keyboard{ID: 0, FriendlyName: "Voyager", IsConnected: true},
		controller.Keyboard{ID: 1, FriendlyName: "Moonlander"},
	)
	if err := Outcome(&buf, outcome, config.OutputTable); err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ID", "NAME", "Voyager", "Moonlander", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Non-list commands fall back to their line
	buf.Reset()
	if err := Outcome(&buf, &resolver.Outcome{Intent: "disconnect", Message: "done"}, config.OutputTable); err != nil {
		t.Fatalf("Outcome() error = %v", err)
	}
	if buf.String() != "done\n" {
		t.Errorf("table mode message = %q", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("no keyboard connected"))
	if buf.String() != "Error: no keyboard connected\n" {
		t.Errorf("Error() wrote %q", buf.String())
	}
}

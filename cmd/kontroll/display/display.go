// Package display provides output formatting for kontroll.
//
// Every command succeeds with either one confirmation line or, for list, one
// line per keyboard. --output json re-encodes the same outcome as indented
// JSON and --output table renders the keyboard list with go-pretty. Failures
// are always a single "Error: <message>" line on stderr regardless of format.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/resolver"
	"github.com/samber/lo"
)

// Outcome writes a successful outcome to w in the given output format.
func Outcome(w io.Writer, outcome *resolver.Outcome, format string) error {
	isList := outcome.Intent == (resolver.List{}).Name()

	switch format {
	case config.OutputJSON:
		if isList {
			// Always an array, even when nothing is attached
			return writeJSON(w, lo.Ternary(outcome.Keyboards == nil, []controller.Keyboard{}, outcome.Keyboards))
		}
		return writeJSON(w, outcome)

	case config.OutputTable:
		if isList {
			Keyboards(w, outcome.Keyboards)
			return nil
		}
	}

	for _, line := range outcome.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Keyboards renders the keyboard list as a table. Nothing is printed for an
// empty list so the output stays consistent with plain mode.
func Keyboards(w io.Writer, keyboards []controller.Keyboard) {
	if len(keyboards) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if logging.IsTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"ID", "Name", "Connected"})
	for _, kb := range keyboards {
		tw.AppendRow(table.Row{strconv.Itoa(kb.ID), kb.FriendlyName, lo.Ternary(kb.IsConnected, "yes", "")})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter},
	})
	tw.Render()
}

// Error writes the single failure line.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		return err
	}
	return nil
}

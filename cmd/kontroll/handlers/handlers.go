// Package handlers provides command handler functions for kontroll.
//
// Each handler turns its command's flags into one resolver.Intent and hands it
// to runIntent, which executes it against the controller daemon and writes the
// outcome. Daemon and colour failures become a single stderr line and the
// handler returns nil, so the process exits normally having done nothing
// further. Only usage and configuration problems surface as cobra errors.
package handlers

import (
	"context"
	"time"

	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/cmd/kontroll/display"
	"github.com/kontroll-dev/kontroll/cmd/kontroll/utils"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/resolver"
	"github.com/spf13/cobra"
)

// NewController builds the Controller every handler talks to.
// Tests replace it with a fake.
var NewController = func() controller.Controller {
	return controller.NewClient(Endpoint(), requestTimeout())
}

// Endpoint returns the daemon endpoint selected by the global flags.
func Endpoint() controller.Endpoint {
	return controller.Endpoint{Socket: config.Global.Socket, Addr: config.Global.Addr}
}

func requestTimeout() time.Duration {
	return time.Duration(config.Global.Timeout) * time.Second
}

// runIntent executes one intent and writes its outcome or failure line.
func runIntent(cmd *cobra.Command, intent resolver.Intent) error {
	utils.SetupLogging()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, requestTimeout())
	defer cancel()

	logging.Info("Sending %s to controller daemon at %s", intent.Name(), Endpoint())

	outcome, err := resolver.New(NewController()).Execute(ctx, intent)
	if err != nil {
		logging.Debug("%s failed: %v", intent.Name(), err)
		display.Error(cmd.ErrOrStderr(), err)
		return nil
	}

	return display.Outcome(cmd.OutOrStdout(), outcome, config.Global.Output)
}

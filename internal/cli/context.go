// Package cli implements the p2h command tree.
package cli

import (
	gocontext "context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/ctxutil"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// Exit codes
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// NewContext creates a context carrying the acting user: the --user flag
// when set, otherwise the configured default user.
// CLI commands should use this instead of context.Background() directly.
func NewContext(cmd *cobra.Command) gocontext.Context {
	ctx := gocontext.Background()
	actor, _ := cmd.Flags().GetString("user")
	if actor == "" {
		actor = wire.Config().User
	}
	if actor != "" {
		return ctxutil.WithActorID(ctx, actor)
	}
	return ctx
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var verr *inspection.ValidationError
	if errors.As(err, &verr) {
		return ExitValidation
	}
	return ExitError
}

// Package startup prints the status line the process emits on boot.
package startup

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/DaanHessen/healthcare-chatbot/internal/logging"
	"github.com/DaanHessen/healthcare-chatbot/internal/util"
)

// Message returns the status line for env, without a trailing newline.
// env is substituted verbatim.
func Message(env string) string {
	return "Running Healthcare Chatbot in " + env + " mode..."
}

// Report writes the status line for cfg.Env to w as a single line.
func Report(w io.Writer, cfg util.Config) error {
	log := logging.WithComponent("startup")
	log.Debug().Str("env", cfg.Env).Msg("reporting startup")
	if _, err := fmt.Fprintln(w, Message(cfg.Env)); err != nil {
		return errors.Wrap(err, "write startup line")
	}
	return nil
}

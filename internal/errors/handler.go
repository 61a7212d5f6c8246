// Package errors reports command failures to the terminal.
package errors

import (
	"sync"

	"github.com/cristianoliveira/gridsettings/internal/setting"
)

// ColorOutput is where reported errors are written.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
}

// CLIHandler prints command errors to stderr.
type CLIHandler struct {
	colors ColorOutput
	mu     sync.Mutex
}

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

// Handle prints err. A rejected changeset is followed by the rejected field
// and the kind of rejection.
func (h *CLIHandler) Handle(err error) {
	if err == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.colors.Error(err.Error())
	if kind := setting.KindOf(err); kind != 0 {
		h.colors.Warning("rejected field:", kind.Field(), "("+kind.String()+")")
	}
}

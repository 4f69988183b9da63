package deploy

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jon4hz/cookbook/internal/config"
)

// Refresher runs the configured refresh commands, e.g. "git pull", when the webhook fires.
type Refresher struct {
	workDir  string
	commands [][]string
	log      *log.Logger
}

// New returns a Refresher for the webhook config, or nil if the webhook is disabled.
func New(cfg *config.WebhookConfig) *Refresher {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	return &Refresher{
		workDir:  cfg.WorkDir,
		commands: cfg.Commands,
		log:      log.Default().WithPrefix("deploy"),
	}
}

// Refresh runs the commands in order and returns their combined output.
// It stops at the first failing command.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	var out bytes.Buffer
	for _, argv := range r.commands {
		if len(argv) == 0 {
			continue
		}
		r.log.Info("running refresh command", "cmd", strings.Join(argv, " "))

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
		cmd.Dir = r.workDir
		output, err := cmd.CombinedOutput()
		out.Write(output)
		if err != nil {
			r.log.Error("refresh command failed", "cmd", argv[0], "error", err)
			return out.String(), fmt.Errorf("%s: %w", strings.Join(argv, " "), err)
		}
	}
	return out.String(), nil
}

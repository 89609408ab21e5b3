package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Local speaks through the operating system's speech facility. No network,
// no temporary files.
type Local struct{}

// NewLocal creates the OS speech provider.
func NewLocal() *Local { return &Local{} }

// Name implements Provider.
func (l *Local) Name() string { return "local" }

// Speak implements Provider.
func (l *Local) Speak(ctx context.Context, word, _ string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "say", word)
	case "windows":
		escaped := strings.ReplaceAll(word, "'", "''")
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('%s')",
			escaped,
		)
		cmd = exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script)
	default:
		cmd = exec.CommandContext(ctx, "espeak", word)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("os speech: %w", err)
	}
	return nil
}

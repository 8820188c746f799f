package exec

// Hands a saved chart to the platform's default image viewer. Failures
// here never invalidate the file on disk; callers log and move on.

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// OpenViewer opens path with the platform viewer command and waits for
// the launcher to hand off, up to timeout.
func OpenViewer(path string, timeout time.Duration) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", absPath)
	}

	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("no graphical session available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", absPath)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", absPath)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", absPath)
	}

	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("viewer command timed out after %v", timeout)
	}
	if err != nil {
		return fmt.Errorf("viewer command failed: %w (output: %s)", err, output)
	}
	return nil
}

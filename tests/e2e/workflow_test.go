package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// findBinary locates a built groove binary. The test is skipped when no
// binary is available so unit runs stay self-contained.
func findBinary(t *testing.T) string {
	if p := os.Getenv("GROOVE_BIN"); p != "" {
		return p
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	p, _ := filepath.Abs(filepath.Join(cwd, "..", "..", "bin", "groove"))
	if _, err := os.Stat(p); os.IsNotExist(err) {
		t.Skipf("groove binary not found at %s; build it or set GROOVE_BIN", p)
	}
	return p
}

func TestEndToEndWorkflow(t *testing.T) {
	cliPath := findBinary(t)

	tempDir := t.TempDir()
	t.Logf("Running test in temp dir: %s", tempDir)

	configPath := filepath.Join(tempDir, "groove", "groove.db")

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "XDG_CONFIG_HOME=") && !strings.HasPrefix(e, "HOME=") {
			env = append(env, e)
		}
	}
	env = append(env, fmt.Sprintf("HOME=%s", tempDir))
	env = append(env, fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir))

	configFlag := fmt.Sprintf("--config=%s", configPath)

	// Initialize storage.
	out := runCmd(t, cliPath, env, configFlag, "init")
	if !strings.Contains(out, "Initialized") {
		t.Errorf("init output missing confirmation: %s", out)
	}

	// Add habits covering the common frequency rules.
	runCmd(t, cliPath, env, configFlag, "habit", "add", "Meditate", "--frequency", "daily")
	runCmd(t, cliPath, env, configFlag, "habit", "add", "Drink water", "--frequency", "daily", "--target", "3")
	runCmd(t, cliPath, env, configFlag, "habit", "add", "Gym", "--frequency", "weekdays", "--days", "mon,wed,fri")

	out = runCmd(t, cliPath, env, configFlag, "habit", "list")
	for _, name := range []string{"Meditate", "Drink water", "Gym"} {
		if !strings.Contains(out, name) {
			t.Errorf("habit list missing %q: %s", name, out)
		}
	}

	// A daily habit is due on its creation day.
	out = runCmd(t, cliPath, env, configFlag, "today")
	if !strings.Contains(out, "Meditate") {
		t.Errorf("today output missing daily habit: %s", out)
	}
	if !strings.Contains(out, "[ ]") {
		t.Errorf("today output missing unchecked marker: %s", out)
	}

	// Mark and verify the checkbox flips.
	runCmd(t, cliPath, env, configFlag, "mark", "Meditate")
	out = runCmd(t, cliPath, env, configFlag, "today")
	if !strings.Contains(out, "[x] Meditate") {
		t.Errorf("today output missing marked habit: %s", out)
	}

	// Target 3 stays unsatisfied after one completion.
	runCmd(t, cliPath, env, configFlag, "mark", "Drink water")
	out = runCmd(t, cliPath, env, configFlag, "today")
	if !strings.Contains(out, "[ ] Drink water (1/3)") {
		t.Errorf("today output wrong counter for targeted habit: %s", out)
	}

	// Unmark removes the completion again.
	runCmd(t, cliPath, env, configFlag, "unmark", "Drink water")
	out = runCmd(t, cliPath, env, configFlag, "today")
	if strings.Contains(out, "Drink water (1/3)") {
		t.Errorf("unmark did not reset counter: %s", out)
	}

	// Stats reflect the single satisfied day.
	out = runCmd(t, cliPath, env, configFlag, "stats", "Meditate")
	if !strings.Contains(out, "Current streak:  1") {
		t.Errorf("stats output missing streak: %s", out)
	}

	out = runCmd(t, cliPath, env, configFlag, "calendar", "Meditate", "--month", time.Now().UTC().Format("2006-01"))
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Errorf("calendar output missing weekday header: %s", out)
	}

	// Journal round trip.
	runCmd(t, cliPath, env, configFlag, "journal", "write", "Felt good about today", "--mood", "happy")
	out = runCmd(t, cliPath, env, configFlag, "journal", "show")
	if !strings.Contains(out, "Felt good about today") {
		t.Errorf("journal show missing entry content: %s", out)
	}

	// Archive removes the habit from today's list.
	runCmd(t, cliPath, env, configFlag, "habit", "archive", "Gym")
	out = runCmd(t, cliPath, env, configFlag, "habit", "list")
	if strings.Contains(out, "Gym") {
		t.Errorf("archived habit still in default list: %s", out)
	}

	// Backups.
	runCmd(t, cliPath, env, configFlag, "backup", "create")
	out = runCmd(t, cliPath, env, configFlag, "backup", "list")
	if !strings.Contains(out, "groove-") {
		t.Errorf("backup list missing backup file: %s", out)
	}

	out = runCmd(t, cliPath, env, configFlag, "doctor")
	if !strings.Contains(out, "ok") && !strings.Contains(out, "OK") {
		t.Logf("doctor output: %s", out)
	}
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives the built hamster binary through a full day:
// init, add a routine, complete it, and check the reported progress.
// Requires a prebuilt binary; set HAMSTER_BIN_DIR or build into ../../bin.
func TestEndToEndWorkflow(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	binDir := os.Getenv("HAMSTER_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "hamster")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("hamster binary not found at %s, build it first", cliPath)
	}

	// Isolated home so the test never touches real data
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "hamster", "hamster.db")

	var cleanEnv []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "XDG_CONFIG_HOME=") || strings.HasPrefix(e, "HOME=") {
			continue
		}
		cleanEnv = append(cleanEnv, e)
	}
	cleanEnv = append(cleanEnv,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
	)

	run := func(args ...string) string {
		t.Helper()
		args = append([]string{"--config", configPath}, args...)
		cmd := exec.Command(cliPath, args...)
		cmd.Env = cleanEnv
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("hamster %v failed: %v\nOutput: %s", args, err, out)
		}
		return string(out)
	}

	t.Log("Initializing storage...")
	out := run("init", "--empty")
	if !strings.Contains(out, "Initialized hamster storage") {
		t.Errorf("unexpected init output: %s", out)
	}

	t.Log("Adding a routine...")
	out = run("routine", "add", "Stretching", "--category", "Fitness", "--frequency", "daily")
	if !strings.Contains(out, "Added routine: Stretching") {
		t.Errorf("unexpected add output: %s", out)
	}

	out = run("routine", "list")
	if !strings.Contains(out, "Stretching") {
		t.Errorf("routine missing from list: %s", out)
	}

	t.Log("Completing the routine...")
	out = run("done", "Stretching")
	if !strings.Contains(out, "Completed Stretching") {
		t.Errorf("unexpected done output: %s", out)
	}
	// +10 for the completion, +25 perfect-day bonus
	if !strings.Contains(out, "+35 XP") {
		t.Errorf("expected XP award in output: %s", out)
	}

	out = run("today")
	if !strings.Contains(out, "1/1 done (100%)") {
		t.Errorf("unexpected today output: %s", out)
	}

	out = run("streak")
	if !strings.Contains(out, "1 day streak") {
		t.Errorf("unexpected streak output: %s", out)
	}

	t.Log("Toggling the completion off again...")
	out = run("done", "Stretching")
	if !strings.Contains(out, "Cleared Stretching") {
		t.Errorf("unexpected clear output: %s", out)
	}

	t.Log("Creating a backup...")
	out = run("backup", "create")
	if !strings.Contains(out, "Created backup") {
		t.Errorf("unexpected backup output: %s", out)
	}
	out = run("backup", "list")
	if !strings.Contains(out, "hamster-") {
		t.Errorf("backup missing from list: %s", out)
	}
}

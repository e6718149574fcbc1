package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/dirsize/internal/dirsize"
)

func tree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("write a.txt: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(root, "b"), 0o755); err != nil {
		t.Fatalf("mkdir b: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "b", "c.txt"), bytes.Repeat([]byte("x"), 20), 0o644); err != nil {
		t.Fatalf("write c.txt: %v", err)
	}

	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New("v1.2.3").Command()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCommandTable(t *testing.T) {
	root := tree(t)

	stdout, _, err := execute(t, "--root", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got:\n%s", stdout)
	}

	if !strings.HasPrefix(lines[0], "File") || !strings.Contains(lines[0], "Last Modified") {
		t.Errorf("unexpected header %q", lines[0])
	}

	if strings.Trim(lines[1], "=") != "" {
		t.Errorf("unexpected rule %q", lines[1])
	}

	if !strings.HasPrefix(lines[2], "b ") || !strings.HasPrefix(lines[3], "a.txt") {
		t.Errorf("expected b above a.txt, got:\n%s", stdout)
	}

	if !strings.HasSuffix(lines[3], " - 10") {
		t.Errorf("unexpected a.txt row %q", lines[3])
	}
}

func TestCommandCleanReversePositional(t *testing.T) {
	root := tree(t)

	stdout, _, err := execute(t, "--clean", "--reverse", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got:\n%s", stdout)
	}

	if lines[0] != "a.txt - 10" {
		t.Errorf("unexpected first row %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "b     - ") {
		t.Errorf("unexpected second row %q", lines[1])
	}

	if strings.Contains(stdout, "Last Modified") || strings.Contains(stdout, "=") {
		t.Errorf("clean output contains header:\n%s", stdout)
	}
}

func TestCommandFile(t *testing.T) {
	root := tree(t)

	stdout, _, err := execute(t, "--clean", "--file", filepath.Join(root, "a.txt"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if strings.TrimSpace(stdout) != "a.txt - 10" {
		t.Fatalf("unexpected output %q", stdout)
	}
}

func TestCommandFileIsDirectory(t *testing.T) {
	root := tree(t)

	stdout, _, err := execute(t, "--file", root)
	if !errors.Is(err, dirsize.ErrNotAFile) {
		t.Fatalf("expected ErrNotAFile, got %v", err)
	}

	if !strings.Contains(err.Error(), root) {
		t.Errorf("error %q does not name %s", err, root)
	}

	if stdout != "" {
		t.Errorf("expected no table, got:\n%s", stdout)
	}
}

func TestCommandNoTarget(t *testing.T) {
	if _, _, err := execute(t); !errors.Is(err, dirsize.ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

func TestCommandJSON(t *testing.T) {
	root := tree(t)

	stdout, _, err := execute(t, "-o", "json", "-d", "-1", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var report dirsize.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}

	if len(report.Records) != 2 || report.Records[0].Name != "b" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestCommandConfig(t *testing.T) {
	root := tree(t)

	cfg := filepath.Join(t.TempDir(), "dirsize.toml")
	if err := os.WriteFile(cfg, []byte("clean = true\nreverse = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, _, err := execute(t, "--config", cfg, root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.HasPrefix(stdout, "a.txt - 10\n") {
		t.Fatalf("config not applied:\n%s", stdout)
	}
}

func TestCommandInvalidFlags(t *testing.T) {
	root := tree(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "output", args: []string{"-o", "yaml", root}},
		{name: "depth", args: []string{"-d", "-2", root}},
		{name: "shell", args: []string{"--init", "tcsh"}},
		{name: "arguments", args: []string{root, root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCommandVersionAndInit(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil || strings.TrimSpace(stdout) != "v1.2.3" {
		t.Fatalf("version: %q, %v", stdout, err)
	}

	stdout, _, err = execute(t, "--init", "zsh")
	if err != nil || !strings.Contains(stdout, "dirsize") {
		t.Fatalf("init: %q, %v", stdout, err)
	}
}

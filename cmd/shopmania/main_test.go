package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--quiet", "--log-file", "stderr"))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "", "generate", "Peanut Butter", "omelette")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"300.0", "peanuts", "1.0", "mung bean", "3.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateUnknownRecipe(t *testing.T) {
	if _, err := execute(t, "", "generate", "lasagne"); err == nil {
		t.Fatal("expected error for unknown recipe")
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "", "catalog")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 || lines[0] != "chocolate peanut butter banana shake" || lines[5] != "omelette" {
		t.Fatalf("unexpected catalog listing %q", lines)
	}

	out, err = execute(t, "", "catalog", "--show", "PEANUT BUTTER")
	if err != nil {
		t.Fatalf("catalog --show: %v", err)
	}
	if !strings.Contains(out, "300 g peanuts,0.5 tsp salt,2 tsp oil") {
		t.Fatalf("unexpected recipe output:\n%s", out)
	}
}

func TestCatalogFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopmania.toml")
	cfg := `
[catalog]
builtin = false

[[catalog.recipes]]
name = "coconut"
ingredients = "1 large coconut"
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "", "catalog", "--config", path)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if strings.TrimSpace(out) != "coconut" {
		t.Fatalf("expected only the configured recipe, got %q", out)
	}
}

func TestInteractivePlain(t *testing.T) {
	out, err := execute(t, "add seitan\nls\nq\n", "--plain")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	for _, want := range []string{"Added seitan to the meal plan.", "vital wheat gluten", "Bye."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

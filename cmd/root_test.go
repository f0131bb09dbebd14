package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	SetVersion("1.2.3-test")
	if rootCmd.Version != "1.2.3-test" {
		t.Errorf("Expected version to be 1.2.3-test, got %s", rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "adaptctl" {
		t.Errorf("Expected Use to be 'adaptctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" || rootCmd.Long == "" {
		t.Error("Expected Short and Long descriptions to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	for _, name := range []string{"config", "catalog", "debug", "output", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag --%s", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.Version = "1.0.0"
	cmd.SetVersionTemplate(`{{printf "adaptctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Error executing --version: %v", err)
	}
	if got := buf.String(); got != "adaptctl version 1.0.0\n" {
		t.Errorf("Expected version output %q, got %q", "adaptctl version 1.0.0\n", got)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	cmd.Version = "2.0.0"

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}
	if got := buf.String(); got != "adaptctl version 2.0.0\n" {
		t.Errorf("Expected %q, got %q", "adaptctl version 2.0.0\n", got)
	}
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		found[cmd.Name()] = true
	}

	for _, expected := range []string{"version", "self-update", "check", "offers", "protocols", "routes", "provides"} {
		if !found[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "adaptctl") {
		t.Errorf("Help output should contain 'adaptctl'. Got: %q", output)
	}
	if !strings.Contains(output, "loads protocol catalogs") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}
}

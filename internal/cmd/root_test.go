package cmd

import (
	"bytes"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCommand()
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	want := map[string]bool{
		"scan":     false,
		"load":     false,
		"describe": false,
		"export":   false,
		"history":  false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if stdout == "" {
		t.Error("expected help output")
	}
}

func TestScanRequiresSuffix(t *testing.T) {
	_, _, err := executeCommand(t, "scan", t.TempDir())
	if err == nil {
		t.Error("expected an error when --suffix is missing")
	}
}

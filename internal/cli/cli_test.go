package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/format"
)

const sampleReport = `{
  "root": "app 0.1.0",
  "packages": [
    {"id": "app 0.1.0", "name": "app", "version": "0.1.0", "license": "MIT", "forbids_unsafe": true},
    {"id": "libc 0.2.150", "name": "libc", "version": "0.2.150", "license": "MIT OR Apache-2.0",
     "used": {"functions": {"safe": 10, "unsafe": 4}}},
    {"id": "proptest 1.4.0", "name": "proptest", "version": "1.4.0"}
  ],
  "dependencies": [
    {"from": "app 0.1.0", "to": "libc 0.2.150"},
    {"from": "app 0.1.0", "to": "proptest 1.4.0", "kind": "dev"}
  ]
}`

// setup moves the test into an empty directory holding report.json so
// that no config file from the repository is picked up.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("report.json", []byte(sampleReport), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	setup(t)

	out, err := execute(t, "tree", "report.json")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	for _, want := range []string{"🔒 app 0.1.0\n", "☢️ └── libc 0.2.150\n", "4/4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "proptest") {
		t.Error("dev dependency printed without --include-tests")
	}
}

func TestTreeCommandFlags(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"include tests", []string{"--include-tests"}, []string{"├── libc 0.2.150", "└── proptest 1.4.0"}},
		{"pattern", []string{"-f", "{p} ({l})"}, []string{"libc 0.2.150 (MIT OR Apache-2.0)"}},
		{"ascii", []string{"--output-format", "Ascii"}, []string{"`-- libc 0.2.150"}},
		{"prefix depth", []string{"--prefix-depth"}, []string{"0app 0.1.0", "1libc 0.2.150"}},
		{"markdown", []string{"--output-format", "GitHubMarkdown"}, []string{"```\n"}},
		{"ratio", []string{"--output-format", "Ratio"}, []string{"71.43%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"tree", "report.json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("tree: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
		})
	}
}

func TestTreeCommandJSON(t *testing.T) {
	setup(t)

	out, err := execute(t, "tree", "report.json", "--output-format", "Json", "--invert")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if v["direction"] != "incoming" {
		t.Errorf("direction = %v, want incoming", v["direction"])
	}
}

func TestTreeCommandErrors(t *testing.T) {
	setup(t)

	tests := []struct {
		name     string
		args     []string
		code     errors.Code
		exitCode int
	}{
		{"bad pattern", []string{"tree", "report.json", "-f", "{x}"}, errors.ErrCodeInvalidPattern, 1},
		{"missing report", []string{"tree", "missing.json"}, errors.ErrCodeFileNotFound, 1},
		{"bad color", []string{"tree", "report.json", "--color", "sometimes"}, errors.ErrCodeInvalidInput, 1},
		{"missing config", []string{"tree", "report.json", "--config", "none.toml"}, errors.ErrCodeFileNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if code := errors.GetCode(err); code != tt.code {
				t.Errorf("GetCode() = %q, want %q (err: %v)", code, tt.code, err)
			}
			if got := errors.ExitCode(err); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

func TestTreeCommandUnknownOutputFormat(t *testing.T) {
	setup(t)

	_, err := execute(t, "tree", "report.json", "--output-format", "Yaml")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), format.ErrOutputFormatNotFound.Error()) {
		t.Errorf("err = %v, want %q", err, format.ErrOutputFormatNotFound)
	}
}

func TestTreeCommandConfigFile(t *testing.T) {
	dir := setup(t)
	if err := os.WriteFile(filepath.Join(dir, "geiger.toml"), []byte("output-format = \"Ascii\"\nformat = \"{p} [{l}]\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", "report.json")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, "`-- libc 0.2.150 [MIT OR Apache-2.0]") {
		t.Errorf("config file not applied\n%s", out)
	}

	// Flags win over the file.
	out, err = execute(t, "tree", "report.json", "--output-format", "Utf8", "-f", "{p}")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, "└── libc 0.2.150\n") {
		t.Errorf("flags should override config file\n%s", out)
	}
}

func TestTreeCommandExplicitConfig(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("no-indent: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", "report.json", "--config", path)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, "☢️ libc 0.2.150\n") {
		t.Errorf("no-indent from config not applied\n%s", out)
	}
}

func TestGraphCommand(t *testing.T) {
	dir := setup(t)

	out, err := execute(t, "graph", "report.json", "--dot", "-o", "-")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("output is not DOT\n%s", out)
	}

	out, err = execute(t, "graph", "report.json", "--dot")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "report.dot"))
	if err != nil {
		t.Fatalf("default output not written: %v", err)
	}
	if !bytes.Contains(data, []byte(`"app 0.1.0" -> "libc 0.2.150";`)) {
		t.Errorf("DOT missing edge\n%s", data)
	}
	if !strings.Contains(out, "report.dot") {
		t.Errorf("output should name the written file\n%s", out)
	}
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	for _, name := range format.OutputFormats() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q\n%s", name, out)
		}
	}
	if !strings.Contains(out, "(default)") {
		t.Errorf("output should mark the default format\n%s", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, name := range shellNames() {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "completion", name)
			if err != nil {
				t.Fatalf("completion %s: %v", name, err)
			}
			if !strings.Contains(out, "geiger") {
				t.Errorf("completion %s script should mention the command name", name)
			}
		})
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestCompletionHelpListsShells(t *testing.T) {
	help := completionHelp()
	for _, s := range shells {
		if !strings.Contains(help, s.install) {
			t.Errorf("help missing install line for %s\n%s", s.name, help)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "geiger version ") {
		t.Errorf("--version output = %q", out)
	}
}

func TestVerboseFlag(t *testing.T) {
	setup(t)

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"tree", "report.json", "-v"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("tree -v: %v", err)
	}
	for _, want := range []string{"Loaded report", "packages=3", "color=false"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug logs missing %q with -v\n%s", want, logs.String())
		}
	}
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
}

func TestFmtCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.qss")
	src := "QLabel{color:#abb2bf;padding:2px}"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newFmtCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "QLabel {") {
		t.Errorf("expected canonical rule header, have:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "    color: #abb2bf;") {
		t.Errorf("expected indented declaration, have:\n%s", out.String())
	}
}

func TestVetCommandFindsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.qss")
	src := "QLabel { color: #abc; }"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newVetCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err == nil {
		t.Error("expected vet to fail on a malformed color literal")
	}
	if !strings.Contains(out.String(), "BAD_COLOR") {
		t.Errorf("expected a BAD_COLOR issue to be reported, have:\n%s", out.String())
	}
}

func TestDumpCommand(t *testing.T) {
	cmd := newDumpCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "QPushButton") {
		t.Error("expected the built-in theme dump to mention QPushButton")
	}
}

func TestEmitCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resolved.qss")
	cmd := newEmitCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--icons", "/opt/icons", "-o", outPath})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	resolved, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(resolved), "$ICON_DIR") {
		t.Error("expected the emitted theme to have no placeholders left")
	}
}

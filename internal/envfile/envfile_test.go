package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# comment line
PLAIN_KEY=plain
export EXPORTED_KEY=exported
QUOTED_KEY="quoted value"
SINGLE_KEY='single'
EMPTY_KEY=

not a key value line
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"PLAIN_KEY", "EXPORTED_KEY", "QUOTED_KEY", "SINGLE_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"PLAIN_KEY", "plain"},
		{"EXPORTED_KEY", "exported"},
		{"QUOTED_KEY", "quoted value"},
		{"SINGLE_KEY", "single"},
	}
	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PRESET_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PRESET_KEY", "from-env")
	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("PRESET_KEY"); got != "from-env" {
		t.Errorf("PRESET_KEY = %q, environment should win", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"export KEY=value", "KEY", "value", true},
		{`KEY="spaced value"`, "KEY", "spaced value", true},
		{"KEY=", "KEY", "", true},
		{"no equals sign", "", "", false},
		{"=value", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, value, ok := parseLine(tt.line)
			if ok != tt.wantOK || key != tt.wantKey || value != tt.wantValue {
				t.Errorf("parseLine(%q) = %q, %q, %v; want %q, %q, %v",
					tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
			}
		})
	}
}

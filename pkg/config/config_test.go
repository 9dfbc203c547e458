package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestResolveWithoutFile(t *testing.T) {
	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.RuntimeVersion != DefaultRuntimeVersion {
		t.Errorf("RuntimeVersion = %q, want %q", r.RuntimeVersion, DefaultRuntimeVersion)
	}
	if r.TypePrefix != DefaultTypePrefix || r.RootSize != DefaultRootSize || r.Face != DefaultFace {
		t.Errorf("defaults = %+v", r)
	}
	if r.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", r.LogLevel)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	data := `
runtime:
  version: "2.8"
  type_prefix: Swt
  root_size: 120
logging:
  level: debug
  verbose: true
text:
  face: basic
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.RuntimeVersion != "v2.8.0" {
		t.Errorf("RuntimeVersion = %q, want v2.8.0", r.RuntimeVersion)
	}
	if r.TypePrefix != "Swt" || r.RootSize != 120 {
		t.Errorf("runtime = (%q, %d), want (Swt, 120)", r.TypePrefix, r.RootSize)
	}
	if r.LogLevel != zapcore.DebugLevel || !r.Verbose {
		t.Errorf("logging = (%v, %v), want (debug, true)", r.LogLevel, r.Verbose)
	}
	if r.Face != DefaultFace {
		t.Errorf("Face = %q, want %q", r.Face, DefaultFace)
	}
	if _, err := r.Logger(); err != nil {
		t.Errorf("Logger: %v", err)
	}
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad version", "runtime:\n  version: two\n", "runtime.version"},
		{"prefix separator", "runtime:\n  type_prefix: a+b\n", "type_prefix"},
		{"negative size", "runtime:\n  root_size: -1\n", "root_size"},
		{"bad level", "logging:\n  level: loud\n", "logging.level"},
		{"bad face", "text:\n  face: helvetica\n", "text.face"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = cfg.Resolve()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("runtime: [")); err == nil {
		t.Error("Parse succeeded on malformed yaml")
	}
}

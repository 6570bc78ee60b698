package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/azure/draftwrapper/internal/config"
)

func TestRunConfigShow(t *testing.T) {
	t.Run("config exists", func(t *testing.T) {
		restore := saveCmdVars(t)
		defer restore()
		t.Setenv("HOME", t.TempDir())
		if err := config.Save(config.Default()); err != nil {
			t.Fatalf("save config: %v", err)
		}

		out := &bytes.Buffer{}
		ioOut = out
		if err := runConfigShow(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "output: text") {
			t.Errorf("output = %q, want substring %q", out.String(), "output: text")
		}
	})

	t.Run("config missing", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		err := runConfigShow(nil, nil)
		if err == nil {
			t.Fatal("expected error for missing config, got nil")
		}
		if !strings.Contains(err.Error(), "config set") {
			t.Errorf("error = %q, want substring %q", err.Error(), "config set")
		}
	})
}

func TestRunConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"set version", "version", "v0.0.2", ""},
		{"set version without v", "version", "0.0.2", "invalid version"},
		{"set empty version", "version", "   ", "version cannot be empty"},
		{"set text output", "output", "text", ""},
		{"set yaml output", "output", "yaml", ""},
		{"set invalid output", "output", "json", "invalid output"},
		{"unknown key", "prefix", "draftv3", "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := saveCmdVars(t)
			defer restore()
			ioOut = &bytes.Buffer{}
			t.Setenv("HOME", t.TempDir())

			err := runConfigSet(nil, []string{tt.key, tt.value})

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
				}
				if config.Exists() {
					t.Error("config was saved despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			loaded, err := config.Load()
			if err != nil {
				t.Fatalf("Load() after set: %v", err)
			}

			var got string
			switch tt.key {
			case "version":
				got = loaded.Version
			case "output":
				got = loaded.Output
			}
			if got != tt.value {
				t.Errorf("config[%s] = %q after set, want %q", tt.key, got, tt.value)
			}
		})
	}
}

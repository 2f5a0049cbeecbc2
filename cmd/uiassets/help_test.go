package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"no command", nil, ExitSuccess, "Commands:", ""},
		{"xaml", []string{"xaml"}, ExitSuccess, "Usage: uiassets xaml <path>", ""},
		{"texture", []string{"texture"}, ExitSuccess, "--max-size", ""},
		{"font", []string{"font"}, ExitSuccess, "match <folder> <family>", ""},
		{"watch", []string{"watch"}, ExitSuccess, "Ctrl+C", ""},
		{"version", []string{"version"}, ExitSuccess, "Usage: uiassets version", ""},
		{"help", []string{"help"}, ExitSuccess, "Usage: uiassets help", ""},
		{"unknown", []string{"convert"}, ExitUsage, "", "unknown command: convert"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := runHelp(tt.args, &Environment{Stdout: &stdout, Stderr: &stderr})

			if code != tt.wantCode {
				t.Errorf("runHelp() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout should contain %q, got %q", tt.wantOut, stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantErr, stderr.String())
			}
		})
	}
}

func TestCommandUsage_ListsCommonFlags(t *testing.T) {
	t.Parallel()

	for name, usage := range map[string]func(*bytes.Buffer){
		"xaml":    func(b *bytes.Buffer) { printXamlUsage(b) },
		"texture": func(b *bytes.Buffer) { printTextureUsage(b) },
		"font":    func(b *bytes.Buffer) { printFontUsage(b) },
		"watch":   func(b *bytes.Buffer) { printWatchUsage(b) },
	} {
		var buf bytes.Buffer
		usage(&buf)
		for _, flag := range []string{"--config", "--content", "--mount", "--engine-override", "--editor", "--verbose"} {
			if !strings.Contains(buf.String(), flag) {
				t.Errorf("%s usage should mention %s", name, flag)
			}
		}
	}
}

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunWatch(t *testing.T) {
	t.Parallel()

	root := setupContent(t)
	var stdout, stderr syncBuffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, []string{"--content", root, "-q", "/Game/UI/Main", "/Game/Textures/Logo"}, env)
	}()

	waitFor(t, &stdout, "loaded\ttexture\t/Game/Textures/Logo")
	if !strings.Contains(stdout.String(), "loaded\txaml\t/Game/UI/Main") {
		t.Errorf("stdout = %q, want the markup loaded", stdout.String())
	}

	// The watcher starts after the last load is reported; keep writing
	// until an event comes through.
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(stdout.String(), "changed\t/Game/UI/Main") {
		if time.Now().After(deadline) {
			t.Fatalf("no change reported, stdout = %q stderr = %q", stdout.String(), stderr.String())
		}
		writeTestFile(t, root, "UI/Main.xaml", []byte("<StackPanel/>"+time.Now().String()))
		time.Sleep(100 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runWatch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runWatch() did not return after cancel")
	}
}

func TestRunWatch_Errors(t *testing.T) {
	t.Parallel()

	root := setupContent(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing asset", []string{"--content", root, "/Game/UI/Nope"}, ExitNotFound},
		{"engine only", []string{"/Engine/Theme/Default"}, ExitUsage},
		{"bad flag", []string{"--nope", "/Game/UI/Main"}, ExitUsage},
		{"missing root", []string{"--content", filepath.Join(root, "nope"), "/Game/UI/Main"}, ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr syncBuffer
			err := runWatch(context.Background(), tt.args, &Environment{Stdout: &stdout, Stderr: &stderr})
			if got := exitCodeFor(err); got != tt.want {
				t.Errorf("exitCodeFor(runWatch()) = %d, want %d (err: %v)", got, tt.want, err)
			}
		})
	}
}

// waitFor polls buf until it contains want.
func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(buf.String(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q, got %q", want, buf.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWithArgsModes(t *testing.T) {
	for _, mode := range []string{"drop", "drain", "into", "iter", "itermut"} {
		t.Run(mode, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := runWithArgs([]string{"-n", "1000", "-mode", mode}, &stdout, &stderr)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
			}
			want := mode + ": pushed 1000, released 1000\n"
			if got := stdout.String(); got != want {
				t.Fatalf("stdout = %q, want %q", got, want)
			}
		})
	}
}

func TestRunWithArgsDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWithArgs(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if got, want := stdout.String(), "drop: pushed 100000, released 100000\n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
}

func TestRunWithArgsEmptyList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{"-n", "0", "-mode", "into"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
}

func TestRunWithArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown mode", args: []string{"-mode", "bogus"}, wantErr: `unknown mode "bogus"`},
		{name: "negative count", args: []string{"-n", "-1"}, wantErr: "-n must not be negative"},
		{name: "extra argument", args: []string{"extra"}, wantErr: "unexpected arguments"},
		{name: "bad flag", args: []string{"-nope"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := runWithArgs(tt.args, &stdout, &stderr); code != 2 {
				t.Fatalf("exit code = %d, want 2", code)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Fatalf("stderr = %q, want substring %q", stderr.String(), tt.wantErr)
			}
			if stdout.Len() != 0 {
				t.Fatalf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

func TestRunWithArgsProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	var stdout, stderr bytes.Buffer
	args := []string{"-n", "10", "-cpuprofile", cpu, "-memprofile", mem}
	if code := runWithArgs(args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	for _, path := range []string{cpu, mem} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("profile %s: %v", path, err)
		}
	}
}

func TestRunWithArgsProfileCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cpu.pprof")

	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{"-cpuprofile", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "create cpu profile") {
		t.Fatalf("stderr = %q, want create cpu profile error", stderr.String())
	}
}

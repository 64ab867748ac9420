package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minikomi/pitchset/internal/logging"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, logOut bytes.Buffer
	log := logging.NewLogger(&logOut, &logOut, false)
	code := run(args, loadDefaultPreferences(), &out, log)
	return code, out.String(), logOut.String()
}

func TestRunScale(t *testing.T) {
	code, out, log := runArgs(t, "-scale", "major")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "C4 D4 E4 F4 G4 A4 B4 C5\n" {
		t.Errorf("got %q", out)
	}
}

func TestRunASCII(t *testing.T) {
	code, out, log := runArgs(t, "-scale", "major", "-from", "Gb3", "-ascii")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "Gb3 Ab3 Bb3 Cb4 Db4 Eb4 F4 Gb4\n" {
		t.Errorf("got %q", out)
	}
}

func TestRunChordWithKey(t *testing.T) {
	code, out, log := runArgs(t, "-chord", "minor", "-from", "C4", "-n", "4", "-key")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "C4 E♭4 G4 C5  (C minor)\n" {
		t.Errorf("got %q", out)
	}
}

func TestRunIntervals(t *testing.T) {
	code, out, log := runArgs(t, "-intervals", "0,4,7,11", "-chord-form", "-from", "F3", "-n", "5")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "F3 A3 C4 E4 F4\n" {
		t.Errorf("got %q", out)
	}
}

func TestRunFormat(t *testing.T) {
	code, out, log := runArgs(t, "-scale", "major", "-n", "3", "-format", `{{range .Pitches}}{{.Value}}:{{.Name | lower}} {{end}}{{.Kind | upper}}`)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "60:c 62:d 64:e SCALE\n" {
		t.Errorf("got %q", out)
	}
}

func TestRunNames(t *testing.T) {
	code, out, _ := runArgs(t, "-names")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"scale\tmajor\n", "chord\tdominant7\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRunCustomCatalog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(file, []byte("chords:\n  power: [0, 7]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	code, out, log := runArgs(t, "-catalog", file, "-chord", "power", "-n", "3", "-format", `{{range .Pitches}}{{.Value}} {{end}}`)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	if out != "60 67 72 \n" {
		t.Errorf("got %q", out)
	}
}

func TestRunMIDIFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.mid")
	code, _, log := runArgs(t, "-scale", "major", "-o", file, "-velocity", "100")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, log)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 8*6 {
		t.Fatalf("wrote %d bytes, expected %d", len(data), 8*6)
	}
	if data[0] != 0x90 || data[1] != 60 || data[2] != 100 {
		t.Errorf("first message % x", data[:3])
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no pattern", nil, 2},
		{"two patterns", []string{"-scale", "major", "-chord", "major"}, 2},
		{"unknown scale", []string{"-scale", "nope"}, 2},
		{"bad pitch", []string{"-scale", "major", "-from", "H2"}, 2},
		{"zero count", []string{"-scale", "major", "-n", "0"}, 2},
		{"empty intervals", []string{"-intervals", ","}, 2},
		{"bad velocity", []string{"-scale", "major", "-velocity", "0"}, 2},
		{"bad format", []string{"-scale", "major", "-format", "{{"}, 2},
		{"missing catalog", []string{"-catalog", "/nonexistent/catalog.yml", "-scale", "major"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, log := runArgs(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code %d, expected %d", code, tt.code)
			}
			if !strings.Contains(log, "[ERROR]") {
				t.Errorf("no error logged: %q", log)
			}
		})
	}
}

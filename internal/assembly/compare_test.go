package assembly

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "wpa_supplicant.conf")
	if err := os.WriteFile(target, []byte("CONTENT"), 0600); err != nil {
		t.Fatalf("Failed to seed target: %v", err)
	}

	got, err := ReadTarget(target)
	if err != nil {
		t.Fatalf("ReadTarget failed: %v", err)
	}
	if got != "CONTENT" {
		t.Errorf("Expected 'CONTENT', got '%s'", got)
	}
}

func TestReadTarget_Missing(t *testing.T) {
	got, err := ReadTarget(filepath.Join(t.TempDir(), "missing.conf"))
	if err != nil {
		t.Fatalf("ReadTarget failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty contents, got '%s'", got)
	}
}

func TestUpToDate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "wpa_supplicant.conf")
	text := Assemble("H", "T", "network={\n\tssid=\"home\"\n}\n\n")

	if err := Publish(text, target); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	upToDate, err := UpToDate(text, target)
	if err != nil {
		t.Fatalf("UpToDate failed: %v", err)
	}
	if !upToDate {
		t.Error("Expected target to be up to date after publish")
	}
}

func TestUpToDate_Stale(t *testing.T) {
	target := filepath.Join(t.TempDir(), "wpa_supplicant.conf")
	if err := os.WriteFile(target, []byte("STALE"), 0600); err != nil {
		t.Fatalf("Failed to seed target: %v", err)
	}

	upToDate, err := UpToDate("FRESH", target)
	if err != nil {
		t.Fatalf("UpToDate failed: %v", err)
	}
	if upToDate {
		t.Error("Expected stale target to be reported out of date")
	}
}

func TestUpToDate_MissingTarget(t *testing.T) {
	upToDate, err := UpToDate("FRESH", filepath.Join(t.TempDir(), "missing.conf"))
	if err != nil {
		t.Fatalf("UpToDate failed: %v", err)
	}
	if upToDate {
		t.Error("Expected missing target to be reported out of date")
	}
}

func TestDiff_Identical(t *testing.T) {
	text := "line one\nline two\n"

	diff, err := Diff(text, text)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if diff != "" {
		t.Errorf("Expected empty diff, got:\n%s", diff)
	}
}

func TestDiff_Changed(t *testing.T) {
	current := "network={\n\tssid=\"old\"\n}\n"
	generated := "network={\n\tssid=\"new\"\n}\n"

	diff, err := Diff(current, generated)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	if !strings.Contains(diff, "-\tssid=\"old\"") {
		t.Errorf("Expected removal of old ssid in diff:\n%s", diff)
	}
	if !strings.Contains(diff, "+\tssid=\"new\"") {
		t.Errorf("Expected addition of new ssid in diff:\n%s", diff)
	}
}

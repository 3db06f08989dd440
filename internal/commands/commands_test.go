package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/errors"
)

type testEnv struct {
	ctx         *AppContext
	networksDir string
	outputPath  string
}

// newTestEnv writes a real settings file pointing at temporary paths, so
// commands run through the same load path as production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	networksDir := filepath.Join(dir, "networks.d")
	outputPath := filepath.Join(dir, "wpa_supplicant.conf")

	settingsPath := filepath.Join(dir, "wpa-netman.conf")
	settings := fmt.Sprintf("[general]\nnetworks_dir = %q\noutput_path = %q\n", networksDir, outputPath)
	if err := os.WriteFile(settingsPath, []byte(settings), 0600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	return &testEnv{
		ctx:         &AppContext{ConfigPath: settingsPath},
		networksDir: networksDir,
		outputPath:  outputPath,
	}
}

func runCommand(t *testing.T, cmd Runner, env *testEnv, args ...string) error {
	t.Helper()

	if err := cmd.Init(args, env.ctx); err != nil {
		return err
	}
	return cmd.Run()
}

func TestAdd(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "home", "secret-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(env.networksDir, "home.conf"))
	if err != nil {
		t.Fatalf("Failed to read fragment: %v", err)
	}

	expected := "network={\n\tssid=\"home\"\n\tpsk=\"secret-passphrase\"\n}"
	if string(data) != expected {
		t.Errorf("Expected fragment:\n%s\ngot:\n%s", expected, string(data))
	}
}

func TestAdd_OpenNetwork(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "cafe"); err != nil {
		t.Fatalf("Failed to add open network: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(env.networksDir, "cafe.conf"))
	if err != nil {
		t.Fatalf("Failed to read fragment: %v", err)
	}
	if !strings.Contains(string(data), "key_mgmt=NONE") {
		t.Errorf("Expected key_mgmt=NONE in fragment, got:\n%s", string(data))
	}
	if strings.Contains(string(data), "psk") {
		t.Errorf("Expected no psk in open network, got:\n%s", string(data))
	}
}

func TestAdd_RawPSK(t *testing.T) {
	env := newTestEnv(t)

	psk := strings.Repeat("ab", 32)
	if err := runCommand(t, CreateAddCommand(), env, "-p", "home", psk); err != nil {
		t.Fatalf("Failed to add network with raw PSK: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(env.networksDir, "home.conf"))
	if err != nil {
		t.Fatalf("Failed to read fragment: %v", err)
	}
	if !strings.Contains(string(data), "\tpsk="+psk+"\n") {
		t.Errorf("Expected unquoted psk, got:\n%s", string(data))
	}
}

func TestAdd_ShortPassphrase(t *testing.T) {
	env := newTestEnv(t)

	err := runCommand(t, CreateAddCommand(), env, "home", "short")
	if !errors.IsCode(err, errors.ErrCodeInvalidPassphrase) {
		t.Fatalf("Expected INVALID_PASSPHRASE, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(env.networksDir, "home.conf")); !os.IsNotExist(statErr) {
		t.Errorf("Expected no fragment to be written")
	}
}

func TestAdd_DuplicateWithoutForce(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "home", "first-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	err := runCommand(t, CreateAddCommand(), env, "home", "second-passphrase")
	if !errors.IsCode(err, errors.ErrCodeAlreadyExists) {
		t.Fatalf("Expected ALREADY_EXISTS, got %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(env.networksDir, "home.conf"))
	if !strings.Contains(string(data), "first-passphrase") {
		t.Errorf("Expected original fragment to be unchanged, got:\n%s", string(data))
	}
}

func TestAdd_ForceOverwrites(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "home", "first-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateAddCommand(), env, "-f", "home", "second-passphrase"); err != nil {
		t.Fatalf("Failed to overwrite network: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(env.networksDir, "home.conf"))
	if !strings.Contains(string(data), "second-passphrase") {
		t.Errorf("Expected replaced fragment, got:\n%s", string(data))
	}
}

func TestAdd_ArgumentErrors(t *testing.T) {
	env := newTestEnv(t)

	if err := CreateAddCommand().Init([]string{"-o", "cafe", "secret-passphrase"}, env.ctx); err == nil {
		t.Errorf("Expected error for open network with passphrase")
	}
	if err := CreateAddCommand().Init([]string{"home"}, env.ctx); err == nil {
		t.Errorf("Expected error for missing passphrase without -o")
	}
	if err := CreateAddCommand().Init([]string{"-o", "-p", "home"}, env.ctx); err == nil {
		t.Errorf("Expected error for -o together with -p")
	}
	if err := CreateAddCommand().Init([]string{}, env.ctx); err == nil {
		t.Errorf("Expected error for missing ssid")
	}
}

func TestAdd_DirOverride(t *testing.T) {
	env := newTestEnv(t)
	override := t.TempDir()

	if err := runCommand(t, CreateAddCommand(), env, "-d", override, "home", "secret-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	if _, err := os.Stat(filepath.Join(override, "home.conf")); err != nil {
		t.Errorf("Expected fragment in override directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.networksDir, "home.conf")); !os.IsNotExist(err) {
		t.Errorf("Expected no fragment in settings directory")
	}
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "home", "secret-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateDeleteCommand(), env, "home"); err != nil {
		t.Fatalf("Failed to delete network: %v", err)
	}

	if _, err := os.Stat(filepath.Join(env.networksDir, "home.conf")); !os.IsNotExist(err) {
		t.Errorf("Expected fragment to be removed")
	}
}

func TestDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	if err := os.MkdirAll(env.networksDir, 0755); err != nil {
		t.Fatalf("Failed to create networks dir: %v", err)
	}

	err := runCommand(t, CreateDeleteCommand(), env, "missing")
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("Expected NOT_FOUND, got %v", err)
	}
}

func TestShow_NotFound(t *testing.T) {
	env := newTestEnv(t)

	if err := os.MkdirAll(env.networksDir, 0755); err != nil {
		t.Fatalf("Failed to create networks dir: %v", err)
	}

	err := runCommand(t, CreateShowCommand(), env, "missing")
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("Expected NOT_FOUND, got %v", err)
	}
}

func TestMake_PublishesDocument(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "alpha"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateAddCommand(), env, "beta", "secret-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	if err := runCommand(t, CreateMakeCommand(), env); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}

	data, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "# This file was generated by wpa-netman. DO NOT EDIT.\n") {
		t.Errorf("Expected banner at start of document, got:\n%s", text)
	}
	if !strings.Contains(text, `ssid="alpha"`) || !strings.Contains(text, `ssid="beta"`) {
		t.Errorf("Expected both network blocks in document, got:\n%s", text)
	}
}

func TestMake_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateMakeCommand(), env); err != nil {
		t.Fatalf("Failed to publish empty store: %v", err)
	}

	data, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# This file was generated by wpa-netman.") {
		t.Errorf("Expected banner-only document, got:\n%s", string(data))
	}
}

func TestMake_BacksUpPreviousDocument(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "alpha"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateMakeCommand(), env); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}
	first, _ := os.ReadFile(env.outputPath)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "beta"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateMakeCommand(), env); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}

	backup, err := os.ReadFile(env.outputPath + ".bkp")
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(backup) != string(first) {
		t.Errorf("Expected backup to hold the previous document")
	}
}

func TestDiff(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "alpha"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateMakeCommand(), env); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}

	if err := runCommand(t, CreateDiffCommand(), env); err != nil {
		t.Errorf("Expected no diff after publish, got %v", err)
	}

	if err := runCommand(t, CreateAddCommand(), env, "-o", "beta"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	if err := runCommand(t, CreateDiffCommand(), env); err == nil {
		t.Errorf("Expected diff error after store change")
	}
}

func TestMigrate(t *testing.T) {
	env := newTestEnv(t)

	legacy := filepath.Join(t.TempDir(), "legacy.conf")
	content := "# generated by hand\n" +
		"network={\n\tssid=\"alpha\"\n\tpsk=\"secret-passphrase\"\n}\n\n" +
		"network={\n\tssid=\"beta\"\n\tkey_mgmt=NONE\n}\n"
	if err := os.WriteFile(legacy, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	if err := runCommand(t, CreateMigrateCommand(), env, "-c", legacy); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	for _, ssid := range []string{"alpha", "beta"} {
		if _, err := os.Stat(filepath.Join(env.networksDir, ssid+".conf")); err != nil {
			t.Errorf("Expected fragment for '%s': %v", ssid, err)
		}
	}
}

func TestMigrate_SkipsExistingWithoutForce(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "alpha", "original-passphrase"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	legacy := filepath.Join(t.TempDir(), "legacy.conf")
	content := "network={\n\tssid=\"alpha\"\n\tpsk=\"migrated-passphrase\"\n}\n"
	if err := os.WriteFile(legacy, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	if err := runCommand(t, CreateMigrateCommand(), env, "-c", legacy); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(env.networksDir, "alpha.conf"))
	if !strings.Contains(string(data), "original-passphrase") {
		t.Errorf("Expected existing fragment to be kept, got:\n%s", string(data))
	}

	if err := runCommand(t, CreateMigrateCommand(), env, "-c", legacy, "-f"); err != nil {
		t.Fatalf("Failed to migrate with -f: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(env.networksDir, "alpha.conf"))
	if !strings.Contains(string(data), "migrated-passphrase") {
		t.Errorf("Expected overwritten fragment, got:\n%s", string(data))
	}
}

func TestMigrate_DefaultsToOutputPath(t *testing.T) {
	env := newTestEnv(t)

	content := "network={\n\tssid=\"legacy\"\n\tkey_mgmt=NONE\n}\n"
	if err := os.WriteFile(env.outputPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	if err := runCommand(t, CreateMigrateCommand(), env); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(env.networksDir, "legacy.conf")); err != nil {
		t.Errorf("Expected fragment from output path: %v", err)
	}
}

func TestEdit_MissingWithoutCreate(t *testing.T) {
	env := newTestEnv(t)

	err := runCommand(t, CreateEditCommand(), env, "missing")
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("Expected NOT_FOUND, got %v", err)
	}
}

func TestEdit_EditorUnavailable(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("EDITOR", "")

	if err := runCommand(t, CreateAddCommand(), env, "-o", "home"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	err := runCommand(t, CreateEditCommand(), env, "home")
	if !errors.IsCode(err, errors.ErrCodeEditorUnavailable) {
		t.Fatalf("Expected EDITOR_UNAVAILABLE, got %v", err)
	}
}

func TestResolveEditor(t *testing.T) {
	cfg := config.Default()
	cfg.General.Editor = "nano"

	editor, err := resolveEditor(cfg)
	if err != nil {
		t.Fatalf("Failed to resolve editor: %v", err)
	}
	if editor != "nano" {
		t.Errorf("Expected settings editor 'nano', got '%s'", editor)
	}
}

func TestResolveEditor_Environment(t *testing.T) {
	t.Setenv("EDITOR", "busybox vi")

	editor, err := resolveEditor(config.Default())
	if err != nil {
		t.Fatalf("Failed to resolve editor: %v", err)
	}
	if editor != "busybox vi" {
		t.Errorf("Expected environment editor, got '%s'", editor)
	}
}

func TestServeInit_ListenOverride(t *testing.T) {
	env := newTestEnv(t)

	cmd := CreateServeCommand()
	if err := cmd.Init([]string{"-listen", "127.0.0.1:9000"}, env.ctx); err != nil {
		t.Fatalf("Failed to init serve: %v", err)
	}
	if !cmd.cfg.API.Enable {
		t.Errorf("Expected -listen to enable the API")
	}
	if cmd.cfg.API.ListenAddr != "127.0.0.1" || cmd.cfg.API.ListenPort != 9000 {
		t.Errorf("Expected listen override, got %s:%d", cmd.cfg.API.ListenAddr, cmd.cfg.API.ListenPort)
	}
}

func TestServeInit_BracketedIPv6(t *testing.T) {
	env := newTestEnv(t)

	cmd := CreateServeCommand()
	if err := cmd.Init([]string{"-listen", "[::1]:9100"}, env.ctx); err != nil {
		t.Fatalf("Failed to init serve: %v", err)
	}
	if cmd.cfg.API.ListenAddr != "[::1]" {
		t.Errorf("Expected bracketed IPv6 address, got '%s'", cmd.cfg.API.ListenAddr)
	}
	if cmd.cfg.GetListenAddress() != "[::1]:9100" {
		t.Errorf("Expected listen address '[::1]:9100', got '%s'", cmd.cfg.GetListenAddress())
	}
}

func TestServeInit_DisabledWithoutListen(t *testing.T) {
	env := newTestEnv(t)

	if err := CreateServeCommand().Init([]string{}, env.ctx); err == nil {
		t.Errorf("Expected error when the API is disabled")
	}
}

func TestServeInit_InvalidListen(t *testing.T) {
	env := newTestEnv(t)

	if err := CreateServeCommand().Init([]string{"-listen", "no-port"}, env.ctx); err == nil {
		t.Errorf("Expected error for address without port")
	}
	if err := CreateServeCommand().Init([]string{"-listen", "127.0.0.1:0"}, env.ctx); err == nil {
		t.Errorf("Expected error for port 0")
	}
}

func TestSelfCheck(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "home"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}

	if err := runCommand(t, CreateSelfCheckCommand(), env); err != nil {
		t.Errorf("Expected self-check to pass, got %v", err)
	}
}

func TestSelfCheck_MalformedFragment(t *testing.T) {
	env := newTestEnv(t)

	if err := runCommand(t, CreateAddCommand(), env, "-o", "home"); err != nil {
		t.Fatalf("Failed to add network: %v", err)
	}
	path := filepath.Join(env.networksDir, "bad.conf")
	if err := os.WriteFile(path, []byte("not a network block"), 0600); err != nil {
		t.Fatalf("Failed to write fragment: %v", err)
	}

	if err := runCommand(t, CreateSelfCheckCommand(), env); err == nil {
		t.Errorf("Expected self-check to fail on malformed fragment")
	}
}

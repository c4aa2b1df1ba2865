package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("PORT", "4100")
	os.Setenv("ADMIN_KEY", "test-admin-key-123")
	os.Setenv("DATA_FILE", "/tmp/content-test.json")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ADMIN_KEY")
		os.Unsetenv("DATA_FILE")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "4100" {
		t.Fatalf("Server.Port = %q, want %q", cfg.Server.Port, "4100")
	}
	if cfg.Admin.Key != "test-admin-key-123" {
		t.Fatalf("Admin.Key = %q, want the env value", cfg.Admin.Key)
	}
	if cfg.Store.DataFile != "/tmp/content-test.json" {
		t.Fatalf("Store.DataFile = %q, want the env value", cfg.Store.DataFile)
	}
	if cfg.Uploads.MaxBytes != 10<<20 {
		t.Fatalf("Uploads.MaxBytes = %d, want default 10 MiB", cfg.Uploads.MaxBytes)
	}
}

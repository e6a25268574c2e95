package config

import (
	"os"
	"testing"
)

func TestLoadConfig_ReadsEnvVars(t *testing.T) {
	env := map[string]string{
		"DB_HOST":        "localhost",
		"DB_PORT":        "5432",
		"DB_USER":        "user1",
		"DB_PASSWORD":    "pass1",
		"DB_NAME":        "db1",
		"GCS_BUCKET":     "trainer-photos",
		"GENAI_PROJECT":  "proj-1",
		"GENAI_LOCATION": "global",
	}

	for k, v := range env {
		os.Setenv(k, v)
		t.Cleanup(func(key string) func() {
			return func() { os.Unsetenv(key) }
		}(k))
	}

	cfg := LoadConfig()

	if cfg.DBHost != env["DB_HOST"] {
		t.Fatalf("DBHost=%q want %q", cfg.DBHost, env["DB_HOST"])
	}
	if cfg.DBPort != env["DB_PORT"] {
		t.Fatalf("DBPort=%q want %q", cfg.DBPort, env["DB_PORT"])
	}
	if cfg.DBUser != env["DB_USER"] {
		t.Fatalf("DBUser=%q want %q", cfg.DBUser, env["DB_USER"])
	}
	if cfg.DBPassword != env["DB_PASSWORD"] {
		t.Fatalf("DBPassword=%q want %q", cfg.DBPassword, env["DB_PASSWORD"])
	}
	if cfg.DBName != env["DB_NAME"] {
		t.Fatalf("DBName=%q want %q", cfg.DBName, env["DB_NAME"])
	}
	if cfg.GCSBucket != env["GCS_BUCKET"] {
		t.Fatalf("GCSBucket=%q want %q", cfg.GCSBucket, env["GCS_BUCKET"])
	}
	if cfg.GenaiProject != env["GENAI_PROJECT"] {
		t.Fatalf("GenaiProject=%q want %q", cfg.GenaiProject, env["GENAI_PROJECT"])
	}
	if cfg.GenaiLocation != env["GENAI_LOCATION"] {
		t.Fatalf("GenaiLocation=%q want %q", cfg.GenaiLocation, env["GENAI_LOCATION"])
	}
}

func TestLoadConfig_MissingVars_ReturnEmptyStrings(t *testing.T) {
	keys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"GCS_BUCKET", "GENAI_PROJECT", "GENAI_LOCATION",
	}
	for _, k := range keys {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func(key, val string, restore bool) func() {
			return func() {
				if restore {
					os.Setenv(key, val)
				}
			}
		}(k, old, had))
	}

	cfg := LoadConfig()

	if cfg.DBHost != "" || cfg.DBPort != "" || cfg.DBUser != "" ||
		cfg.DBPassword != "" || cfg.DBName != "" ||
		cfg.GCSBucket != "" || cfg.GenaiProject != "" || cfg.GenaiLocation != "" {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

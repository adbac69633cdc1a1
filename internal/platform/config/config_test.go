package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.RequestTimeout != defaultRequestTimeout {
		t.Errorf("unexpected request timeout: %s", cfg.Server.RequestTimeout)
	}
	if cfg.Site.Title != defaultSiteTitle {
		t.Errorf("unexpected site title: %s", cfg.Site.Title)
	}
	if cfg.Site.BasePath != "/" {
		t.Errorf("expected base path /, got %s", cfg.Site.BasePath)
	}
	if cfg.Site.DefaultPage != "home" {
		t.Errorf("expected default page home, got %s", cfg.Site.DefaultPage)
	}
	if cfg.Site.Lang != "en" {
		t.Errorf("expected lang en, got %s", cfg.Site.Lang)
	}
	if cfg.Site.Environment != "local" {
		t.Errorf("expected environment local, got %s", cfg.Site.Environment)
	}
	if cfg.Export.Dir != "dist" {
		t.Errorf("expected export dir dist, got %s", cfg.Export.Dir)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Log.Level)
	}
}

func TestLoadPortFallback(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "9000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr from PORT, got %s", cfg.Server.Addr)
	}

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "9000", EnvHTTPAddr: "127.0.0.1:7000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("expected explicit addr to win, got %s", cfg.Server.Addr)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "docs.toml")
	tomlBody := `
[server]
read_timeout = "20s"

[site]
title = "From TOML"
base_path = "docs-site"
lang = "en-GB"

[publish]
bucket = "toml-bucket"
prefix = "/v2/"
`
	if err := os.WriteFile(tomlPath, []byte(tomlBody), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}

	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("export DOCS_SITE_TITLE=\"From dotenv\"\n# comment\nDOCS_DEFAULT_PAGE=Protocol\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(
		WithConfigFile(tomlPath),
		WithEnvFile(envPath),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{EnvPublishBucket: "env-bucket"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("expected toml read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.Title != "From dotenv" {
		t.Errorf("expected .env to override toml, got %s", cfg.Site.Title)
	}
	if cfg.Site.DefaultPage != "protocol" {
		t.Errorf("expected lower-cased default page, got %s", cfg.Site.DefaultPage)
	}
	if cfg.Site.BasePath != "/docs-site/" {
		t.Errorf("expected normalised base path, got %s", cfg.Site.BasePath)
	}
	if cfg.Site.Lang != "en-GB" {
		t.Errorf("expected lang en-GB, got %s", cfg.Site.Lang)
	}
	if cfg.Publish.Bucket != "env-bucket" {
		t.Errorf("expected env map to override toml, got %s", cfg.Publish.Bucket)
	}
	if cfg.Publish.Prefix != "v2" {
		t.Errorf("expected trimmed prefix, got %s", cfg.Publish.Prefix)
	}
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	tomlPath := filepath.Join(t.TempDir(), "docs.toml")
	if err := os.WriteFile(tomlPath, []byte("[log]\nlevel = \"debug\"\n"), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}

	cfg, err := Load(WithEnvMap(map[string]string{EnvConfigFile: tomlPath}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level from DOCS_CONFIG_FILE, got %s", cfg.Log.Level)
	}
}

func TestLoadRejectsUnknownTOMLKeys(t *testing.T) {
	tomlPath := filepath.Join(t.TempDir(), "docs.toml")
	if err := os.WriteFile(tomlPath, []byte("[site]\ntheme = \"dark\"\n"), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}

	_, err := Load(WithConfigFile(tomlPath), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := map[string]string{
		EnvReadTimeout:    "soon",
		EnvRequestTimeout: "-1s",
		EnvSiteLang:       "not a language",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	want := []string{"Server.ReadTimeout", "Server.RequestTimeout", "Site.Lang"}
	if len(fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], fields[i])
		}
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"docs":    "/docs/",
		"/docs/":  "/docs/",
		"/a/b///": "/a/b/",
	}
	for in, want := range cases {
		if got := NormalizeBasePath(in); got != want {
			t.Errorf("NormalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

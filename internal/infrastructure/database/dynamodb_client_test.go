package database

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		cfg := ConfigFromEnv()
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected default region us-east-1, got %q", cfg.Region)
		}
		if cfg.Endpoint != "" {
			t.Fatalf("expected no endpoint, got %q", cfg.Endpoint)
		}
	})

	t.Run("local overrides", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

		cfg := ConfigFromEnv()
		if cfg.Region != "sa-east-1" {
			t.Fatalf("expected region sa-east-1, got %q", cfg.Region)
		}
		if cfg.Endpoint != "http://dynamodb:8000" {
			t.Fatalf("expected local endpoint, got %q", cfg.Endpoint)
		}
	})
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Detector.Contamination != 0.1 {
		t.Fatalf("expected default contamination 0.1, got %v", cfg.Detector.Contamination)
	}
	if cfg.Detector.NeutralSeverity != 50 {
		t.Fatalf("expected default neutral severity 50, got %d", cfg.Detector.NeutralSeverity)
	}
	if cfg.Detector.HistoryMinRecords != 10 || cfg.Detector.HistoryFactor != 2 {
		t.Fatalf("unexpected history defaults: %+v", cfg.Detector)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FREIGHT_PORT", "9090")
	t.Setenv("FREIGHT_DETECTOR_CONTAMINATION", "0.2")
	t.Setenv("FREIGHT_ENV", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Detector.Contamination != 0.2 {
		t.Fatalf("expected contamination override, got %v", cfg.Detector.Contamination)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected normalized env production, got %q", cfg.Env)
	}
}

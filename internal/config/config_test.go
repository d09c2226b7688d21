package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Lecture: LectureConfig{Subject: "Análise Criminal"},
				Paths:   PathsConfig{Runs: "roteiros_gerados"},
			},
			wantErr: false,
		},
		{
			name: "missing runs path",
			config: Config{
				Lecture: LectureConfig{Subject: "Análise Criminal"},
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			config: Config{
				Paths: PathsConfig{Runs: "roteiros_gerados"},
			},
			wantErr: true,
		},
		{
			name: "unknown extractor backend",
			config: Config{
				Lecture:   LectureConfig{Subject: "Análise Criminal"},
				Paths:     PathsConfig{Runs: "roteiros_gerados"},
				Extractor: ExtractorConfig{Backend: "ocr"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Lecture: LectureConfig{Subject: "Análise Criminal"},
		Paths:   PathsConfig{Runs: "roteiros_gerados"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v", cfg.Gemini.Model)
	}
	if cfg.Gemini.PlannerTemperature != 0.2 || cfg.Gemini.WriterTemperature != 0.7 {
		t.Errorf("temperatures = %v, %v", cfg.Gemini.PlannerTemperature, cfg.Gemini.WriterTemperature)
	}
	if cfg.Lecture.DefaultSlideSeconds != 30 {
		t.Errorf("DefaultSlideSeconds = %v", cfg.Lecture.DefaultSlideSeconds)
	}
	if cfg.Extractor.Backend != "native" {
		t.Errorf("Backend = %v", cfg.Extractor.Backend)
	}
	if cfg.Export.Title != "Roteiros de Aula – Análise Criminal" {
		t.Errorf("Title = %v", cfg.Export.Title)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  model: "gemini-2.5-pro"
  api_keys: ["k1", "k2"]

lecture:
  subject: "Análise Criminal"
  default_minutes: 45

paths:
  runs: "roteiros_gerados"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-pro")
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v", cfg.Gemini.APIKeys)
	}
	if cfg.Lecture.DefaultMinutes != 45 {
		t.Errorf("DefaultMinutes = %v, want 45", cfg.Lecture.DefaultMinutes)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %v", cfg.Logging.Format)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", " a , ,b ")
	t.Setenv("GEMINI_MODEL", "gemini-x")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "lecture:\n  subject: x\npaths:\n  runs: r\ngemini:\n  api_keys: [\"file\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "a" || cfg.Gemini.APIKeys[1] != "b" {
		t.Errorf("APIKeys = %v", cfg.Gemini.APIKeys)
	}
	if cfg.Gemini.Model != "gemini-x" {
		t.Errorf("Model = %v", cfg.Gemini.Model)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

package config

import "fmt"

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Lecture     LectureConfig     `yaml:"lecture"`
	Extractor   ExtractorConfig   `yaml:"extractor"`
	Export      ExportConfig      `yaml:"export"`
	Paths       PathsConfig       `yaml:"paths"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model              string   `yaml:"model"`
	APIKeys            []string `yaml:"api_keys"`
	PlannerTemperature float32  `yaml:"planner_temperature"`
	WriterTemperature  float32  `yaml:"writer_temperature"`
}

// LectureConfig shapes the prompts sent to the model.
type LectureConfig struct {
	Subject             string `yaml:"subject"`
	Jurisdiction        string `yaml:"jurisdiction"`
	DefaultSlideSeconds int    `yaml:"default_slide_seconds"`
	DefaultMinutes      int    `yaml:"default_minutes"`
}

type ExtractorConfig struct {
	Backend       string `yaml:"backend"`
	PdftotextPath string `yaml:"pdftotext_path"`
	PdfinfoPath   string `yaml:"pdfinfo_path"`
}

// ExportConfig selects the typefaces used for PDF export. Empty font paths
// mean the built-in Helvetica.
type ExportConfig struct {
	Title        string `yaml:"title"`
	FontPath     string `yaml:"font_path"`
	BoldFontPath string `yaml:"bold_font_path"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Runs        string `yaml:"runs"`
	Exports     string `yaml:"exports"`
	Archived    string `yaml:"archived"`
	Checkpoints string `yaml:"checkpoints"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Runs == "" {
		return fmt.Errorf("paths.runs is required")
	}
	if c.Lecture.Subject == "" {
		return fmt.Errorf("lecture.subject is required")
	}
	switch c.Extractor.Backend {
	case "":
		c.Extractor.Backend = "native"
	case "native", "pdftotext":
	default:
		return fmt.Errorf("extractor.backend must be native or pdftotext, got %q", c.Extractor.Backend)
	}
	if c.Lecture.DefaultSlideSeconds < 0 || c.Lecture.DefaultMinutes < 0 {
		return fmt.Errorf("lecture durations must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PlannerTemperature == 0 {
		c.Gemini.PlannerTemperature = 0.2
	}
	if c.Gemini.WriterTemperature == 0 {
		c.Gemini.WriterTemperature = 0.7
	}
	if c.Lecture.Jurisdiction == "" {
		c.Lecture.Jurisdiction = "brasileira"
	}
	if c.Lecture.DefaultSlideSeconds == 0 {
		c.Lecture.DefaultSlideSeconds = 30
	}
	if c.Lecture.DefaultMinutes == 0 {
		c.Lecture.DefaultMinutes = 30
	}
	if c.Extractor.PdftotextPath == "" {
		c.Extractor.PdftotextPath = "pdftotext"
	}
	if c.Extractor.PdfinfoPath == "" {
		c.Extractor.PdfinfoPath = "pdfinfo"
	}
	if c.Export.Title == "" {
		c.Export.Title = "Roteiros de Aula – " + c.Lecture.Subject
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Exports == "" {
		c.Paths.Exports = "data/exports"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Checkpoints == "" {
		c.Paths.Checkpoints = "data/checkpoints.bolt"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 20
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

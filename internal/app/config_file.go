package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally onto the flag names.
type FileConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	OutputPDF string `yaml:"outputPDF"`

	Analysis struct {
		Depth         string `yaml:"depth"`
		SummaryLength int    `yaml:"summaryLength"`
		Lexicon       string `yaml:"lexicon"`
	} `yaml:"analysis"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	EnablePDF bool `yaml:"enablePDF"`
	Verbose   bool `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// Merge overlays file values onto cfg, keeping any value the caller
// already set through flags or environment. Flags win over the file.
func (fc FileConfig) Merge(cfg Config) Config {
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if cfg.Depth == "" {
		cfg.Depth = fc.Analysis.Depth
	}
	if cfg.SummaryLength == 0 {
		cfg.SummaryLength = fc.Analysis.SummaryLength
	}
	if cfg.LexiconPath == "" {
		cfg.LexiconPath = fc.Analysis.Lexicon
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.EnablePDF {
		cfg.EnablePDF = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	return cfg
}

package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosocial/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath     string
		outputPath    string
		outputPDFPath string
		configPath    string
		depth         string
		summaryLength int
		lexiconPath   string
		llmBaseURL    string
		llmModel      string
		llmKey        string
		enablePDF     bool
		verbose       bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to input YAML listing content items")
	flag.StringVar(&outputPath, "output", "", "Path to write the Markdown report")
	flag.StringVar(&outputPDFPath, "output.pdf", "", "Path to write the PDF report (defaults to the output path with .pdf)")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.StringVar(&depth, "analysis.depth", "", "Analysis depth: basic, sentiment or comprehensive (default)")
	flag.IntVar(&summaryLength, "max.summary", 0, "Summary character budget (default 150)")
	flag.StringVar(&lexiconPath, "lexicon", "", "Optional YAML file overriding sentiment word lists")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for embeddings")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Embedding model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the embedding backend")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render the report as PDF")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDFPath,
		Depth:         depth,
		SummaryLength: summaryLength,
		LexiconPath:   lexiconPath,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		EnablePDF:     enablePDF,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
		cfg = fc.Merge(cfg)
	}

	// Fall back to conventional defaults only after the file merge so the
	// file can supply them.
	if cfg.InputPath == "" {
		cfg.InputPath = "items.yaml"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "report.md"
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("analysis run failed")
	}
}

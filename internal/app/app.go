// Package app wires the analysis pipeline together: it loads the input
// items and configuration, runs the batch analysis, and writes the report.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/gosocial/internal/analyze"
	"github.com/hyperifyio/gosocial/internal/embedding"
	"github.com/hyperifyio/gosocial/internal/sentiment"
)

// Run executes one analysis pass end to end. It is the only function the
// command layer calls.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return fmt.Errorf("no input path configured")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return fmt.Errorf("no output path configured")
	}

	depth := analyze.ParseDepth(cfg.Depth)
	analyzer := &analyze.Analyzer{SummaryLength: cfg.SummaryLength}

	if cfg.LexiconPath != "" {
		lex, err := sentiment.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}
		analyzer.Lexicon = lex
		log.Debug().Str("path", cfg.LexiconPath).Msg("custom sentiment lexicon loaded")
	}

	if cfg.embeddingsConfigured() && depth == analyze.DepthComprehensive {
		analyzer.Embedder = newEmbedder(cfg)
		log.Debug().Str("model", cfg.LLMModel).Msg("embedding backend configured")
	}

	items, err := LoadItems(cfg.InputPath)
	if err != nil {
		return err
	}
	items = mergeSnapshots(items, filepath.Dir(cfg.InputPath))
	log.Info().Int("items", len(items)).Str("depth", string(depth)).Msg("starting analysis")

	analyses := analyzer.AnalyzeBatch(ctx, items, depth)

	report := RenderReport(analyses, depth, time.Now().UTC())
	if err := os.WriteFile(cfg.OutputPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", cfg.OutputPath).Msg("report written")

	if cfg.EnablePDF {
		pdfPath := cfg.OutputPDFPath
		if pdfPath == "" {
			pdfPath = strings.TrimSuffix(cfg.OutputPath, filepath.Ext(cfg.OutputPath)) + ".pdf"
		}
		if err := writeReportPDF(report, pdfPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", pdfPath).Msg("pdf written")
	}
	return nil
}

// newEmbedder builds the OpenAI-compatible embedding provider from the
// config. Any server speaking the embeddings endpoint works.
func newEmbedder(cfg Config) *embedding.OpenAIProvider {
	oc := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		oc.BaseURL = cfg.LLMBaseURL
	}
	return &embedding.OpenAIProvider{
		Inner: openai.NewClientWithConfig(oc),
		Model: cfg.LLMModel,
	}
}

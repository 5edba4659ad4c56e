package app

// Config carries everything a run needs. Flags, environment and the
// optional config file all funnel into this one struct; nothing else in
// the pipeline reads the environment.
type Config struct {
	// InputPath is the YAML file listing content items to analyze.
	InputPath string
	// OutputPath is where the Markdown report is written.
	OutputPath string
	// OutputPDFPath, when non-empty together with EnablePDF, is where the
	// PDF rendering of the report goes.
	OutputPDFPath string

	// Depth selects basic, sentiment or comprehensive analysis.
	Depth string
	// SummaryLength is the summary character budget. Non-positive uses
	// the summarizer default of 150.
	SummaryLength int
	// LexiconPath optionally overrides the sentiment word lists.
	LexiconPath string

	// LLMBaseURL, LLMModel and LLMAPIKey configure the OpenAI-compatible
	// embedding backend. Embeddings are skipped when no base URL and no
	// API key are set.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	EnablePDF bool
	Verbose   bool
}

// embeddingsConfigured reports whether the config names a usable
// embedding backend.
func (c Config) embeddingsConfigured() bool {
	return c.LLMBaseURL != "" || c.LLMAPIKey != ""
}

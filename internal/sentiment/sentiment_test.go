package sentiment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyze_EmptyInputIsNeutral(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		got := Analyze(in)
		if got.Label != Neutral {
			t.Fatalf("Analyze(%q).Label = %q, want %q", in, got.Label, Neutral)
		}
		if got.Score != 0.5 || got.Confidence != 0 {
			t.Fatalf("Analyze(%q) = %+v, want score 0.5 confidence 0", in, got)
		}
	}
}

func TestAnalyze_LabelFollowsHitBalance(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"positive", "This was an amazing and wonderful day, I love it", Positive},
		{"negative", "A terrible, horrible experience, total failure", Negative},
		{"balanced", "The good parts and the bad parts cancel out", Neutral},
		{"no indicators", "The meeting is scheduled on Thursday", Neutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.text)
			if got.Label != tc.want {
				t.Fatalf("label = %q, want %q (result %+v)", got.Label, tc.want, got)
			}
		})
	}
}

func TestAnalyze_ScoreSignMatchesLabel(t *testing.T) {
	pos := Analyze("amazing wonderful perfect show")
	if pos.Score <= 0 {
		t.Fatalf("positive text score = %v, want > 0", pos.Score)
	}
	neg := Analyze("awful boring useless show")
	if neg.Score >= 0 {
		t.Fatalf("negative text score = %v, want < 0", neg.Score)
	}
}

func TestAnalyze_CaseInsensitiveSubstringMatch(t *testing.T) {
	got := Analyze("Everyone LOVED it")
	if got.PositiveHits == 0 {
		t.Fatalf("expected 'love' to match inside 'LOVED': %+v", got)
	}
}

func TestAnalyze_ConfidenceBounds(t *testing.T) {
	texts := []string{
		"amazing", "amazing amazing amazing", "bad", "fine thanks",
		"love love love love love hate hate",
	}
	for _, text := range texts {
		got := Analyze(text)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", text, got.Confidence)
		}
	}
}

func TestAnalyze_EmojiAgreementBoostsConfidence(t *testing.T) {
	plain := Analyze("such a great and wonderful stream today really")
	boosted := Analyze("such a great and wonderful stream today 🎉")
	if boosted.Confidence < plain.Confidence {
		t.Fatalf("agreeing emoji lowered confidence: plain %v boosted %v",
			plain.Confidence, boosted.Confidence)
	}
	conflicted := Analyze("such a great and wonderful stream today 💔")
	if conflicted.Confidence >= plain.Confidence {
		t.Fatalf("disagreeing emoji did not lower confidence: plain %v conflicted %v",
			plain.Confidence, conflicted.Confidence)
	}
}

func TestPunctuationLabel(t *testing.T) {
	if got := punctuationLabel("so good!!! really!!!"); got != Positive {
		t.Fatalf("exclamations = %q, want %q", got, Positive)
	}
	if got := punctuationLabel("why? how? when? what?"); got != Negative {
		t.Fatalf("questions = %q, want %q", got, Negative)
	}
	if got := punctuationLabel("calm statement."); got != Neutral {
		t.Fatalf("plain text = %q, want %q", got, Neutral)
	}
}

func TestEmojiLabel(t *testing.T) {
	if got := emojiLabel("launch day 🔥🎉"); got != Positive {
		t.Fatalf("positive emoji = %q", got)
	}
	if got := emojiLabel("cancelled again 💔"); got != Negative {
		t.Fatalf("negative emoji = %q", got)
	}
	if got := emojiLabel("no emoji here"); got != Neutral {
		t.Fatalf("no emoji = %q", got)
	}
}

func TestLoadLexicon_OverridesLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := "positive:\n  - stonks\nnegative:\n  - rekt\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	got := lex.Analyze("absolutely stonks today")
	if got.Label != Positive {
		t.Fatalf("custom positive word not matched: %+v", got)
	}
	// Default words must not leak into a fully overridden list.
	if neutral := lex.Analyze("this was amazing"); neutral.Label != Neutral {
		t.Fatalf("default lexicon leaked into override: %+v", neutral)
	}
}

func TestLoadLexicon_MissingSectionFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte("positive:\n  - stonks\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if got := lex.Analyze("a truly terrible day"); got.Label != Negative {
		t.Fatalf("default negative list missing after partial override: %+v", got)
	}
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultLexicon_ReturnsCopy(t *testing.T) {
	lex := DefaultLexicon()
	lex.Positive[0] = "mutated"
	if defaultLexicon.Positive[0] == "mutated" {
		t.Fatalf("DefaultLexicon leaked internal state")
	}
}

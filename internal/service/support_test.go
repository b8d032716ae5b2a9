package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/llm"
)

func newTestSupportGenerator(c llm.CoarseClassifier, g llm.Generator) *SupportGenerator {
	params := llm.SamplingParams{MaxNewTokens: 60, Temperature: 0.9, TopK: 50, TopP: 0.95}
	return NewSupportGenerator(c, g, params, time.Second, nil)
}

func hasKnownLeadIn(s string) bool {
	return strings.HasPrefix(s, LeadInNegative) ||
		strings.HasPrefix(s, LeadInPositive) ||
		strings.HasPrefix(s, LeadInNeutral)
}

func TestGenerateSupportiveReplyLeadInPerLabel(t *testing.T) {
	cases := []struct {
		label llm.CoarseLabel
		want  string
	}{
		{llm.CoarseNegative, LeadInNegative},
		{llm.CoarsePositive, LeadInPositive},
		{llm.CoarseNeutral, LeadInNeutral},
	}

	for _, tc := range cases {
		t.Run(string(tc.label), func(t *testing.T) {
			gen := &llm.MockGenerator{Response: "You are doing your best and that truly counts."}
			sg := newTestSupportGenerator(&llm.MockCoarseClassifier{Label: tc.label}, gen)

			got := sg.GenerateSupportiveReply(context.Background(), "today was a lot")
			if !strings.HasPrefix(got, tc.want) {
				t.Fatalf("expected lead-in %q, got %q", tc.want, got)
			}
			if !strings.HasSuffix(got, gen.Response) {
				t.Fatalf("expected generated text to follow lead-in, got %q", got)
			}
		})
	}
}

func TestGenerateSupportiveReplyStripsEchoedPrompt(t *testing.T) {
	classifier := &llm.MockCoarseClassifier{Label: llm.CoarseNegative}
	gen := &llm.MockGenerator{}
	sg := newTestSupportGenerator(classifier, gen)

	// First call captures the constructed prompt, then the generator echoes it.
	sg.GenerateSupportiveReply(context.Background(), "I had a rough day")
	gen.Response = gen.LastPrompt + " You got through a hard day, and that matters a great deal."

	got := sg.GenerateSupportiveReply(context.Background(), "I had a rough day")
	if strings.Contains(got, gen.LastPrompt) {
		t.Fatalf("output must not contain the constructed prompt: %q", got)
	}
	if !strings.Contains(got, "You got through a hard day") {
		t.Fatalf("expected the continuation to survive prompt stripping: %q", got)
	}
}

func TestGenerateSupportiveReplyStripsRepeatedEcho(t *testing.T) {
	classifier := &llm.MockCoarseClassifier{Label: llm.CoarseNegative}
	gen := &llm.MockGenerator{}
	sg := newTestSupportGenerator(classifier, gen)

	sg.GenerateSupportiveReply(context.Background(), "I had a rough day")
	// Some models repeat the input sequence more than once.
	gen.Response = gen.LastPrompt + " You got through a hard day, and that matters. " + gen.LastPrompt

	got := sg.GenerateSupportiveReply(context.Background(), "I had a rough day")
	if strings.Contains(got, gen.LastPrompt) {
		t.Fatalf("output must not contain any copy of the constructed prompt: %q", got)
	}
	if !strings.Contains(got, "You got through a hard day") {
		t.Fatalf("expected the continuation to survive prompt stripping: %q", got)
	}
}

func TestGenerateSupportiveReplyQualityGate(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"empty output", ""},
		{"whitespace output", "   \n  "},
		{"five characters", "okay."},
		{"fourteen characters", "you can do it!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sg := newTestSupportGenerator(
				&llm.MockCoarseClassifier{Label: llm.CoarseNegative},
				&llm.MockGenerator{Response: tc.response},
			)

			got := sg.GenerateSupportiveReply(context.Background(), "I feel low")
			if !strings.HasSuffix(got, GenerationFallback) {
				t.Fatalf("expected fallback for %q, got %q", tc.response, got)
			}
			if !strings.HasPrefix(got, LeadInNegative) {
				t.Fatalf("lead-in must survive the quality gate: %q", got)
			}
		})
	}
}

func TestGenerateSupportiveReplyJustPassesGate(t *testing.T) {
	// 15 runes exactly should pass.
	sg := newTestSupportGenerator(
		&llm.MockCoarseClassifier{Label: llm.CoarseNeutral},
		&llm.MockGenerator{Response: "you matter here"},
	)

	got := sg.GenerateSupportiveReply(context.Background(), "hi")
	if !strings.HasSuffix(got, "you matter here") {
		t.Fatalf("15-rune output should pass the gate, got %q", got)
	}
}

func TestGenerateSupportiveReplyGeneratorFailure(t *testing.T) {
	sg := newTestSupportGenerator(
		&llm.MockCoarseClassifier{Label: llm.CoarsePositive},
		&llm.MockGenerator{Err: errors.New("model timeout")},
	)

	got := sg.GenerateSupportiveReply(context.Background(), "I got the job!")
	if got != LeadInPositive+GenerationFallback {
		t.Fatalf("expected lead-in + fallback, got %q", got)
	}
}

func TestGenerateSupportiveReplyAllCollaboratorsFail(t *testing.T) {
	sg := newTestSupportGenerator(
		&llm.MockCoarseClassifier{Err: errors.New("classifier down")},
		&llm.MockGenerator{Response: ""},
	)

	got := sg.GenerateSupportiveReply(context.Background(), "anyone there?")
	if got != LeadInNeutral+GenerationFallback {
		t.Fatalf("expected neutral lead-in + fallback, got %q", got)
	}
}

func TestGenerateSupportiveReplySamplingParamsForwarded(t *testing.T) {
	gen := &llm.MockGenerator{Response: "That sounds really heavy, I am glad you said it out loud."}
	sg := newTestSupportGenerator(&llm.MockCoarseClassifier{Label: llm.CoarseNeutral}, gen)

	sg.GenerateSupportiveReply(context.Background(), "so much to carry")
	if gen.LastParams.MaxNewTokens != 60 || gen.LastParams.TopK != 50 {
		t.Fatalf("sampling params not forwarded: %+v", gen.LastParams)
	}
	if !strings.Contains(gen.LastPrompt, "so much to carry") {
		t.Fatalf("prompt must embed the utterance: %q", gen.LastPrompt)
	}
	if !hasKnownLeadIn(sg.GenerateSupportiveReply(context.Background(), "again")) {
		t.Fatalf("every reply must start with a known lead-in")
	}
}

package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pinpoint"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements pinpoint.Summarizer at compile time.
var _ pinpoint.Summarizer = (*Summarizer)(nil)

// Summarizer implements pinpoint.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize generates a cited summary of the given page content.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (*pinpoint.Summary, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pinpoint.Errorf(pinpoint.EINVALID, "page content required")
	}

	prompt := BuildUserPrompt(title, content)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, pinpoint.Errorf(pinpoint.EINTERNAL, "gemini returned nil result")
	}

	return ParseSummary(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web pages. Write a short summary of the provided page. " +
					"After each key claim, add a line starting with 'REF: ' containing a short " +
					"verbatim passage from the page that supports the claim. Copy passages " +
					"exactly as they appear in the page text; never paraphrase inside REF lines.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page content.
func BuildUserPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	if title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Summarize this page with REF citations.")
	return sb.String()
}

// ParseSummary splits model output into summary text and cited references.
// Lines starting with "REF:" become references (verbatim passages, order
// preserved, duplicates dropped); everything else is summary text. Model
// output is untrusted: a REF line may quote text that never appears on the
// page, which simply resolves to no match downstream.
func ParseSummary(text string) *pinpoint.Summary {
	var (
		summary []string
		refs    []string
		seen    = make(map[string]bool)
	)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if ref, ok := strings.CutPrefix(trimmed, "REF:"); ok {
			ref = strings.Trim(strings.TrimSpace(ref), `"`)
			if ref != "" && !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
			continue
		}
		summary = append(summary, line)
	}
	return &pinpoint.Summary{
		Text:       strings.TrimSpace(strings.Join(summary, "\n")),
		References: refs,
	}
}

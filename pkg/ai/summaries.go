package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"everafterpress.ca/stationery/api/pkg/models"
)

const quoteSummarySystemPrompt = `You are a wedding stationery consultant writing on behalf of a custom invitation studio.
Given the line items of a saved quote, write a warm, concise summary email body that:
- Restates the couple's selections in plain language (material, shape, print finish, enclosures)
- Confirms the quantity and the estimated total exactly as given
- Mentions the next step (a deposit reserves their production slot)
Do not invent prices or options that are not in the provided data.
Keep it to 2-3 short paragraphs.`

// SummaryResponse wraps an AI-written quote summary alongside the
// deterministic fallback details, so callers always have something to
// render even when the AI layer is disabled or failing.
type SummaryResponse struct {
	Status      string            `json:"status"`
	QuoteNumber string            `json:"quote_number"`
	Details     map[string]string `json:"details"`
	Summary     string            `json:"summary,omitempty"`
	Error       string            `json:"error,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
	AIEnabled   bool              `json:"ai_enabled"`
}

// GenerateQuoteSummary produces the human-readable email body for a saved
// quote. The display details are the single source of truth handed to the
// model; the stored total is never recomputed here.
func GenerateQuoteSummary(ctx context.Context, quote *models.Quote) *SummaryResponse {
	response := &SummaryResponse{
		Status:      "success",
		QuoteNumber: quote.QuoteNumber,
		Details:     quote.DisplayDetails,
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
	}

	if !IsEnabled() {
		return response
	}

	summary, err := generateCompletion(ctx, quoteSummarySystemPrompt, formatQuotePrompt(quote))
	if err != nil {
		response.Error = "AI summary failed: " + err.Error()
		return response
	}
	response.Summary = summary
	return response
}

// formatQuotePrompt flattens the display details into a stable, sorted
// line list for the model.
func formatQuotePrompt(quote *models.Quote) string {
	labels := make([]string, 0, len(quote.DisplayDetails))
	for label := range quote.DisplayDetails {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s saved on %s\n", quote.QuoteNumber, quote.CreatedAt.Format("January 2, 2006"))
	for _, label := range labels {
		fmt.Fprintf(&b, "%s: %s\n", label, quote.DisplayDetails[label])
	}
	return b.String()
}

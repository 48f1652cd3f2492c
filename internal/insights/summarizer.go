// Package insights builds the CRM data digest and hands it to a
// generative-text collaborator for a paragraph of business insights. The
// collaborator is an opaque boundary: it returns prose or it fails, and a
// failure surfaces as a fixed fallback message, never an error to the
// end user.
package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/highshiftmedia/crmhub/internal/types"
)

// Summarizer defines the interface contract for the generative-text
// collaborator.
type Summarizer interface {
	Summarize(ctx context.Context, digest string) (string, error)
	ModelName() string
}

// ErrInsufficientData is returned when there is not enough CRM data to
// analyze. At least one client is required.
var ErrInsufficientData = errors.New("insufficient data: add at least one client")

// FallbackMessage is shown whenever the collaborator fails. The failure
// is logged; it is never retried and never propagated.
const FallbackMessage = "Failed to fetch AI insights. Please check your API key configuration."

// EmptyResponseMessage is shown when the collaborator succeeds but
// returns no text.
const EmptyResponseMessage = "No insights available at this moment."

// BuildDigest renders the fixed-format CRM summary passed to the
// collaborator as its entire input.
func BuildDigest(d *types.Dataset) string {
	var active int
	for _, c := range d.Clients {
		if c.Status == types.ClientActive {
			active++
		}
	}
	var contractTotal float64
	for _, c := range d.Clients {
		contractTotal += c.ContractValue
	}

	return fmt.Sprintf(
		"- Total Active Clients: %d\n"+
			"- Total Projects: %d\n"+
			"- Total Revenue Opportunity: $%s\n"+
			"- Current Campaigns: %d\n"+
			"- Staff Size: %d",
		active,
		len(d.Projects),
		strconv.FormatFloat(contractTotal, 'f', -1, 64),
		len(d.Campaigns),
		len(d.Employees),
	)
}

// Generator wraps a Summarizer with the digest construction and fallback
// policy.
type Generator struct {
	summarizer Summarizer
}

// NewGenerator creates a Generator backed by the given collaborator.
func NewGenerator(s Summarizer) *Generator {
	return &Generator{summarizer: s}
}

// Generate produces insights for a snapshot. It refuses with
// ErrInsufficientData when there are no clients; any collaborator failure
// yields FallbackMessage with a nil error. No collection is mutated.
func (g *Generator) Generate(ctx context.Context, d *types.Dataset) (string, error) {
	if len(d.Clients) == 0 {
		return "", ErrInsufficientData
	}

	text, err := g.summarizer.Summarize(ctx, BuildDigest(d))
	if err != nil {
		slog.Warn("insight generation failed",
			"model", g.summarizer.ModelName(),
			"error", err,
		)
		return FallbackMessage, nil
	}
	if text == "" {
		return EmptyResponseMessage, nil
	}
	return text, nil
}

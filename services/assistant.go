package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Assistant produces an itinerary answer for a free-text travel question.
type Assistant interface {
	Itinerary(ctx context.Context, query string) (*RAGResponse, error)
}

type namedAssistant struct {
	name string
	Assistant
}

// AssistantChain asks each tier in order and returns the first answer.
// A response carrying an application error still counts as an answer.
type AssistantChain struct {
	tiers  []namedAssistant
	logger *slog.Logger
}

func NewAssistantChain(logger *slog.Logger) *AssistantChain {
	return &AssistantChain{logger: logger.With("component", "assistant_chain")}
}

// Add appends a tier. Nil assistants are ignored so optional tiers can be
// passed unconditionally.
func (c *AssistantChain) Add(name string, a Assistant) *AssistantChain {
	if a != nil {
		c.tiers = append(c.tiers, namedAssistant{name: name, Assistant: a})
	}
	return c
}

func (c *AssistantChain) Len() int { return len(c.tiers) }

func (c *AssistantChain) Itinerary(ctx context.Context, query string) (*RAGResponse, error) {
	if len(c.tiers) == 0 {
		return nil, errors.New("no assistant configured")
	}

	var errs []error
	for _, tier := range c.tiers {
		resp, err := tier.Itinerary(ctx, query)
		if err == nil {
			c.logger.DebugContext(ctx, "assistant answered", "tier", tier.name)
			return resp, nil
		}
		c.logger.WarnContext(ctx, "assistant tier failed", "tier", tier.name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", tier.name, err))

		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

package services

import (
	"context"
	"errors"
	"testing"
)

type assistantFunc func(ctx context.Context, q string) (*RAGResponse, error)

func (f assistantFunc) Itinerary(ctx context.Context, q string) (*RAGResponse, error) {
	return f(ctx, q)
}

func TestAssistantChain(t *testing.T) {
	failing := assistantFunc(func(context.Context, string) (*RAGResponse, error) {
		return nil, ErrTransport
	})
	answering := assistantFunc(func(_ context.Context, q string) (*RAGResponse, error) {
		return &RAGResponse{Itinerary: "plan for " + q}, nil
	})

	t.Run("falls through to next tier", func(t *testing.T) {
		chain := NewAssistantChain(discardLogger()).Add("rag", failing).Add("llm", answering)
		resp, err := chain.Itinerary(context.Background(), "paris")
		if err != nil || resp.Itinerary != "plan for paris" {
			t.Errorf("Itinerary() = %+v, %v", resp, err)
		}
	})

	t.Run("nil tiers are skipped", func(t *testing.T) {
		chain := NewAssistantChain(discardLogger()).Add("rag", failing).Add("llm", nil)
		if chain.Len() != 1 {
			t.Fatalf("Len() = %d", chain.Len())
		}
		_, err := chain.Itinerary(context.Background(), "paris")
		if !errors.Is(err, ErrTransport) {
			t.Errorf("err = %v, want wrapped ErrTransport", err)
		}
	})

	t.Run("application error is an answer", func(t *testing.T) {
		withError := assistantFunc(func(context.Context, string) (*RAGResponse, error) {
			return &RAGResponse{Error: "index empty"}, nil
		})
		chain := NewAssistantChain(discardLogger()).Add("rag", withError).Add("llm", answering)
		resp, err := chain.Itinerary(context.Background(), "x")
		if err != nil || resp.Error != "index empty" {
			t.Errorf("Itinerary() = %+v, %v", resp, err)
		}
	})

	t.Run("empty chain", func(t *testing.T) {
		if _, err := NewAssistantChain(discardLogger()).Itinerary(context.Background(), "x"); err == nil {
			t.Error("expected error")
		}
	})
}

// Package chat runs the itinerary conversation of one visit.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"triptactix/services"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrBusy          = errors.New("a reply is still being generated")
	ErrUnknownAction = errors.New("unknown quick action")
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type Message struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Sender      Sender    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

type Snapshot struct {
	Messages        []Message `json:"messages"`
	Typing          bool      `json:"typing"`
	Connected       bool      `json:"connected"`
	ConnectionLabel string    `json:"connection_label"`
	QuickActions    []string  `json:"quick_actions"`
}

type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// Session is a single transcript. Only one reply may be outstanding at a time.
type Session struct {
	assistant services.Assistant
	logger    *slog.Logger
	now       func() time.Time

	mu        sync.Mutex
	messages  []Message
	typing    bool
	connected bool
}

func NewSession(assistant services.Assistant, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		assistant: assistant,
		logger:    opts.Logger.With("flow", "itinerary"),
		now:       opts.Now,
		connected: true,
	}
	s.messages = []Message{{
		ID:          uuid.NewString(),
		Content:     greeting,
		Sender:      SenderAI,
		Timestamp:   s.now(),
		Suggestions: append([]string(nil), greetingSuggestions...),
	}}
	return s
}

// Send appends content to the transcript, asks the assistant and appends its
// reply. When the assistant is unreachable a canned reply is used instead and
// the session is marked offline.
func (s *Session) Send(ctx context.Context, content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.typing {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: s.now(),
	})
	s.typing = true
	s.mu.Unlock()

	reply, connected := s.ask(ctx, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, reply)
	s.typing = false
	s.connected = connected
	return reply, nil
}

// SendQuickAction sends "Help me with <action>" for one of QuickActions.
func (s *Session) SendQuickAction(ctx context.Context, action string) (Message, error) {
	for _, a := range QuickActions {
		if strings.EqualFold(a, strings.TrimSpace(action)) {
			return s.Send(ctx, "Help me with "+strings.ToLower(a))
		}
	}
	return Message{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

func (s *Session) ask(ctx context.Context, content string) (Message, bool) {
	reply := Message{
		ID:          uuid.NewString(),
		Sender:      SenderAI,
		Suggestions: Suggestions(content),
	}

	resp, err := s.assistant.Itinerary(ctx, content)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "itinerary request failed, using offline reply", "error", err)
		reply.Content = offlinePrefix + CannedReply(content)
		reply.Timestamp = s.now()
		return reply, false
	case resp.Error != "":
		reply.Content = fmt.Sprintf("I encountered an issue: %s. Here's a general response based on your query: %s",
			resp.Error, CannedReply(content))
	case strings.TrimSpace(resp.Itinerary) == "":
		reply.Content = noItinerary
	default:
		reply.Content = resp.Itinerary
	}
	reply.Timestamp = s.now()
	return reply, true
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	label := connectedLabel
	if !s.connected {
		label = offlineLabel
	}
	return Snapshot{
		Messages:        s.transcriptLocked(),
		Typing:          s.typing,
		Connected:       s.connected,
		ConnectionLabel: label,
		QuickActions:    append([]string(nil), QuickActions...),
	}
}

// Transcript returns a copy of every message so far.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcriptLocked()
}

func (s *Session) transcriptLocked() []Message {
	out := make([]Message, len(s.messages))
	for i, m := range s.messages {
		m.Suggestions = append([]string(nil), m.Suggestions...)
		out[i] = m
	}
	return out
}

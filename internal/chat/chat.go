// Package chat implements the streaming tutor conversation. Each question is
// sent as a single turn with a mode-specific system instruction; the model is
// not given prior history, which keeps answers self-contained and cheap.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
)

// Mode selects how much the tutor gives away.
type Mode string

const (
	// Gentle nudges with hints and leading questions, never the answer.
	Gentle Mode = "gentle"
	// Detailed walks through the full solution step by step.
	Detailed Mode = "detailed"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one entry in the conversation view.
type Message struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
}

func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// defaultAttachmentPrompt stands in when the learner sends a file with no
// accompanying text.
const defaultAttachmentPrompt = "Hãy giải bài tập trong hình/file này giúp mình."

// Service streams tutor answers and marks daily activity.
type Service struct {
	backend llm.Provider
	stats   *profile.Service
}

func NewService(backend llm.Provider, stats *profile.Service) *Service {
	return &Service{backend: backend, stats: stats}
}

// Ask streams the tutor's answer to a question. Asking counts as daily
// activity for the streak. Connection failures surface as in-stream notices,
// not errors, so the returned stream is always usable.
func (s *Service) Ask(ctx context.Context, prompt string, mode Mode, attachment *llm.Attachment) (llm.Stream, error) {
	if prompt == "" && attachment != nil {
		prompt = defaultAttachmentPrompt
	}

	if s.stats != nil {
		// Activity marking failure must not block the conversation.
		_ = s.stats.MarkActivity()
	}

	ctx = llm.WithPurpose(ctx, "chat")
	return s.backend.GenerateStream(ctx, llm.Request{
		System: buildInstruction(mode, attachment != nil),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Attachment:  attachment,
		Temperature: 0.7,
	})
}

package llm

import (
	"context"
	"encoding/json"
	"io"
)

// Provider is the core abstraction for LLM interaction. A Provider is bound
// to exactly one model identifier; fallback across identifiers is layered on
// top (see Fallback).
type Provider interface {
	// Generate sends a prompt to the LLM and waits for the full response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema; the response Content is the validated
	// JSON. When Schema is nil, Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// GenerateStream opens a token stream for the request. An error is
	// returned only when the stream could not be established; once a Stream
	// is handed out, failures surface through Stream.Recv.
	GenerateStream(ctx context.Context, req Request) (Stream, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Stream is a finite, non-restartable sequence of text fragments.
type Stream interface {
	// Recv returns the next text fragment. It returns io.EOF when the
	// stream has ended normally, or another error if it was interrupted.
	Recv() (string, error)

	// Close releases the underlying connection. Safe to call more than once.
	Close()
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system instruction. Sets the tutor's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// this contains one user message.
	Messages []Message

	// Attachment is an optional binary part (photo of an exercise, a PDF
	// page). When present it is placed ahead of the text content in the
	// request payload, per the backend's expected ordering.
	Attachment *Attachment

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is the raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	// Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Attachment is a base64-encoded binary part for document/image understanding.
type Attachment struct {
	MIMEType string
	// Data is the base64-encoded payload, encoded by the caller.
	Data string
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as schema name for OpenAI).
	// Kebab-case, e.g. "science-quiz".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any

	// Check optionally validates constraints the schema grammar cannot
	// express (cross-field rules like "the correct answer appears among
	// the options"). A non-nil error is treated exactly like a schema
	// validation failure, so the fallback loop moves to the next model.
	Check func(raw json.RawMessage) error
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON value. Otherwise it holds the
	// raw text bytes.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Text returns the response content as plain text.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// pullStream adapts a vendor recv function to the Stream interface, with
// support for a fragment buffered during connection establishment.
type pullStream struct {
	recv     func() (string, error)
	close    func()
	buffered []string
	done     bool
}

// openPullStream eagerly pulls the first fragment so that connection-phase
// failures are observable before any fragment reaches the caller. Empty
// fragments are skipped.
func openPullStream(recv func() (string, error), close func()) (Stream, error) {
	s := &pullStream{recv: recv, close: close}
	for {
		frag, err := recv()
		if err == io.EOF {
			s.done = true
			return s, nil
		}
		if err != nil {
			close()
			return nil, err
		}
		if frag != "" {
			s.buffered = append(s.buffered, frag)
			return s, nil
		}
	}
}

func (s *pullStream) Recv() (string, error) {
	if len(s.buffered) > 0 {
		frag := s.buffered[0]
		s.buffered = s.buffered[1:]
		return frag, nil
	}
	if s.done {
		return "", io.EOF
	}
	for {
		frag, err := s.recv()
		if err != nil {
			s.done = true
			s.close()
			return "", err
		}
		if frag != "" {
			return frag, nil
		}
	}
}

func (s *pullStream) Close() {
	if !s.done {
		s.done = true
		s.close()
	}
}

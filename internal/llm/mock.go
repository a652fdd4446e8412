package llm

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Fragments, when set, is served by GenerateStream instead of Content.
	Fragments []string
	// StreamErr, when set, interrupts the stream after Fragments.
	StreamErr error
}

// MockProvider is a deterministic Provider for testing. It returns canned
// responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	model     string
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{model: "mock", responses: responses}
}

// NewNamedMock creates a MockProvider reporting the given model identifier.
func NewNamedMock(model string, responses ...MockResponse) *MockProvider {
	return &MockProvider{model: model, responses: responses}
}

func (m *MockProvider) next(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return MockResponse{}, false
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, true
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, ok := m.next(req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content: resp.Content,
		Usage:   resp.Usage,
		Model:   m.model,
	}, nil
}

// GenerateStream serves the next canned response as a stream. A canned Err
// fails connection establishment; StreamErr interrupts mid-stream.
func (m *MockProvider) GenerateStream(_ context.Context, req Request) (Stream, error) {
	resp, ok := m.next(req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &mockStream{fragments: resp.Fragments, finalErr: resp.StreamErr}, nil
}

// ModelID returns the configured mock model identifier.
func (m *MockProvider) ModelID() string {
	return m.model
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate/GenerateStream calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

type mockStream struct {
	fragments []string
	finalErr  error
}

func (s *mockStream) Recv() (string, error) {
	if len(s.fragments) > 0 {
		frag := s.fragments[0]
		s.fragments = s.fragments[1:]
		return frag, nil
	}
	if s.finalErr != nil {
		err := s.finalErr
		s.finalErr = nil
		return "", err
	}
	return "", io.EOF
}

func (s *mockStream) Close() {}

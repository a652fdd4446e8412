package llm

import (
	"context"
	"io"
)

// streamErrorNotice is appended in-band when a stream breaks after partial
// delivery. The chat UI must always have something to show, so stream
// failures never surface as errors.
const streamErrorNotice = "\n[Kết nối bị gián đoạn. Vui lòng thử lại]"

// Fallback tries a preference-ordered list of candidate providers, moving to
// the next on any failure. Attempts are strictly sequential: at most one
// request is outstanding per logical call, so a slow model is never raced
// against a cheaper one.
type Fallback struct {
	candidates []Provider
}

// NewFallback creates a Fallback over the given candidate providers.
// The order is significant: the preferred model comes first.
func NewFallback(candidates ...Provider) *Fallback {
	return &Fallback{candidates: candidates}
}

// CandidateOrder constructs the try order for a preferred model: the
// preferred identifier first, then all other available identifiers in their
// fixed order, each appearing exactly once.
func CandidateOrder(preferred string, available []string) []string {
	order := []string{preferred}
	for _, m := range available {
		if m != preferred {
			order = append(order, m)
		}
	}
	return order
}

// Generate tries each candidate in order and returns the first success.
// Parse and schema-validation failures count as candidate failures. A
// candidate's response is validated here against the request schema,
// including its semantic Check, so a well-formed but wrong answer from one
// model still falls through to the next. When every candidate fails, an
// *ExhaustedError carrying the attempt log and the last failure is returned.
func (f *Fallback) Generate(ctx context.Context, req Request) (*Response, error) {
	var attempts []Attempt

	for _, p := range f.candidates {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			if err = validateResponse(req.Schema, resp.Content); err == nil {
				return resp, nil
			}
		}
		attempts = append(attempts, Attempt{Model: p.ModelID(), Err: err})

		if ctx.Err() != nil {
			break
		}
	}

	var last error
	if len(attempts) > 0 {
		last = attempts[len(attempts)-1].Err
	}
	return nil, &ExhaustedError{Attempts: attempts, Last: last}
}

// GenerateStream opens a token stream, falling back across candidates only
// during connection establishment. Once a candidate has delivered a fragment
// it owns the rest of the exchange: a partially-delivered stream cannot be
// rewound, and restarting on another model would produce duplicate or
// inconsistent partial answers.
//
// GenerateStream never returns an error. If no candidate connects, the
// returned stream yields a single terminal fragment describing the failure.
// A mid-stream interruption appends one diagnostic fragment and ends the
// stream.
func (f *Fallback) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	var lastErr error

	for _, p := range f.candidates {
		s, err := p.GenerateStream(ctx, req)
		if err == nil {
			return &guardedStream{inner: s}, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	notice := "Lỗi kết nối API. Vui lòng kiểm tra API Key hoặc thử lại sau."
	if lastErr != nil {
		notice = "Lỗi kết nối API: " + lastErr.Error() + ". Vui lòng kiểm tra API Key hoặc thử lại sau."
	}
	return &noticeStream{notice: notice}, nil
}

// ModelID returns the preferred candidate's identifier.
func (f *Fallback) ModelID() string {
	if len(f.candidates) == 0 {
		return ""
	}
	return f.candidates[0].ModelID()
}

// guardedStream converts a mid-stream failure into one in-band diagnostic
// fragment followed by a clean end of stream.
type guardedStream struct {
	inner    Stream
	notified bool
}

func (g *guardedStream) Recv() (string, error) {
	if g.notified {
		return "", io.EOF
	}
	frag, err := g.inner.Recv()
	if err == nil || err == io.EOF {
		return frag, err
	}
	g.notified = true
	return streamErrorNotice, nil
}

func (g *guardedStream) Close() {
	g.inner.Close()
}

// noticeStream yields a single terminal fragment and then ends.
type noticeStream struct {
	notice string
	sent   bool
}

func (n *noticeStream) Recv() (string, error) {
	if n.sent {
		return "", io.EOF
	}
	n.sent = true
	return n.notice, nil
}

func (n *noticeStream) Close() {}

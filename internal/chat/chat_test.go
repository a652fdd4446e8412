package chat

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/store"
)

func drain(t *testing.T, s llm.Stream) string {
	t.Helper()
	var b strings.Builder
	for {
		frag, err := s.Recv()
		if err == io.EOF {
			return b.String()
		}
		if err != nil {
			t.Fatalf("stream error: %v", err)
		}
		b.WriteString(frag)
	}
}

func TestAsk_StreamsAnswer(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{Fragments: []string{"Gợi ý: ", "dùng $v = s/t$"}})
	svc := NewService(mock, nil)

	stream, err := svc.Ask(context.Background(), "Tính tốc độ?", Detailed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := drain(t, stream); got != "Gợi ý: dùng $v = s/t$" {
		t.Fatalf("unexpected answer: %q", got)
	}
}

func TestAsk_ModeShapesInstruction(t *testing.T) {
	mock := llm.NewNamedMock("m",
		llm.MockResponse{Fragments: []string{"a"}},
		llm.MockResponse{Fragments: []string{"b"}},
	)
	svc := NewService(mock, nil)

	svc.Ask(context.Background(), "câu hỏi", Gentle, nil)
	svc.Ask(context.Background(), "câu hỏi", Detailed, nil)

	gentle := mock.Calls[0].System
	detailed := mock.Calls[1].System
	if !strings.Contains(gentle, "KHÔNG đưa ra đáp án") {
		t.Fatal("gentle mode must withhold the answer")
	}
	if !strings.Contains(detailed, "từng bước") {
		t.Fatal("detailed mode must walk through steps")
	}
}

func TestAsk_AttachmentDefaultsPromptAndInstruction(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{Fragments: []string{"ok"}})
	svc := NewService(mock, nil)

	att := &llm.Attachment{MIMEType: "image/png", Data: "aGVsbG8="}
	if _, err := svc.Ask(context.Background(), "", Detailed, att); err != nil {
		t.Fatal(err)
	}

	req := mock.Calls[0]
	if req.Messages[0].Content != defaultAttachmentPrompt {
		t.Fatalf("empty prompt with attachment should use the default, got %q", req.Messages[0].Content)
	}
	if req.Attachment == nil {
		t.Fatal("attachment must be forwarded")
	}
	if !strings.Contains(req.System, "HÌNH ẢNH") {
		t.Fatal("attachment should add image-analysis guidance")
	}
}

func TestAsk_MarksDailyActivity(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{Fragments: []string{"ok"}})
	stats := profile.NewService(store.NewMemKV())
	svc := NewService(mock, stats)

	if _, err := svc.Ask(context.Background(), "hỏi", Gentle, nil); err != nil {
		t.Fatal(err)
	}
	if stats.Stats().Streak != 1 {
		t.Fatal("asking the tutor should mark the streak")
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage(SenderUser, "xin chào")
	if m.ID == "" || m.Sender != SenderUser || m.Text != "xin chào" {
		t.Fatalf("unexpected message: %+v", m)
	}
}

package chat

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tranhn/khtn/internal/chat"
	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/layout"
)

// streamStartedMsg is sent once the tutor stream is open (or failed to open).
type streamStartedMsg struct {
	Stream llm.Stream
	Err    error
}

// fragmentMsg carries one streamed text fragment.
type fragmentMsg struct {
	Text string
}

// streamDoneMsg is sent when the stream ends.
type streamDoneMsg struct{}

// attachmentLoadedMsg is sent when a staged file has been read and encoded.
type attachmentLoadedMsg struct {
	Attachment *llm.Attachment
	Name       string
	Err        error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// mimeByExt maps supported attachment extensions to MIME types.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

// ChatScreen is the AI tutor conversation view.
type ChatScreen struct {
	svc  *chat.Service
	mode chat.Mode

	messages  []chat.Message
	input     components.TextInput
	stream    llm.Stream
	partial   string
	streaming bool
	spinner   int
	status    string

	attachMode bool
	attachment *llm.Attachment
	attachName string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.InputCapturer = (*ChatScreen)(nil)

// New creates a ChatScreen in gentle mode.
func New(svc *chat.Service) *ChatScreen {
	return &ChatScreen{
		svc:   svc,
		mode:  chat.Gentle,
		input: components.NewTextInput("Hỏi gia sư AI...", false, 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Gia sư AI"
}

// CapturingInput keeps Esc inside the screen while the learner is mid-typing
// or mid-stream; Esc then clears instead of leaving the conversation.
func (c *ChatScreen) CapturingInput() bool {
	return c.streaming || c.attachMode || c.input.Value() != ""
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Gửi"},
		{Key: "Tab", Description: "Chế độ: " + modeLabel(c.mode)},
	}
	if c.attachMode {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Đính kèm tệp"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+F", Description: "Đính kèm"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quay lại"})
	return hints
}

func modeLabel(m chat.Mode) string {
	if m == chat.Detailed {
		return "Chi tiết"
	}
	return "Gợi mở"
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streamStartedMsg:
		return c.handleStreamStarted(msg)

	case fragmentMsg:
		c.partial += msg.Text
		return c, readFragment(c.stream)

	case streamDoneMsg:
		c.streaming = false
		if c.partial != "" {
			c.messages = append(c.messages, chat.NewMessage(chat.SenderAI, c.partial))
		}
		c.partial = ""
		c.stream = nil
		return c, nil

	case attachmentLoadedMsg:
		c.attachMode = false
		if msg.Err != nil {
			c.status = "Không đọc được tệp: " + msg.Err.Error()
			return c, nil
		}
		c.attachment = msg.Attachment
		c.attachName = msg.Name
		c.status = ""
		c.input = components.NewTextInput("Hỏi gia sư AI...", false, 500)
		return c, c.input.Init()

	case spinnerTickMsg:
		if !c.streaming {
			return c, nil
		}
		c.spinner++
		return c, spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.streaming {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.streaming {
		return c, nil
	}

	switch msg.String() {
	case "esc":
		c.attachMode = false
		c.input = components.NewTextInput("Hỏi gia sư AI...", false, 500)
		return c, c.input.Init()

	case "tab":
		if c.mode == chat.Gentle {
			c.mode = chat.Detailed
		} else {
			c.mode = chat.Gentle
		}
		return c, nil

	case "ctrl+f":
		c.attachMode = !c.attachMode
		if c.attachMode {
			c.input = components.NewTextInput("Đường dẫn tệp (ảnh hoặc PDF)...", false, 300)
		} else {
			c.input = components.NewTextInput("Hỏi gia sư AI...", false, 500)
		}
		return c, c.input.Init()

	case "ctrl+x":
		c.attachment = nil
		c.attachName = ""
		return c, nil

	case "enter":
		if c.attachMode {
			path := strings.TrimSpace(c.input.Value())
			if path == "" {
				return c, nil
			}
			return c, loadAttachment(path)
		}
		return c.send()
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send posts the typed prompt and opens the tutor stream.
func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	prompt := strings.TrimSpace(c.input.Value())
	if prompt == "" && c.attachment == nil {
		return c, nil
	}

	display := prompt
	if c.attachName != "" {
		display = strings.TrimSpace(prompt + "\n[Đính kèm: " + c.attachName + "]")
	}
	c.messages = append(c.messages, chat.NewMessage(chat.SenderUser, display))

	attachment := c.attachment
	c.attachment = nil
	c.attachName = ""
	c.status = ""
	c.streaming = true
	c.partial = ""
	c.input = components.NewTextInput("Hỏi gia sư AI...", false, 500)

	svc, mode := c.svc, c.mode
	ask := func() tea.Msg {
		stream, err := svc.Ask(context.Background(), prompt, mode, attachment)
		return streamStartedMsg{Stream: stream, Err: err}
	}

	return c, tea.Batch(ask, spinnerTick(), c.input.Init())
}

func (c *ChatScreen) handleStreamStarted(msg streamStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		c.streaming = false
		text := "Chưa kết nối được gia sư AI: " + msg.Err.Error()
		var missing *llm.ErrMissingAPIKey
		if errors.As(msg.Err, &missing) {
			text = "Chưa cấu hình API Key. Vào Cài đặt để thêm khóa Gemini."
		}
		c.messages = append(c.messages, chat.NewMessage(chat.SenderAI, text))
		return c, nil
	}
	c.stream = msg.Stream
	return c, readFragment(msg.Stream)
}

// readFragment pulls the next fragment off the stream.
func readFragment(stream llm.Stream) tea.Cmd {
	return func() tea.Msg {
		text, err := stream.Recv()
		if err == io.EOF {
			return streamDoneMsg{}
		}
		if err != nil {
			// The orchestrator reports interruptions in-band, so any
			// error here ends the stream.
			return streamDoneMsg{}
		}
		return fragmentMsg{Text: text}
	}
}

// loadAttachment reads and base64-encodes the file at path.
func loadAttachment(path string) tea.Cmd {
	return func() tea.Msg {
		ext := strings.ToLower(filepath.Ext(path))
		mime, ok := mimeByExt[ext]
		if !ok {
			return attachmentLoadedMsg{Err: fmt.Errorf("định dạng %q không được hỗ trợ", ext)}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return attachmentLoadedMsg{Err: err}
		}
		return attachmentLoadedMsg{
			Attachment: &llm.Attachment{
				MIMEType: mime,
				Data:     base64.StdEncoding.EncodeToString(data),
			},
			Name: filepath.Base(path),
		}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

package quiz

import (
	"time"

	"github.com/tranhn/khtn/internal/quiz"
)

// questionsReadyMsg is sent when the question set has been generated.
type questionsReadyMsg struct {
	Questions []quiz.Question
	Err       error
}

// timerTickMsg is sent every second to update the elapsed time display.
type timerTickMsg time.Time

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

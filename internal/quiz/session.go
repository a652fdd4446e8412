package quiz

import "time"

// Session walks a learner through a generated question set one step at a
// time. A question must be confirmed before the session can advance, and the
// answer locks once confirmed. Finishing transitions to the result exactly
// once per run; Retry starts a fresh run over the same questions.
type Session struct {
	Lesson string
	Grade  string

	questions []Question
	step      int
	answers   []string
	confirmed []bool
	startedAt time.Time
	finished  bool

	now func() time.Time
}

// Summary captures the outcome of a finished run.
type Summary struct {
	Lesson  string
	Grade   string
	Score   int
	Total   int
	Elapsed time.Duration
}

func NewSession(lesson, grade string, questions []Question) *Session {
	s := &Session{
		Lesson:    lesson,
		Grade:     grade,
		questions: questions,
		answers:   make([]string, len(questions)),
		confirmed: make([]bool, len(questions)),
		now:       time.Now,
	}
	s.startedAt = s.now()
	return s
}

// Step returns the zero-based index of the current question.
func (s *Session) Step() int { return s.step }

// Len returns the number of questions in the set.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the question at the current step.
func (s *Session) Current() Question { return s.questions[s.step] }

// Questions returns the full set, for the result review.
func (s *Session) Questions() []Question { return s.questions }

// Finished reports whether the run has reached its result.
func (s *Session) Finished() bool { return s.finished }

// CurrentAnswer returns the recorded answer for the current step.
func (s *Session) CurrentAnswer() string { return s.answers[s.step] }

// AnswerAt returns the recorded answer for step i.
func (s *Session) AnswerAt(i int) string { return s.answers[i] }

// Confirmed reports whether the current step's answer is locked in.
func (s *Session) Confirmed() bool { return s.confirmed[s.step] }

// Answer records an answer for the current question. Multiple choice and
// true/false confirm immediately; short answers stay editable until Confirm.
// Once a step is confirmed further answers are ignored.
func (s *Session) Answer(answer string) {
	if s.finished || s.confirmed[s.step] {
		return
	}
	s.answers[s.step] = answer

	switch s.questions[s.step].Type {
	case MultipleChoice, TrueFalse:
		s.confirmed[s.step] = true
	}
}

// Confirm locks in a short answer. An empty answer is silently ignored so the
// learner cannot submit a blank.
func (s *Session) Confirm() {
	if s.finished || s.confirmed[s.step] {
		return
	}
	if s.answers[s.step] == "" {
		return
	}
	s.confirmed[s.step] = true
}

// CurrentCorrect reports whether the confirmed answer at the current step is
// right. Meaningful only after confirmation.
func (s *Session) CurrentCorrect() bool {
	return IsCorrect(s.answers[s.step], s.questions[s.step].CorrectAnswer)
}

// Next advances past a confirmed question. On the last question it finishes
// the run and returns the summary; otherwise the summary is zero and done is
// false. An unconfirmed step does not advance.
func (s *Session) Next() (Summary, bool) {
	if s.finished || !s.confirmed[s.step] {
		return Summary{}, false
	}
	if s.step < len(s.questions)-1 {
		s.step++
		return Summary{}, false
	}

	s.finished = true
	return Summary{
		Lesson:  s.Lesson,
		Grade:   s.Grade,
		Score:   s.Score(),
		Total:   len(s.questions),
		Elapsed: s.now().Sub(s.startedAt),
	}, true
}

// Score counts correct answers across all recorded steps.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.questions {
		if IsCorrect(s.answers[i], q.CorrectAnswer) {
			score++
		}
	}
	return score
}

// Elapsed returns time since the current run started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// Retry restarts the session over the same question set. Answers, confirmed
// steps and the timer reset; the questions do not regenerate.
func (s *Session) Retry() {
	s.step = 0
	s.answers = make([]string, len(s.questions))
	s.confirmed = make([]bool, len(s.questions))
	s.startedAt = s.now()
	s.finished = false
}

package profile

import (
	"fmt"
	"math"
	"time"
)

// dateLayout keys streak tracking by calendar date, not by 24-hour windows.
const dateLayout = "2006-01-02"

// Stats accumulates study activity. Time fields are in minutes to match the
// stored record; the JSON keys predate this program and stay as they are.
type Stats struct {
	Solved          int     `json:"solved"`
	TotalScore      float64 `json:"totalScore"`
	ExerciseMinutes float64 `json:"exerciseTime"`
	TheoryMinutes   float64 `json:"theoryTime"`
	QuestionsDone   int     `json:"questionsDone"`
	Streak          int     `json:"streak"`
	LastActiveDate  string  `json:"lastActiveDate"`
}

// AverageScore is the mean quiz score on a 10-point scale, one decimal.
func (st Stats) AverageScore() float64 {
	if st.Solved == 0 {
		return 0
	}
	return math.Round(st.TotalScore/float64(st.Solved)*10) / 10
}

// CombinedMinutes is total study time across theory and exercises.
func (st Stats) CombinedMinutes() float64 {
	return st.ExerciseMinutes + st.TheoryMinutes
}

// markActivity advances the daily streak. Activity on consecutive calendar
// days increments it, a gap resets it to 1, repeated activity within one day
// leaves it unchanged.
func (st *Stats) markActivity(now time.Time) {
	today := now.Format(dateLayout)
	if st.LastActiveDate == today {
		if st.Streak == 0 {
			st.Streak = 1
		}
		return
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if st.LastActiveDate == yesterday {
		st.Streak++
	} else {
		st.Streak = 1
	}
	st.LastActiveDate = today
}

// Stats returns the stored statistics, or a zero record if none exist yet.
func (s *Service) Stats() Stats {
	var st Stats
	if ok, err := s.kv.Get(statsKey, &st); err != nil || !ok {
		return Stats{}
	}
	return st
}

func (s *Service) saveStats(st Stats) error {
	if err := s.kv.Set(statsKey, st); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	s.notify()
	return nil
}

// RecordQuizResult folds one finished quiz into the stats: one more solved
// set, the normalized 10-point score added to the running total, elapsed time
// and question count accumulated, and the streak marked for today.
func (s *Service) RecordQuizResult(score, total int, elapsed time.Duration) error {
	st := s.Stats()
	st.markActivity(s.now())

	st.Solved++
	if total > 0 {
		st.TotalScore += float64(score) / float64(total) * 10
	}
	st.ExerciseMinutes += elapsed.Minutes()
	st.QuestionsDone += total

	return s.saveStats(st)
}

// RecordTheoryTime adds reading time spent in a theory view and marks the
// streak, since reading counts as daily activity.
func (s *Service) RecordTheoryTime(elapsed time.Duration) error {
	st := s.Stats()
	st.markActivity(s.now())
	st.TheoryMinutes += elapsed.Minutes()
	return s.saveStats(st)
}

// MarkActivity records bare daily activity, used by the chat tutor where
// there is no duration worth accumulating.
func (s *Service) MarkActivity() error {
	st := s.Stats()
	st.markActivity(s.now())
	return s.saveStats(st)
}

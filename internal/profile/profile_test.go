package profile

import (
	"testing"
	"time"

	"github.com/tranhn/khtn/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemKV())
}

func TestProfile_Defaults(t *testing.T) {
	s := newTestService()
	p := s.Profile()
	if p.Name != "Nguyễn Minh Anh" {
		t.Fatalf("unexpected default name: %s", p.Name)
	}
	if p.Gender != Male || p.Avatar == "" {
		t.Fatal("default profile should be male with an avatar")
	}
	if !p.Notifications {
		t.Fatal("notifications should default on")
	}
}

func TestProfile_UpdatePersists(t *testing.T) {
	s := newTestService()
	name := "Trần Thu Hà"
	class := "Lớp 9A2"
	if _, err := s.Update(Patch{Name: &name, Class: &class}); err != nil {
		t.Fatal(err)
	}

	p := s.Profile()
	if p.Name != name || p.Class != class {
		t.Fatalf("update not persisted: %+v", p)
	}
	// Untouched fields keep their defaults.
	if p.School != "THCS Chu Văn An" {
		t.Fatalf("unexpected school: %s", p.School)
	}
}

func TestProfile_GenderSwitchSwapsAvatar(t *testing.T) {
	s := newTestService()
	before := s.Profile().Avatar

	g := Female
	updated, err := s.Update(Patch{Gender: &g})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Avatar == before {
		t.Fatal("avatar should change with gender")
	}

	// Updating other fields keeps the chosen avatar.
	name := "Lê Mai"
	updated, err = s.Update(Patch{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Avatar != femaleAvatar {
		t.Fatal("avatar should survive unrelated updates")
	}
}

func TestProfile_SubscribeAndUnsubscribe(t *testing.T) {
	s := newTestService()
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	name := "A"
	s.Update(Patch{Name: &name})
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}

	unsubscribe()
	s.Update(Patch{Name: &name})
	if calls != 1 {
		t.Fatalf("expected no notification after unsubscribe, got %d", calls)
	}
}

func TestStats_RecordQuizResult(t *testing.T) {
	s := newTestService()
	s.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }

	if err := s.RecordQuizResult(12, 15, 6*time.Minute); err != nil {
		t.Fatal(err)
	}

	st := s.Stats()
	if st.Solved != 1 || st.QuestionsDone != 15 {
		t.Fatalf("unexpected counters: %+v", st)
	}
	if st.TotalScore != 8 { // 12/15 * 10
		t.Fatalf("expected normalized score 8, got %v", st.TotalScore)
	}
	if st.ExerciseMinutes != 6 {
		t.Fatalf("expected 6 exercise minutes, got %v", st.ExerciseMinutes)
	}
	if st.Streak != 1 {
		t.Fatalf("first activity should start the streak, got %d", st.Streak)
	}
}

func TestStats_StreakConsecutiveDays(t *testing.T) {
	s := newTestService()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	s.RecordQuizResult(10, 15, time.Minute)

	// Same day: unchanged.
	day = day.Add(5 * time.Hour)
	s.RecordQuizResult(10, 15, time.Minute)
	if got := s.Stats().Streak; got != 1 {
		t.Fatalf("same-day activity must not grow streak, got %d", got)
	}

	// Next day: +1.
	day = day.AddDate(0, 0, 1)
	s.RecordQuizResult(10, 15, time.Minute)
	if got := s.Stats().Streak; got != 2 {
		t.Fatalf("next-day activity should grow streak, got %d", got)
	}

	// Two-day gap: reset to 1.
	day = day.AddDate(0, 0, 2)
	s.RecordQuizResult(10, 15, time.Minute)
	if got := s.Stats().Streak; got != 1 {
		t.Fatalf("gap should reset streak, got %d", got)
	}
}

func TestStats_TheoryTimeCountsAsActivity(t *testing.T) {
	s := newTestService()
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	if err := s.RecordTheoryTime(90 * time.Second); err != nil {
		t.Fatal(err)
	}
	st := s.Stats()
	if st.TheoryMinutes != 1.5 {
		t.Fatalf("expected 1.5 theory minutes, got %v", st.TheoryMinutes)
	}
	if st.Streak != 1 {
		t.Fatal("theory reading should mark the streak")
	}
	if st.Solved != 0 {
		t.Fatal("theory reading must not count as a solved quiz")
	}
}

func TestStats_AverageScore(t *testing.T) {
	st := Stats{Solved: 3, TotalScore: 25}
	if got := st.AverageScore(); got != 8.3 {
		t.Fatalf("expected 8.3, got %v", got)
	}
	if (Stats{}).AverageScore() != 0 {
		t.Fatal("zero solved should average 0")
	}
}

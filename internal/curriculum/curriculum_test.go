package curriculum

import "testing"

func TestGradesCovered(t *testing.T) {
	for _, g := range Grades() {
		chapters := Chapters(g)
		if len(chapters) == 0 {
			t.Errorf("grade %s has no chapters", g)
		}
		for _, ch := range chapters {
			if ch.ID == "" || ch.Title == "" {
				t.Errorf("grade %s has a chapter with empty id or title", g)
			}
			if len(ch.Lessons) == 0 {
				t.Errorf("grade %s chapter %s has no lessons", g, ch.ID)
			}
		}
	}
}

func TestChapters_UnknownGrade(t *testing.T) {
	if got := Chapters("12"); got != nil {
		t.Fatalf("expected nil for unknown grade, got %d chapters", len(got))
	}
}

func TestFindLesson(t *testing.T) {
	l, ok := FindLesson("8", 16)
	if !ok {
		t.Fatal("lesson 16 of grade 8 should exist")
	}
	if l.Title != "Lực đẩy Archimedes" {
		t.Fatalf("unexpected title: %s", l.Title)
	}

	if _, ok := FindLesson("6", 999); ok {
		t.Fatal("lesson 999 should not exist")
	}
}

func TestLessonIDsUniquePerGrade(t *testing.T) {
	for _, g := range Grades() {
		seen := map[int]string{}
		for _, ch := range Chapters(g) {
			for _, l := range ch.Lessons {
				if prev, dup := seen[l.ID]; dup {
					t.Errorf("grade %s: lesson id %d in both %q and %q", g, l.ID, prev, ch.ID)
				}
				seen[l.ID] = ch.ID
			}
		}
	}
}

package services

import (
	"testing"
	"time"
)

func newTestAssessment() (*AssessmentService, *stubStore) {
	store := newStubStore()
	svc := NewAssessmentService(store)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestAssessmentFullRun(t *testing.T) {
	svc, _ := newTestAssessment()
	answers := []int{0, 1, 2, 3, 0, 1, 2, 3, 0}

	for i, score := range answers {
		result, err := svc.Answer(i, score)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i < QuestionCount-1 && result != nil {
			t.Fatalf("answer %d: got result before completion", i)
		}
		if i == QuestionCount-1 {
			if result == nil {
				t.Fatalf("final answer returned no result")
			}
			if result.TotalScore != 12 {
				t.Fatalf("total score = %d, want 12", result.TotalScore)
			}
			if result.CompletedAt.IsZero() {
				t.Fatalf("completed result missing timestamp")
			}
		}
	}

	// The machine restarts immediately: next run starts at question 0 with
	// clean slots.
	if current, _ := svc.Progress(); current != 1 {
		t.Fatalf("progress after completion = %d, want 1", current)
	}
	if _, err := svc.Answer(0, 3); err != nil {
		t.Fatalf("restarted run rejected first answer: %v", err)
	}
}

func TestAssessmentRejectsWrongQuestion(t *testing.T) {
	svc, store := newTestAssessment()

	if _, err := svc.Answer(3, 1); err == nil {
		t.Fatalf("expected rejection for non-current question")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalidTransition {
		t.Fatalf("error = %v, want invalid_transition", err)
	}
	if store.current != 0 {
		t.Fatalf("state advanced on rejected answer")
	}
}

func TestAssessmentRejectsOutOfRangeScore(t *testing.T) {
	svc, store := newTestAssessment()

	for _, score := range []int{-1, 4, 100} {
		if _, err := svc.Answer(0, score); err == nil {
			t.Fatalf("score %d accepted", score)
		} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
			t.Fatalf("score %d: error = %v, want invalid", score, err)
		}
	}
	if store.current != 0 || store.slots[0] != 0 {
		t.Fatalf("rejected scores mutated the run")
	}
}

func TestAssessmentNewRunOverwritesResult(t *testing.T) {
	svc, _ := newTestAssessment()

	complete := func(score int) {
		for i := 0; i < QuestionCount; i++ {
			if _, err := svc.Answer(i, score); err != nil {
				t.Fatalf("answer %d: %v", i, err)
			}
		}
	}

	complete(3)
	if got := svc.Latest().TotalScore; got != 27 {
		t.Fatalf("first run total = %d, want 27", got)
	}
	complete(0)
	if got := svc.Latest().TotalScore; got != 0 {
		t.Fatalf("latest result not overwritten, total = %d", got)
	}
}

func TestSeverityLabel(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "Minimal symptoms"},
		{4, "Minimal symptoms"},
		{5, "Mild symptoms"},
		{9, "Mild symptoms"},
		{10, "Moderate symptoms"},
		{14, "Moderate symptoms"},
		{15, "Moderately severe symptoms"},
		{19, "Moderately severe symptoms"},
		{20, "Severe symptoms"},
		{27, "Severe symptoms"},
	}
	for _, c := range cases {
		if got := SeverityLabel(c.total); got != c.want {
			t.Fatalf("SeverityLabel(%d) = %q, want %q", c.total, got, c.want)
		}
	}
}

func TestAssessmentQuestionMetadata(t *testing.T) {
	if len(PHQ9Questions) != QuestionCount {
		t.Fatalf("question count = %d, want %d", len(PHQ9Questions), QuestionCount)
	}
	if len(PHQ9Options) != ScoreMax+1 {
		t.Fatalf("option count = %d, want %d", len(PHQ9Options), ScoreMax+1)
	}
	svc, _ := newTestAssessment()
	idx, q := svc.CurrentQuestion()
	if idx != 0 || q != PHQ9Questions[0] {
		t.Fatalf("initial question = (%d, %q)", idx, q)
	}
}

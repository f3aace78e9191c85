package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/crypticpeace/fyp/internal/models"
)

// PHQ9Questions are the nine fixed screening items, answered in order.
var PHQ9Questions = []string{
	"Little interest or pleasure in doing things?",
	"Feeling down, depressed, or hopeless?",
	"Trouble falling or staying asleep, or sleeping too much?",
	"Feeling tired or having little energy?",
	"Poor appetite or overeating?",
	"Feeling bad about yourself or that you are a failure?",
	"Trouble concentrating on things?",
	"Moving or speaking slowly, or being fidgety or restless?",
	"Thoughts that you would be better off dead or hurting yourself?",
}

// PHQ9Options are the answer labels; the option index is the score.
var PHQ9Options = []string{
	"Not at all",
	"Several days",
	"More than half the days",
	"Nearly every day",
}

const (
	QuestionCount = 9
	ScoreMin      = 0
	ScoreMax      = 3
)

// AssessmentStore holds the in-progress run and the latest completed result.
type AssessmentStore interface {
	GetAssessmentRun() (current int, slots []int)
	SetAssessmentRun(current int, slots []int)
	GetLatestAssessment() *models.AssessmentResult
	SetLatestAssessment(r *models.AssessmentResult)
}

// AssessmentService drives the fixed 9-question sequence. Answers must
// arrive for the current question only; completing question 9 emits a
// result and immediately starts a fresh run.
type AssessmentService struct {
	mu    sync.Mutex
	store AssessmentStore
	now   func() time.Time
}

func NewAssessmentService(store AssessmentStore) *AssessmentService {
	return &AssessmentService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Answer records a score for the given question. The question index must
// match the machine's current position and the score must be in [0,3];
// otherwise the run is left untouched. Completing the final question
// returns the new result, any earlier answer returns nil.
func (s *AssessmentService) Answer(question, score int) (*models.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, slots := s.store.GetAssessmentRun()
	if question != current {
		return nil, NewInvalidTransitionError(fmt.Sprintf("expected answer for question %d, got %d", current, question))
	}
	if score < ScoreMin || score > ScoreMax {
		return nil, NewInvalidError("score must be between 0 and 3")
	}

	slots[question] = score
	if question < QuestionCount-1 {
		s.store.SetAssessmentRun(question+1, slots)
		return nil, nil
	}

	total := 0
	for _, v := range slots {
		total += v
	}
	result := &models.AssessmentResult{TotalScore: total, CompletedAt: s.now()}
	s.store.SetLatestAssessment(result)
	s.store.SetAssessmentRun(0, make([]int, QuestionCount))
	return result, nil
}

// Progress reports the 1-based position of the current question.
func (s *AssessmentService) Progress() (current, total int) {
	c, _ := s.store.GetAssessmentRun()
	return c + 1, QuestionCount
}

// CurrentQuestion returns the index and text of the question awaiting an
// answer.
func (s *AssessmentService) CurrentQuestion() (int, string) {
	c, _ := s.store.GetAssessmentRun()
	return c, PHQ9Questions[c]
}

// Latest returns the most recent completed result, or nil.
func (s *AssessmentService) Latest() *models.AssessmentResult {
	return s.store.GetLatestAssessment()
}

// SeverityLabel maps a PHQ-9 total to the standard severity band.
func SeverityLabel(total int) string {
	switch {
	case total <= 4:
		return "Minimal symptoms"
	case total <= 9:
		return "Mild symptoms"
	case total <= 14:
		return "Moderate symptoms"
	case total <= 19:
		return "Moderately severe symptoms"
	default:
		return "Severe symptoms"
	}
}

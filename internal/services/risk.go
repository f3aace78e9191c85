package services

import "github.com/crypticpeace/fyp/internal/models"

// Risk weighting constants. The formula is a heuristic for steering in-app
// recommendations, not a diagnostic instrument.
const (
	neutralMood         = 3.0
	assessmentFactor    = 0.5
	lowEngagementCutoff = 3
	lowEngagementWeight = 2.0
	moderateThreshold   = 8.0
	highThreshold       = 15.0
)

// RiskReport breaks the classification down into its weighted inputs.
type RiskReport struct {
	AvgMood          float64           `json:"avg_mood"`
	MoodWeight       float64           `json:"mood_weight"`
	AssessmentWeight float64           `json:"assessment_weight"`
	EngagementWeight float64           `json:"engagement_weight"`
	Total            float64           `json:"total"`
	Status           models.RiskStatus `json:"status"`
	Message          string            `json:"message"`
}

var statusMessages = map[models.RiskStatus]string{
	models.RiskLow:      "You seem to be doing well! Keep up the good habits.",
	models.RiskModerate: "You might benefit from some additional support.",
	models.RiskHigh:     "Please consider speaking with a counselor soon.",
}

// ComputeRisk derives a RiskStatus from the current ledgers and the latest
// assessment result. It is pure: identical inputs always yield the same
// classification, and nothing is cached.
func ComputeRisk(moods []models.MoodEntry, latest *models.AssessmentResult, journalCount int) models.RiskStatus {
	return ComputeRiskReport(moods, latest, journalCount).Status
}

// ComputeRiskReport is ComputeRisk with the intermediate weights exposed
// for the status screen.
func ComputeRiskReport(moods []models.MoodEntry, latest *models.AssessmentResult, journalCount int) RiskReport {
	// Entries are validated at insertion, but the engine filters again
	// rather than trusting upstream silently.
	sum, n := 0, 0
	for _, e := range moods {
		if e.Mood >= MoodMin && e.Mood <= MoodMax {
			sum += e.Mood
			n++
		}
	}
	avg := neutralMood
	if n > 0 {
		avg = float64(sum) / float64(n)
	}

	r := RiskReport{AvgMood: avg}
	r.MoodWeight = (float64(MoodMax) - avg) * 2 // lower mood, higher weight
	if latest != nil {
		r.AssessmentWeight = float64(latest.TotalScore) * assessmentFactor
	}
	if journalCount < lowEngagementCutoff {
		r.EngagementWeight = lowEngagementWeight
	}
	r.Total = r.MoodWeight + r.AssessmentWeight + r.EngagementWeight

	switch {
	case r.Total >= highThreshold:
		r.Status = models.RiskHigh
	case r.Total >= moderateThreshold:
		r.Status = models.RiskModerate
	default:
		r.Status = models.RiskLow
	}
	r.Message = statusMessages[r.Status]
	return r
}

// RiskStore is the read-only view the risk service needs.
type RiskStore interface {
	ListMoods() []models.MoodEntry
	GetLatestAssessment() *models.AssessmentResult
	ListJournal() []models.JournalEntry
}

// RiskService recomputes the classification from current session state on
// every call.
type RiskService struct {
	store RiskStore
}

func NewRiskService(store RiskStore) *RiskService {
	return &RiskService{store: store}
}

func (s *RiskService) Report() RiskReport {
	return ComputeRiskReport(s.store.ListMoods(), s.store.GetLatestAssessment(), len(s.store.ListJournal()))
}

func (s *RiskService) Status() models.RiskStatus {
	return s.Report().Status
}

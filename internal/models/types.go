package models

import "time"

// Profile is the one-time identity record collected at onboarding.
// It is write-once for the session; there is no edit flow.
type Profile struct {
	Name       string    `json:"name"`
	RollNumber string    `json:"roll_number"`
	Class      string    `json:"class"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// MoodEntry is a single self-reported mood sample, 1 (very sad) to 5
// (very happy). Entries are append-only and never mutated.
type MoodEntry struct {
	Mood       int       `json:"mood"`
	Notes      string    `json:"notes,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// JournalEntry is a free-text journal record. Content is always non-empty;
// Title falls back to a placeholder when the user leaves it blank.
type JournalEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CapturedAt time.Time `json:"captured_at"`
}

// AssessmentResult is the outcome of one completed PHQ-9 run.
// Only the most recent result is retained.
type AssessmentResult struct {
	TotalScore  int       `json:"total_score"`
	CompletedAt time.Time `json:"completed_at"`
}

// RiskStatus is the tri-level classification derived from the mood ledger,
// the latest assessment result, and journaling engagement. It is never
// stored; callers recompute it from current state.
type RiskStatus string

const (
	RiskLow      RiskStatus = "low"
	RiskModerate RiskStatus = "moderate"
	RiskHigh     RiskStatus = "high"
)

// Screen identifies the active screen of the session.
type Screen string

const (
	ScreenOnboarding   Screen = "onboarding"
	ScreenMain         Screen = "main"
	ScreenMoodTracking Screen = "mood_tracking"
	ScreenJournaling   Screen = "journaling"
	ScreenAssessment   Screen = "assessment"
	ScreenSupportCall  Screen = "support_call"
)

// Tab identifies the active tab while on the main screen.
type Tab string

const (
	TabHome       Tab = "home"
	TabRiskStatus Tab = "risk_status"
	TabCounselor  Tab = "counselor"
)

// NavigationState is the current position of the session router.
// Tab is meaningful only when Screen is ScreenMain.
type NavigationState struct {
	Screen Screen `json:"screen"`
	Tab    Tab    `json:"tab,omitempty"`
}

// ChatMessage is one entry in the counselor chat log.
type ChatMessage struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"` // "user" or "counselor"
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

const (
	SenderUser      = "user"
	SenderCounselor = "counselor"
)

// CounselorProfile is the fixed card shown on the counselor tab.
type CounselorProfile struct {
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Availability   string  `json:"availability"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	Experience     string  `json:"experience"`
}

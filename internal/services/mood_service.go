package services

import (
	"time"

	"github.com/crypticpeace/fyp/internal/models"
)

const (
	MoodMin = 1
	MoodMax = 5
)

// MoodLabels and MoodEmojis index mood values 1..5 for display.
var (
	MoodLabels = []string{"Very Sad", "Sad", "Neutral", "Happy", "Very Happy"}
	MoodEmojis = []string{"😢", "😕", "😐", "😊", "😄"}
)

// MoodStore is the append-only mood ledger owned by the session.
type MoodStore interface {
	AppendMood(e models.MoodEntry)
	ListMoods() []models.MoodEntry
}

type MoodService struct {
	store MoodStore
	now   func() time.Time
}

func NewMoodService(store MoodStore) *MoodService {
	return &MoodService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Record appends a mood sample. Values outside [1,5] are rejected and the
// ledger is left untouched.
func (s *MoodService) Record(value int, notes string) (*models.MoodEntry, error) {
	if value < MoodMin || value > MoodMax {
		return nil, NewInvalidError("mood must be between 1 and 5")
	}
	e := models.MoodEntry{Mood: value, Notes: notes, CapturedAt: s.now()}
	s.store.AppendMood(e)
	return &e, nil
}

// Recent returns up to n entries in reverse-chronological order. The result
// is a fresh slice; mutating it cannot reach the ledger.
func (s *MoodService) Recent(n int) []models.MoodEntry {
	all := s.store.ListMoods()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	out := make([]models.MoodEntry, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}

func (s *MoodService) Count() int { return len(s.store.ListMoods()) }

// Average is the arithmetic mean over the whole ledger, or 0 when empty.
// The original app labelled this "last 7 days" but never applied a time
// window; the whole-history behavior is kept.
func (s *MoodService) Average() float64 {
	all := s.store.ListMoods()
	if len(all) == 0 {
		return 0
	}
	sum := 0
	for _, e := range all {
		sum += e.Mood
	}
	return float64(sum) / float64(len(all))
}

// Latest returns the most recent entry, or nil when the ledger is empty.
func (s *MoodService) Latest() *models.MoodEntry {
	all := s.store.ListMoods()
	if len(all) == 0 {
		return nil
	}
	e := all[len(all)-1]
	return &e
}

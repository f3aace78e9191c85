package services

import (
	"time"

	"github.com/crypticpeace/fyp/internal/models"
)

// stubStore is an in-memory test double implementing every store interface
// the services need. It mirrors the session store's copy-on-read behavior
// where tests depend on it, without any locking.
type stubStore struct {
	profile *models.Profile
	moods   []models.MoodEntry
	journal []models.JournalEntry

	current int
	slots   []int
	latest  *models.AssessmentResult

	chat []models.ChatMessage

	callActive bool
	callStart  time.Time

	nav models.NavigationState
}

func newStubStore() *stubStore {
	return &stubStore{
		slots: make([]int, QuestionCount),
		nav:   models.NavigationState{Screen: models.ScreenOnboarding},
	}
}

func (s *stubStore) GetProfile() *models.Profile { return s.profile }
func (s *stubStore) SetProfile(p *models.Profile) {
	s.profile = p
	if s.nav.Screen == models.ScreenOnboarding {
		s.nav = models.NavigationState{Screen: models.ScreenMain, Tab: models.TabHome}
	}
}

func (s *stubStore) AppendMood(e models.MoodEntry) { s.moods = append(s.moods, e) }
func (s *stubStore) ListMoods() []models.MoodEntry {
	return append([]models.MoodEntry(nil), s.moods...)
}

func (s *stubStore) AppendJournal(e models.JournalEntry) { s.journal = append(s.journal, e) }
func (s *stubStore) ListJournal() []models.JournalEntry {
	return append([]models.JournalEntry(nil), s.journal...)
}

func (s *stubStore) GetAssessmentRun() (int, []int) {
	return s.current, append([]int(nil), s.slots...)
}
func (s *stubStore) SetAssessmentRun(current int, slots []int) {
	s.current = current
	s.slots = append([]int(nil), slots...)
}
func (s *stubStore) GetLatestAssessment() *models.AssessmentResult  { return s.latest }
func (s *stubStore) SetLatestAssessment(r *models.AssessmentResult) { s.latest = r }

func (s *stubStore) AppendChatMessage(m models.ChatMessage) { s.chat = append(s.chat, m) }
func (s *stubStore) ListChatMessages() []models.ChatMessage {
	return append([]models.ChatMessage(nil), s.chat...)
}

func (s *stubStore) GetCall() (bool, time.Time) { return s.callActive, s.callStart }
func (s *stubStore) SetCall(active bool, startedAt time.Time) {
	s.callActive = active
	s.callStart = startedAt
}

func (s *stubStore) GetNavigation() models.NavigationState   { return s.nav }
func (s *stubStore) SetNavigation(st models.NavigationState) { s.nav = st }

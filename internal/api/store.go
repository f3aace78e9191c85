package api

import (
	"sync"
	"time"

	"github.com/crypticpeace/fyp/internal/models"
	"github.com/crypticpeace/fyp/internal/services"
)

// sessionStore owns every piece of mutable session state. Services receive
// it through narrow interfaces and the presentation layer only ever sees
// copies, so the ledgers cannot be mutated from outside.
type sessionStore struct {
	mu sync.RWMutex

	profile *models.Profile
	moods   []models.MoodEntry
	journal []models.JournalEntry

	assessmentCurrent int
	assessmentSlots   []int
	latestAssessment  *models.AssessmentResult

	chat []models.ChatMessage

	callActive    bool
	callStartedAt time.Time

	nav models.NavigationState
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		assessmentSlots: make([]int, services.QuestionCount),
		nav:             models.NavigationState{Screen: models.ScreenOnboarding},
	}
}

func (s *sessionStore) GetProfile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// SetProfile stores the onboarding record and leaves the onboarding screen
// in the same mutation, so the profile and the router position never
// disagree.
func (s *sessionStore) SetProfile(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.profile = &cp
	if s.nav.Screen == models.ScreenOnboarding {
		s.nav = models.NavigationState{Screen: models.ScreenMain, Tab: models.TabHome}
	}
}

func (s *sessionStore) AppendMood(e models.MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods = append(s.moods, e)
}

func (s *sessionStore) ListMoods() []models.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MoodEntry(nil), s.moods...)
}

func (s *sessionStore) AppendJournal(e models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = append(s.journal, e)
}

func (s *sessionStore) ListJournal() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.JournalEntry(nil), s.journal...)
}

func (s *sessionStore) GetAssessmentRun() (int, []int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assessmentCurrent, append([]int(nil), s.assessmentSlots...)
}

func (s *sessionStore) SetAssessmentRun(current int, slots []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessmentCurrent = current
	s.assessmentSlots = append([]int(nil), slots...)
}

func (s *sessionStore) GetLatestAssessment() *models.AssessmentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latestAssessment == nil {
		return nil
	}
	r := *s.latestAssessment
	return &r
}

func (s *sessionStore) SetLatestAssessment(r *models.AssessmentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.latestAssessment = &cp
}

func (s *sessionStore) AppendChatMessage(m models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, m)
}

func (s *sessionStore) ListChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChatMessage(nil), s.chat...)
}

func (s *sessionStore) GetCall() (bool, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.callActive, s.callStartedAt
}

func (s *sessionStore) SetCall(active bool, startedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callActive = active
	s.callStartedAt = startedAt
}

func (s *sessionStore) GetNavigation() models.NavigationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav
}

func (s *sessionStore) SetNavigation(st models.NavigationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = st
}

package services

import (
	"strings"
	"time"

	"github.com/crypticpeace/fyp/internal/models"
	"github.com/google/uuid"
)

// DefaultJournalTitle is used when the user leaves the title blank.
const DefaultJournalTitle = "Journal Entry"

// JournalStore is the append-only journal ledger owned by the session.
type JournalStore interface {
	AppendJournal(e models.JournalEntry)
	ListJournal() []models.JournalEntry
}

type JournalService struct {
	store JournalStore
	now   func() time.Time
	idGen func() string
}

func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: shortID,
	}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Record appends a journal entry. Whitespace-only content is rejected;
// a blank title falls back to DefaultJournalTitle. IDs are unique for the
// session.
func (s *JournalService) Record(title, content string) (*models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewInvalidError("journal content must not be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultJournalTitle
	}
	e := models.JournalEntry{
		ID:         s.idGen(),
		Title:      title,
		Content:    content,
		CapturedAt: s.now(),
	}
	s.store.AppendJournal(e)
	return &e, nil
}

// Recent returns up to n entries in reverse-chronological order.
func (s *JournalService) Recent(n int) []models.JournalEntry {
	all := s.store.ListJournal()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	out := make([]models.JournalEntry, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}

func (s *JournalService) Count() int { return len(s.store.ListJournal()) }

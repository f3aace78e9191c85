package services

import (
	"strings"
	"time"

	"github.com/crypticpeace/fyp/internal/models"
)

// ProfileStore abstracts the session state touched by onboarding.
type ProfileStore interface {
	GetProfile() *models.Profile
	// SetProfile stores the profile and moves navigation out of onboarding
	// in one step, so no observer ever sees a profile with the session
	// still parked on the onboarding screen.
	SetProfile(p *models.Profile)
}

// Departments offered by the onboarding form. Informational only; free-text
// departments are accepted.
var Departments = []string{
	"Computer Science",
	"Electronics",
	"Mechanical",
	"Civil",
	"Chemical",
}

// ProfileInput mirrors the onboarding form fields before validation.
type ProfileInput struct {
	Name       string
	RollNumber string
	Class      string
	Department string
}

type ProfileService struct {
	store ProfileStore
	now   func() time.Time
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates and stores the one-time profile. All four fields must be
// non-blank after trimming; a failed submit stores nothing. A second submit
// is rejected because the profile is write-once for the session.
func (s *ProfileService) Submit(in ProfileInput) (*models.Profile, error) {
	if s.store.GetProfile() != nil {
		return nil, NewConflictError("profile already submitted")
	}
	p := &models.Profile{
		Name:       strings.TrimSpace(in.Name),
		RollNumber: strings.TrimSpace(in.RollNumber),
		Class:      strings.TrimSpace(in.Class),
		Department: strings.TrimSpace(in.Department),
	}
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.RollNumber == "" {
		missing = append(missing, "roll_number")
	}
	if p.Class == "" {
		missing = append(missing, "class")
	}
	if p.Department == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		return nil, NewInvalidError("missing required fields: " + strings.Join(missing, ", "))
	}
	p.CreatedAt = s.now()
	s.store.SetProfile(p)
	return p, nil
}

// Get returns the stored profile, or a not-found error before onboarding
// has completed.
func (s *ProfileService) Get() (*models.Profile, error) {
	p := s.store.GetProfile()
	if p == nil {
		return nil, NewNotFoundError("profile not submitted yet")
	}
	return p, nil
}

package services

import (
	"fmt"
	"time"
)

// CallStore holds the support call state for the session.
type CallStore interface {
	GetCall() (active bool, startedAt time.Time)
	SetCall(active bool, startedAt time.Time)
}

// CallService models the anonymous support call. The duration counts up
// from the start instant while the call is active and drops to zero the
// moment the call ends.
type CallService struct {
	store CallStore
	now   func() time.Time
}

func NewCallService(store CallStore) *CallService {
	return &CallService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Start begins a call with the duration at zero.
func (s *CallService) Start() error {
	if active, _ := s.store.GetCall(); active {
		return NewConflictError("call already in progress")
	}
	s.store.SetCall(true, s.now())
	return nil
}

// End stops the active call and resets the duration immediately.
func (s *CallService) End() error {
	if active, _ := s.store.GetCall(); !active {
		return NewInvalidTransitionError("no call in progress")
	}
	s.store.SetCall(false, time.Time{})
	return nil
}

func (s *CallService) Active() bool {
	active, _ := s.store.GetCall()
	return active
}

// Duration is the elapsed time of the active call, or zero when inactive.
func (s *CallService) Duration() time.Duration {
	active, startedAt := s.store.GetCall()
	if !active {
		return 0
	}
	return s.now().Sub(startedAt)
}

// FormatDuration renders a duration as zero-padded mm:ss.
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

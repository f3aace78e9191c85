package services

import (
	"fmt"

	"github.com/crypticpeace/fyp/internal/models"
)

// NavigationStore holds the router position for the session.
type NavigationStore interface {
	GetNavigation() models.NavigationState
	SetNavigation(st models.NavigationState)
}

// detailScreens are reachable only via feature selection from the home tab,
// and each leads back only to main(home).
var detailScreens = map[models.Screen]bool{
	models.ScreenMoodTracking: true,
	models.ScreenJournaling:   true,
	models.ScreenAssessment:   true,
	models.ScreenSupportCall:  true,
}

var validTabs = map[models.Tab]bool{
	models.TabHome:       true,
	models.TabRiskStatus: true,
	models.TabCounselor:  true,
}

// NavigationService is a finite-state router over the session's screens.
// Transitions outside the table are rejected and leave the position
// unchanged; no state is terminal.
type NavigationService struct {
	store NavigationStore
}

func NewNavigationService(store NavigationStore) *NavigationService {
	return &NavigationService{store: store}
}

func (s *NavigationService) Current() models.NavigationState {
	return s.store.GetNavigation()
}

// NavigateTo applies a user navigation intent. The transition table:
//
//	onboarding   -> (nothing; only a successful profile submit leaves it)
//	main(home)   -> mood_tracking | journaling | assessment | support_call
//	main(x)      -> main(y)            (tab switch)
//	detail screen -> main(home)        (explicit back)
func (s *NavigationService) NavigateTo(screen models.Screen, tab models.Tab) (models.NavigationState, error) {
	cur := s.store.GetNavigation()

	switch cur.Screen {
	case models.ScreenOnboarding:
		return cur, NewInvalidTransitionError("complete onboarding first")

	case models.ScreenMain:
		if screen == models.ScreenMain {
			if !validTabs[tab] {
				return cur, NewInvalidError(fmt.Sprintf("unknown tab %q", tab))
			}
			next := models.NavigationState{Screen: models.ScreenMain, Tab: tab}
			s.store.SetNavigation(next)
			return next, nil
		}
		if detailScreens[screen] {
			if cur.Tab != models.TabHome {
				return cur, NewInvalidTransitionError("feature selection is only available from the home tab")
			}
			next := models.NavigationState{Screen: screen}
			s.store.SetNavigation(next)
			return next, nil
		}
		return cur, NewInvalidTransitionError(fmt.Sprintf("cannot navigate from %s to %s", cur.Screen, screen))

	default:
		// Detail screens only go back to main(home).
		if screen == models.ScreenMain && (tab == "" || tab == models.TabHome) {
			next := models.NavigationState{Screen: models.ScreenMain, Tab: models.TabHome}
			s.store.SetNavigation(next)
			return next, nil
		}
		return cur, NewInvalidTransitionError(fmt.Sprintf("cannot navigate from %s to %s", cur.Screen, screen))
	}
}

// Back returns from a detail screen to main(home).
func (s *NavigationService) Back() (models.NavigationState, error) {
	return s.NavigateTo(models.ScreenMain, models.TabHome)
}

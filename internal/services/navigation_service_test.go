package services

import (
	"testing"

	"github.com/crypticpeace/fyp/internal/models"
)

func navAt(screen models.Screen, tab models.Tab) (*NavigationService, *stubStore) {
	store := newStubStore()
	store.nav = models.NavigationState{Screen: screen, Tab: tab}
	return NewNavigationService(store), store
}

func TestNavigationBlockedDuringOnboarding(t *testing.T) {
	svc, store := navAt(models.ScreenOnboarding, "")

	targets := []struct {
		screen models.Screen
		tab    models.Tab
	}{
		{models.ScreenMoodTracking, ""},
		{models.ScreenJournaling, ""},
		{models.ScreenAssessment, ""},
		{models.ScreenSupportCall, ""},
		{models.ScreenMain, models.TabHome},
		{models.ScreenMain, models.TabCounselor},
	}
	for _, tg := range targets {
		_, err := svc.NavigateTo(tg.screen, tg.tab)
		if err == nil {
			t.Fatalf("navigation to %s allowed during onboarding", tg.screen)
		}
		if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalidTransition {
			t.Fatalf("error = %v, want invalid_transition", err)
		}
	}
	if store.nav.Screen != models.ScreenOnboarding {
		t.Fatalf("state moved: %+v", store.nav)
	}
}

func TestNavigationFeatureSelectionFromHome(t *testing.T) {
	for _, target := range []models.Screen{
		models.ScreenMoodTracking,
		models.ScreenJournaling,
		models.ScreenAssessment,
		models.ScreenSupportCall,
	} {
		svc, _ := navAt(models.ScreenMain, models.TabHome)
		st, err := svc.NavigateTo(target, "")
		if err != nil {
			t.Fatalf("home -> %s: %v", target, err)
		}
		if st.Screen != target {
			t.Fatalf("screen = %s, want %s", st.Screen, target)
		}
	}
}

func TestNavigationFeatureSelectionBlockedOffHome(t *testing.T) {
	for _, tab := range []models.Tab{models.TabRiskStatus, models.TabCounselor} {
		svc, store := navAt(models.ScreenMain, tab)
		if _, err := svc.NavigateTo(models.ScreenMoodTracking, ""); err == nil {
			t.Fatalf("feature selection allowed from tab %s", tab)
		}
		if store.nav.Tab != tab {
			t.Fatalf("state moved: %+v", store.nav)
		}
	}
}

func TestNavigationTabSwitch(t *testing.T) {
	svc, _ := navAt(models.ScreenMain, models.TabHome)

	st, err := svc.NavigateTo(models.ScreenMain, models.TabRiskStatus)
	if err != nil {
		t.Fatalf("tab switch: %v", err)
	}
	if st.Tab != models.TabRiskStatus {
		t.Fatalf("tab = %s, want risk_status", st.Tab)
	}

	if _, err := svc.NavigateTo(models.ScreenMain, "garbage"); err == nil {
		t.Fatalf("unknown tab accepted")
	}
}

func TestNavigationBackFromDetailScreens(t *testing.T) {
	for _, from := range []models.Screen{
		models.ScreenMoodTracking,
		models.ScreenJournaling,
		models.ScreenAssessment,
		models.ScreenSupportCall,
	} {
		svc, _ := navAt(from, "")

		// Detail screens only return home; lateral moves are rejected.
		if _, err := svc.NavigateTo(models.ScreenJournaling, ""); err == nil && from != models.ScreenJournaling {
			t.Fatalf("%s -> journaling allowed", from)
		}
		st, err := svc.Back()
		if err != nil {
			t.Fatalf("back from %s: %v", from, err)
		}
		if st.Screen != models.ScreenMain || st.Tab != models.TabHome {
			t.Fatalf("back from %s landed on %+v", from, st)
		}
	}
}

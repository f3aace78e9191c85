package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/crypticpeace/fyp/internal/middleware"
	"github.com/crypticpeace/fyp/internal/models"
	"github.com/crypticpeace/fyp/internal/services"
)

// Router wires the session services behind the HTTP intent surface. The
// server hosts exactly one session; restarting it discards everything.
type Router struct {
	store      *sessionStore
	profiles   *services.ProfileService
	moods      *services.MoodService
	journal    *services.JournalService
	assessment *services.AssessmentService
	risk       *services.RiskService
	nav        *services.NavigationService
	counselor  *services.CounselorService
	call       *services.CallService
	log        zerolog.Logger
}

func NewRouter(log zerolog.Logger) *Router {
	store := newSessionStore()
	return &Router{
		store:      store,
		profiles:   services.NewProfileService(store),
		moods:      services.NewMoodService(store),
		journal:    services.NewJournalService(store),
		assessment: services.NewAssessmentService(store),
		risk:       services.NewRiskService(store),
		nav:        services.NewNavigationService(store),
		counselor:  services.NewCounselorService(store, services.NewRotatingResponder()),
		call:       services.NewCallService(store),
		log:        log,
	}
}

func (rt *Router) Handler(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(rt.log))
	r.Use(middleware.NoStore)
	r.Use(middleware.SecureHeaders)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}

	r.Get("/health", rt.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/profile", rt.handleSubmitProfile)
		r.Get("/profile", rt.handleGetProfile)

		r.Post("/moods", rt.handleRecordMood)
		r.Get("/moods", rt.handleListMoods)

		r.Post("/journal", rt.handleRecordJournal)
		r.Get("/journal", rt.handleListJournal)

		r.Get("/assessment", rt.handleAssessmentState)
		r.Post("/assessment/answers", rt.handleAssessmentAnswer)

		r.Get("/risk", rt.handleRisk)
		r.Get("/dashboard", rt.handleDashboard)

		r.Post("/navigation", rt.handleNavigate)
		r.Get("/navigation", rt.handleNavigation)

		r.Post("/call/start", rt.handleCallStart)
		r.Post("/call/end", rt.handleCallEnd)
		r.Get("/call", rt.handleCallState)

		r.Get("/counselor", rt.handleCounselorProfile)
		r.Get("/counselor/messages", rt.handleListMessages)
		r.Post("/counselor/messages", rt.handleSendMessage)
	})

	r.Get("/ws/counselor", rt.handleCounselorWS)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	if se, ok := services.AsServiceError(err); ok {
		code = string(se.Code)
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorInvalidTransition, services.ErrorConflict:
			status = http.StatusConflict
		case services.ErrorNotFound:
			status = http.StatusNotFound
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": code})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "code": "invalid"})
		return false
	}
	return true
}

func limitParam(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "name": "fyp wellbeing API"})
}

func (rt *Router) handleSubmitProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		RollNumber string `json:"roll_number"`
		Class      string `json:"class"`
		Department string `json:"department"`
	}
	if !decode(w, r, &req) {
		return
	}
	p, err := rt.profiles.Submit(services.ProfileInput{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Class:      req.Class,
		Department: req.Department,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (rt *Router) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := rt.profiles.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p, "departments": services.Departments})
}

func (rt *Router) handleRecordMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood  int    `json:"mood"`
		Notes string `json:"notes"`
	}
	if !decode(w, r, &req) {
		return
	}
	e, err := rt.moods.Record(req.Mood, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (rt *Router) handleListMoods(w http.ResponseWriter, r *http.Request) {
	n := limitParam(r, 3)
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": rt.moods.Recent(n),
		"count":   rt.moods.Count(),
	})
}

func (rt *Router) handleRecordJournal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decode(w, r, &req) {
		return
	}
	e, err := rt.journal.Record(req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (rt *Router) handleListJournal(w http.ResponseWriter, r *http.Request) {
	n := limitParam(r, 3)
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": rt.journal.Recent(n),
		"count":   rt.journal.Count(),
	})
}

func (rt *Router) handleAssessmentState(w http.ResponseWriter, r *http.Request) {
	idx, question := rt.assessment.CurrentQuestion()
	current, total := rt.assessment.Progress()
	resp := map[string]any{
		"question_index": idx,
		"question":       question,
		"options":        services.PHQ9Options,
		"progress":       map[string]int{"current": current, "total": total},
	}
	if latest := rt.assessment.Latest(); latest != nil {
		resp["latest"] = latest
		resp["severity"] = services.SeverityLabel(latest.TotalScore)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) handleAssessmentAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question int `json:"question"`
		Score    int `json:"score"`
	}
	if !decode(w, r, &req) {
		return
	}
	result, err := rt.assessment.Answer(req.Question, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	current, total := rt.assessment.Progress()
	resp := map[string]any{
		"progress": map[string]int{"current": current, "total": total},
	}
	if result != nil {
		resp["result"] = result
		resp["severity"] = services.SeverityLabel(result.TotalScore)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) handleRisk(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.risk.Report())
}

func (rt *Router) handleDashboard(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"mood_entries":    rt.moods.Count(),
		"journal_entries": rt.journal.Count(),
		"risk_status":     rt.risk.Status(),
	}
	if p := rt.store.GetProfile(); p != nil {
		resp["profile"] = p
	}
	if e := rt.moods.Latest(); e != nil {
		resp["latest_mood"] = map[string]any{
			"mood":  e.Mood,
			"label": services.MoodLabels[e.Mood-1],
			"emoji": services.MoodEmojis[e.Mood-1],
		}
	}
	if latest := rt.assessment.Latest(); latest != nil {
		resp["phq9_score"] = latest.TotalScore
		resp["phq9_severity"] = services.SeverityLabel(latest.TotalScore)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Screen models.Screen `json:"screen"`
		Tab    models.Tab    `json:"tab"`
	}
	if !decode(w, r, &req) {
		return
	}
	st, err := rt.nav.NavigateTo(req.Screen, req.Tab)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (rt *Router) handleNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.nav.Current())
}

func (rt *Router) handleCallStart(w http.ResponseWriter, r *http.Request) {
	if err := rt.call.Start(); err != nil {
		writeError(w, err)
		return
	}
	rt.writeCallState(w)
}

func (rt *Router) handleCallEnd(w http.ResponseWriter, r *http.Request) {
	if err := rt.call.End(); err != nil {
		writeError(w, err)
		return
	}
	rt.writeCallState(w)
}

func (rt *Router) handleCallState(w http.ResponseWriter, r *http.Request) {
	rt.writeCallState(w)
}

func (rt *Router) writeCallState(w http.ResponseWriter) {
	d := rt.call.Duration()
	writeJSON(w, http.StatusOK, map[string]any{
		"active":           rt.call.Active(),
		"duration_seconds": int(d.Seconds()),
		"duration":         services.FormatDuration(d),
	})
}

func (rt *Router) handleCounselorProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.counselor.Profile())
}

func (rt *Router) handleListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"messages": rt.counselor.History()})
}

func (rt *Router) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body string `json:"body"`
	}
	if !decode(w, r, &req) {
		return
	}
	m, err := rt.counselor.Send(req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

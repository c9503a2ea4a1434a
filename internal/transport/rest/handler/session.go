package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
	"github.com/radion-x/ODI-Aaron-3/internal/service"
	"github.com/radion-x/ODI-Aaron-3/internal/session"
)

// SessionHandler exposes the wizard state machine over HTTP
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSessionRequest is the request body for starting a session
type CreateSessionRequest struct {
	CatalogID string `json:"catalogId"`
}

// AnswerRequest is the request body for answering the current question
type AnswerRequest struct {
	Value int `json:"value"`
}

// SessionView is the progress snapshot returned after every transition
type SessionView struct {
	ID            string                    `json:"id"`
	Completed     bool                      `json:"completed"`
	QuestionIndex int                       `json:"questionIndex"`
	QuestionCount int                       `json:"questionCount"`
	AnsweredCount int                       `json:"answeredCount"`
	Question      *model.QuestionDefinition `json:"question,omitempty"`
	Response      *model.ResponseRecord     `json:"response,omitempty"`
	Result        *model.AssessmentResult   `json:"result,omitempty"`
}

func newSessionView(id string, s *session.Session) SessionView {
	view := SessionView{
		ID:            id,
		Completed:     s.Completed(),
		QuestionIndex: s.CurrentIndex(),
		QuestionCount: s.QuestionCount(),
		AnsweredCount: s.AnsweredCount(),
		Result:        s.Result(),
	}
	if !s.Completed() {
		if q, err := s.CurrentQuestion(); err == nil {
			view.Question = &q
		}
		if rec, ok := s.CurrentResponse(); ok {
			view.Response = &rec
		}
	}
	return view
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := CreateSessionRequest{CatalogID: catalog.BackPainID}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	id, err := h.sessionSvc.Create(req.CatalogID)
	if err != nil {
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.view(w, http.StatusCreated, id)
}

// Get handles GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.view(w, http.StatusOK, mux.Vars(r)["id"])
}

// Answer handles POST /api/sessions/{id}/answer
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.transition(w, mux.Vars(r)["id"], func(s *session.Session) error {
		return s.Answer(req.Value)
	})
}

// Advance handles POST /api/sessions/{id}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, mux.Vars(r)["id"], func(s *session.Session) error {
		return s.Advance()
	})
}

// Retreat handles POST /api/sessions/{id}/retreat
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.transition(w, mux.Vars(r)["id"], func(s *session.Session) error {
		return s.Retreat()
	})
}

// Restart handles POST /api/sessions/{id}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, mux.Vars(r)["id"], func(s *session.Session) error {
		s.Restart()
		return nil
	})
}

func (h *SessionHandler) transition(w http.ResponseWriter, id string, fn func(*session.Session) error) {
	var view SessionView
	err := h.sessionSvc.With(id, func(s *session.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = newSessionView(id, s)
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *SessionHandler) view(w http.ResponseWriter, status int, id string) {
	var view SessionView
	err := h.sessionSvc.With(id, func(s *session.Session) error {
		view = newSessionView(id, s)
		return nil
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, status, view)
}

func writeSessionError(w http.ResponseWriter, err error) {
	var validation *session.ValidationError
	var transition *session.TransitionError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &transition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

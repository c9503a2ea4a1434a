package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/radion-x/ODI-Aaron-3/internal/model"
	"github.com/radion-x/ODI-Aaron-3/internal/service"
)

// AssessmentHandler handles the relay endpoints for completed assessments
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// AssessmentPayload is the request body carrying a completed assessment
type AssessmentPayload struct {
	UserDetails    model.UserDetails      `json:"userDetails"`
	AssessmentData model.AssessmentResult `json:"assessmentData"`
}

// EmailUserPayload is the request body for emailing results to the user
type EmailUserPayload struct {
	UserDetails    model.UserDetails      `json:"userDetails"`
	AssessmentData model.AssessmentResult `json:"assessmentData"`
	Observation    string                 `json:"aiInterpretation"`
}

// Save handles POST /api/save-assessment
func (h *AssessmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var payload AssessmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid data format")
		return
	}

	if err := h.assessmentSvc.Save(r.Context(), payload.UserDetails, payload.AssessmentData); err != nil {
		if errors.Is(err, service.ErrInvalidAssessment) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR: saving assessment: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save assessment data")
		return
	}

	log.Printf("assessment saved for %s", payload.UserDetails.Email)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Assessment data saved successfully."})
}

// Interpret handles POST /api/interpret-assessment. It returns the AI
// observation and sends the operator summary email as a side effect.
func (h *AssessmentHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	var payload AssessmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid data format")
		return
	}

	if err := h.assessmentSvc.Validate(payload.UserDetails, payload.AssessmentData); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	observation, _, err := h.assessmentSvc.Interpret(r.Context(), payload.UserDetails, payload.AssessmentData)
	if err != nil {
		log.Printf("ERROR: interpreting assessment: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get AI interpretation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"interpretation": observation})
}

// EmailUser handles POST /api/email-results-to-user
func (h *AssessmentHandler) EmailUser(w http.ResponseWriter, r *http.Request) {
	var payload EmailUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid data format")
		return
	}
	if payload.UserDetails.Email == "" || payload.Observation == "" {
		writeError(w, http.StatusBadRequest, "missing required data for sending email to user")
		return
	}

	if err := h.assessmentSvc.EmailUser(payload.UserDetails, payload.AssessmentData, payload.Observation); err != nil {
		log.Printf("ERROR: emailing user: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to email results to user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Results emailed to user successfully."})
}

// Submit handles POST /api/submit-assessment, running the whole pipeline
// (save, interpret, operator email, user email) in one call.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload AssessmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid data format")
		return
	}

	outcome, err := h.assessmentSvc.Submit(r.Context(), payload.UserDetails, payload.AssessmentData)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAssessment) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR: submitting assessment: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process assessment submission")
		return
	}

	writeJSON(w, http.StatusCreated, outcome)
}

// GetAll handles GET /api/get-assessments
func (h *AssessmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.assessmentSvc.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR: reading assessments: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to retrieve assessment data")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

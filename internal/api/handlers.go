package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/auth"
	"github.com/mohammedahmeduddin04/DocAI/internal/catalog"
	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "email and password are required", "")
		return
	}

	user, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.apiError(c, http.StatusUnauthorized, domain.ErrAuthentication, "invalid credentials", "")
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.auth.Logout(c.Request.Context()); err != nil {
		s.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, sessionUser(c))
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req domain.User
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "invalid profile payload", "")
		return
	}

	updated, err := s.auth.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type scanRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Location string   `json:"location"`
}

func (s *Server) handleScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Symptoms) == 0 {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "at least one symptom is required", "")
		return
	}

	user := sessionUser(c)
	record, err := s.predictor.Predict(c.Request.Context(), service.ScanParams{
		PatientID:   user.ID,
		PatientName: user.Name,
		Symptoms:    req.Symptoms,
		Location:    req.Location,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (s *Server) handleListPredictions(c *gin.Context) {
	records, err := s.reviews.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}

	// Patients see only their own records.
	user := sessionUser(c)
	if user.Role == domain.RolePatient {
		own := make([]domain.Prediction, 0, len(records))
		for _, r := range records {
			if r.PatientID == user.ID {
				own = append(own, r)
			}
		}
		records = own
	}

	c.JSON(http.StatusOK, records)
}

type decisionRequest struct {
	Status domain.PredictionStatus `json:"status" binding:"required"`
	Note   string                  `json:"note"`
}

func (s *Server) handleDecision(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "decision status is required", "")
		return
	}
	if req.Status != domain.StatusVerified && req.Status != domain.StatusRejected {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "status must be Verified or Rejected", "")
		return
	}

	user := sessionUser(c)
	record, err := s.reviews.ApplyDecision(c.Request.Context(), c.Param("id"), req.Status, req.Note, user.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.apiError(c, http.StatusNotFound, domain.ErrNotFound, "prediction record not found", "")
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleRationale(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	record, err := s.reviews.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.apiError(c, http.StatusNotFound, domain.ErrNotFound, "prediction record not found", "")
			return
		}
		s.internalError(c, err)
		return
	}

	text, err := s.rationale.Generate(ctx, record)
	if err != nil {
		// Enrichment is best effort; the record stays valid without it.
		s.logger.WithFields(logrus.Fields{
			"record_id": id,
		}).WithError(err).Warn("Rationale generation unavailable")
		s.apiError(c, http.StatusServiceUnavailable, domain.ErrEnrichment, "rationale service unavailable", "")
		return
	}

	updated, err := s.reviews.AttachRationale(ctx, id, text)
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDiseases(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Diseases)
}

func (s *Server) handleSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Symptoms)
}

func (s *Server) handleDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Doctors)
}

func (s *Server) handleTests(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.MedicalTests)
}

func (s *Server) handleVaccines(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Vaccines)
}

func (s *Server) handleCities(c *gin.Context) {
	c.JSON(http.StatusOK, s.surveillance.Cities())
}

func (s *Server) handleDeploymentReport(c *gin.Context) {
	report, err := s.surveillance.GenerateReport(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.apiError(c, http.StatusNotFound, domain.ErrNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleGetPledge(c *gin.Context) {
	pledge, found, err := s.prefs.Pledge(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	if !found {
		s.apiError(c, http.StatusNotFound, domain.ErrNotFound, "no pledge on record", "")
		return
	}
	c.JSON(http.StatusOK, pledge)
}

type pledgeRequest struct {
	Organs []string `json:"organs" binding:"required"`
}

func (s *Server) handleSetPledge(c *gin.Context) {
	var req pledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Organs) == 0 {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "at least one organ is required", "")
		return
	}

	user := sessionUser(c)
	pledge := domain.OrganPledge{
		PatientID: user.ID,
		Organs:    req.Organs,
		PledgedAt: time.Now().UTC(),
	}
	if err := s.prefs.SetPledge(c.Request.Context(), pledge); err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, pledge)
}

func (s *Server) handleGetTheme(c *gin.Context) {
	theme, err := s.prefs.Theme(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, "theme is required", "")
		return
	}
	if err := s.prefs.SetTheme(c.Request.Context(), req.Theme); err != nil {
		s.apiError(c, http.StatusBadRequest, domain.ErrValidation, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.WithError(err).Error("Request failed")
	s.apiError(c, http.StatusInternalServerError, domain.ErrInternalServer, "internal server error", "")
}

// apiError writes the standard error envelope with the request's
// correlation id.
func (s *Server) apiError(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, domain.NewAPIError(code, message, details, c.GetString("correlation_id")))
}

func sessionUser(c *gin.Context) domain.User {
	value, _ := c.Get("user")
	user, _ := value.(domain.User)
	return user
}

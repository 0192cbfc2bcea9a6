package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedahmeduddin04/DocAI/internal/auth"
	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/prefs"
	"github.com/mohammedahmeduddin04/DocAI/internal/service"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
	"github.com/mohammedahmeduddin04/DocAI/internal/store"
	"github.com/mohammedahmeduddin04/DocAI/internal/surveillance"
)

// stubRationale returns fixed text without calling out.
type stubRationale struct {
	text string
	err  error
}

func (s *stubRationale) Generate(ctx context.Context, record domain.Prediction) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type testEnv struct {
	server  *Server
	auth    *auth.Service
	reviews *store.ReviewStore
}

func createTestServer(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	backend := storage.NewMemoryStore()
	t.Cleanup(func() { backend.Close() })

	reviews := store.NewReviewStore(backend, logger)
	authSvc := auth.NewService(backend, logger)

	cfg := &domain.Config{}
	cfg.Logging.Level = "error"

	srv := NewServer(cfg, Deps{
		Auth:         authSvc,
		Predictor:    service.NewPredictor(reviews, logger, 0),
		Reviews:      reviews,
		Surveillance: surveillance.NewService(logger, 0),
		Prefs:        prefs.NewService(backend),
		Rationale:    &stubRationale{text: "Symptom cluster is typical for this assessment."},
	}, logger)

	return &testEnv{server: srv, auth: authSvc, reviews: reviews}
}

func (e *testEnv) loginAs(t *testing.T, email string) {
	t.Helper()
	_, err := e.auth.Login(context.Background(), email, "password")
	require.NoError(t, err)
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := createTestServer(t)

	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestLoginEndpoint(t *testing.T) {
	env := createTestServer(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "doctor@docai.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "d1", user.ID)
	assert.Equal(t, domain.RoleDoctor, user.Role)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "doctor@docai.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScanRequiresPatientRole(t *testing.T) {
	env := createTestServer(t)

	// No session at all.
	w := env.do(t, http.MethodPost, "/api/v1/predictions", map[string]interface{}{
		"symptoms": []string{"fever"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Doctors cannot file scans.
	env.loginAs(t, "doctor@docai.com")
	w = env.do(t, http.MethodPost, "/api/v1/predictions", map[string]interface{}{
		"symptoms": []string{"fever"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScanAndReviewWorkflow(t *testing.T) {
	env := createTestServer(t)

	// Patient files a scan.
	env.loginAs(t, "patient@docai.com")
	w := env.do(t, http.MethodPost, "/api/v1/predictions", map[string]interface{}{
		"symptoms": []string{"fever", "headache", "body aches", "fatigue"},
		"location": "Mumbai",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record domain.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Influenza", record.DiseaseName)
	assert.Equal(t, 80, record.Confidence)
	assert.Equal(t, domain.StatusPending, record.Status)
	assert.Equal(t, "p1", record.PatientID)

	// Doctor verifies it.
	env.loginAs(t, "doctor@docai.com")
	w = env.do(t, http.MethodPost, "/api/v1/predictions/"+record.ID+"/decision", map[string]string{
		"status": "Verified",
		"note":   "Consistent presentation",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var decided domain.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decided))
	assert.Equal(t, domain.StatusVerified, decided.Status)
	assert.Equal(t, "Dr. Sarah Smith", decided.VerifiedBy)
	assert.Equal(t, "Consistent presentation", decided.DoctorNote)
}

func TestScanValidation(t *testing.T) {
	env := createTestServer(t)
	env.loginAs(t, "patient@docai.com")

	w := env.do(t, http.MethodPost, "/api/v1/predictions", map[string]interface{}{
		"symptoms": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecisionValidation(t *testing.T) {
	env := createTestServer(t)
	env.loginAs(t, "doctor@docai.com")

	w := env.do(t, http.MethodPost, "/api/v1/predictions/any/decision", map[string]string{
		"status": "Pending",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/predictions/missing/decision", map[string]string{
		"status": "Verified",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDecisionRequiresDoctorRole(t *testing.T) {
	env := createTestServer(t)
	env.loginAs(t, "patient@docai.com")

	w := env.do(t, http.MethodPost, "/api/v1/predictions/any/decision", map[string]string{
		"status": "Verified",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPatientSeesOnlyOwnRecords(t *testing.T) {
	env := createTestServer(t)
	ctx := context.Background()

	require.NoError(t, env.reviews.Append(ctx, domain.Prediction{
		ID: "own", PatientID: "p1", Status: domain.StatusPending,
	}))
	require.NoError(t, env.reviews.Append(ctx, domain.Prediction{
		ID: "other", PatientID: "p99", Status: domain.StatusPending,
	}))

	env.loginAs(t, "patient@docai.com")
	w := env.do(t, http.MethodGet, "/api/v1/predictions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []domain.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "own", records[0].ID)

	// Doctors see everything.
	env.loginAs(t, "doctor@docai.com")
	w = env.do(t, http.MethodGet, "/api/v1/predictions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestRationaleEndpoint(t *testing.T) {
	env := createTestServer(t)
	ctx := context.Background()

	require.NoError(t, env.reviews.Append(ctx, domain.Prediction{
		ID: "rec-1", PatientID: "p1", DiseaseName: "Influenza", Status: domain.StatusPending,
	}))

	env.loginAs(t, "doctor@docai.com")
	w := env.do(t, http.MethodPost, "/api/v1/predictions/rec-1/rationale", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record domain.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Symptom cluster is typical for this assessment.", record.ClinicalRationale)
}

func TestRationaleEndpointDegrades(t *testing.T) {
	env := createTestServer(t)
	ctx := context.Background()

	env.server.rationale = &stubRationale{err: errors.New("upstream down")}

	require.NoError(t, env.reviews.Append(ctx, domain.Prediction{
		ID: "rec-1", PatientID: "p1", DiseaseName: "Influenza", Status: domain.StatusPending,
	}))

	env.loginAs(t, "doctor@docai.com")
	w := env.do(t, http.MethodPost, "/api/v1/predictions/rec-1/rationale", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// The record is untouched.
	record, err := env.reviews.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Empty(t, record.ClinicalRationale)
}

func TestCatalogEndpoints(t *testing.T) {
	env := createTestServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/catalog/diseases", "Common Cold"},
		{"/api/v1/catalog/symptoms", "fever"},
		{"/api/v1/catalog/doctors", "specialty"},
		{"/api/v1/catalog/tests", "price"},
		{"/api/v1/catalog/vaccines", "age_eligibility"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestSurveillanceRequiresAdmin(t *testing.T) {
	env := createTestServer(t)

	env.loginAs(t, "doctor@docai.com")
	w := env.do(t, http.MethodGet, "/api/v1/surveillance/cities", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.loginAs(t, "admin@docai.com")
	w = env.do(t, http.MethodGet, "/api/v1/surveillance/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mumbai")

	w = env.do(t, http.MethodPost, "/api/v1/surveillance/cities/Mumbai/report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.DeploymentReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Mumbai", report.City)
	assert.Equal(t, 49, report.SuccessProbability)
}

func TestThemeEndpoints(t *testing.T) {
	env := createTestServer(t)

	w := env.do(t, http.MethodGet, "/api/v1/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "light")

	w = env.do(t, http.MethodPut, "/api/v1/theme", map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/theme", nil)
	assert.Contains(t, w.Body.String(), "dark")

	w = env.do(t, http.MethodPut, "/api/v1/theme", map[string]string{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPledgeEndpoints(t *testing.T) {
	env := createTestServer(t)
	env.loginAs(t, "patient@docai.com")

	w := env.do(t, http.MethodGet, "/api/v1/pledge", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/pledge", map[string]interface{}{
		"organs": []string{"kidney", "cornea"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/pledge", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pledge domain.OrganPledge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pledge))
	assert.Equal(t, "p1", pledge.PatientID)
	assert.Equal(t, []string{"kidney", "cornea"}, pledge.Organs)
}

func TestFeedStreamsEvents(t *testing.T) {
	env := createTestServer(t)
	env.loginAs(t, "doctor@docai.com")

	httpServer := httptest.NewServer(env.server.Handler())
	defer httpServer.Close()

	wsURL := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/api/v1/feed"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the handler a moment to register its subscription.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, env.reviews.Append(context.Background(), domain.Prediction{
		ID: "live-1", PatientID: "p1", DiseaseName: "Influenza", Status: domain.StatusPending,
	}))

	var ev store.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, store.EventAppended, ev.Type)
	assert.Equal(t, "live-1", ev.Record.ID)
}

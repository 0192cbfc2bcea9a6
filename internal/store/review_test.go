package store

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
)

func createTestStore(t *testing.T) *ReviewStore {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	backend := storage.NewMemoryStore()
	t.Cleanup(func() { backend.Close() })

	return NewReviewStore(backend, logger)
}

func testRecord(id, disease string) domain.Prediction {
	return domain.Prediction{
		ID:          id,
		PatientID:   "p1",
		PatientName: "John Doe",
		DiseaseName: disease,
		Confidence:  80,
		Symptoms:    []string{"fever", "headache"},
		Location:    "Mumbai",
		Timestamp:   time.Now().UTC(),
		Status:      domain.StatusPending,
		Severity:    domain.SeverityMedium,
		Specialty:   "General Physician",
	}
}

func TestReviewStoreAppendOrdering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))
	require.NoError(t, s.Append(ctx, testRecord("b", "Dengue Fever")))
	require.NoError(t, s.Append(ctx, testRecord("c", "Migraine")))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "a", records[2].ID)
}

func TestReviewStoreListSnapshot(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	first, err := s.List(ctx)
	require.NoError(t, err)
	first[0].Status = domain.StatusVerified
	first[0].DoctorNote = "scribbled on the snapshot"

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, second[0].Status)
	assert.Empty(t, second[0].DoctorNote)
}

func TestReviewStoreApplyDecision(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := testRecord("a", "Influenza")
	require.NoError(t, s.Append(ctx, rec))
	require.NoError(t, s.Append(ctx, testRecord("b", "Migraine")))

	updated, err := s.ApplyDecision(ctx, "a", domain.StatusVerified, "Confirmed on examination", "Dr. Sarah Smith")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusVerified, updated.Status)
	assert.Equal(t, "Confirmed on examination", updated.DoctorNote)
	assert.Equal(t, "Dr. Sarah Smith", updated.VerifiedBy)

	// Every other field survives untouched.
	assert.Equal(t, rec.DiseaseName, updated.DiseaseName)
	assert.Equal(t, rec.Confidence, updated.Confidence)
	assert.Equal(t, rec.Symptoms, updated.Symptoms)
	assert.Equal(t, rec.PatientName, updated.PatientName)

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, domain.StatusPending, records[0].Status)
	assert.Equal(t, domain.StatusVerified, records[1].Status)
}

func TestReviewStoreApplyDecisionRejected(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	updated, err := s.ApplyDecision(ctx, "a", domain.StatusRejected, "Symptoms inconsistent", "Dr. Sarah Smith")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
}

func TestReviewStoreApplyDecisionUnknownID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	_, err := s.ApplyDecision(ctx, "missing", domain.StatusVerified, "", "Dr. Sarah Smith")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusPending, records[0].Status)
	assert.Empty(t, records[0].DoctorNote)
}

func TestReviewStoreApplyDecisionInvalidStatus(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	_, err := s.ApplyDecision(ctx, "a", domain.StatusPending, "", "Dr. Sarah Smith")
	assert.Error(t, err)

	_, err = s.ApplyDecision(ctx, "a", domain.StatusModified, "", "Dr. Sarah Smith")
	assert.Error(t, err)
}

func TestReviewStoreAttachRationale(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := testRecord("a", "Influenza")
	require.NoError(t, s.Append(ctx, rec))

	updated, err := s.AttachRationale(ctx, "a", "Symptom cluster is typical for seasonal influenza.")
	require.NoError(t, err)
	assert.Equal(t, "Symptom cluster is typical for seasonal influenza.", updated.ClinicalRationale)
	assert.Equal(t, domain.StatusPending, updated.Status)

	_, err = s.AttachRationale(ctx, "missing", "text")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestReviewStoreRoundTrip(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	backend := storage.NewMemoryStore()
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()

	s1 := NewReviewStore(backend, logger)
	require.NoError(t, s1.Append(ctx, testRecord("a", "Influenza")))
	_, err := s1.ApplyDecision(ctx, "a", domain.StatusVerified, "ok", "Dr. Sarah Smith")
	require.NoError(t, err)

	// A fresh store over the same medium observes identical state.
	s2 := NewReviewStore(backend, logger)
	records, err := s2.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusVerified, records[0].Status)
	assert.Equal(t, "Dr. Sarah Smith", records[0].VerifiedBy)
}

func TestReviewStorePendingCount(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))
	require.NoError(t, s.Append(ctx, testRecord("b", "Migraine")))
	require.NoError(t, s.Append(ctx, testRecord("c", "Hepatitis")))

	_, err := s.ApplyDecision(ctx, "b", domain.StatusRejected, "", "Dr. Sarah Smith")
	require.NoError(t, err)

	count, err := s.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReviewStoreSubscribe(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ch, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	select {
	case ev := <-ch:
		assert.Equal(t, EventAppended, ev.Type)
		assert.Equal(t, "a", ev.Record.ID)
	case <-time.After(time.Second):
		t.Fatal("expected append event")
	}

	_, err := s.ApplyDecision(ctx, "a", domain.StatusVerified, "", "Dr. Sarah Smith")
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, EventDecided, ev.Type)
		assert.Equal(t, domain.StatusVerified, ev.Record.Status)
	case <-time.After(time.Second):
		t.Fatal("expected decision event")
	}
}

func TestReviewStoreSubscribeCancel(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ch, cancel := s.Subscribe()
	cancel()
	cancel() // idempotent

	require.NoError(t, s.Append(ctx, testRecord("a", "Influenza")))

	_, open := <-ch
	assert.False(t, open)
}

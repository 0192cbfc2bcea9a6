// Package store implements the review store: the authoritative,
// ordered collection of prediction records and the only sanctioned
// mutation path for their review lifecycle.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
)

// Event describes a store mutation delivered to subscribers.
type Event struct {
	Type   EventType         `json:"type"`
	Record domain.Prediction `json:"record"`
}

// EventType identifies the kind of store mutation.
type EventType string

const (
	EventAppended EventType = "appended"
	EventDecided  EventType = "decided"
	EventEnriched EventType = "enriched"
)

// ReviewStore holds the full prediction collection for the current
// deployment and persists it wholesale to the durable medium on every
// mutation. A single mutex serializes all writers, so within one
// process mutations are strictly sequential; across processes sharing
// a backend the last writer wins.
type ReviewStore struct {
	mu      sync.Mutex
	backend storage.Store
	logger  *logrus.Logger

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

// NewReviewStore creates a review store over the given durable medium.
func NewReviewStore(backend storage.Store, logger *logrus.Logger) *ReviewStore {
	return &ReviewStore{
		backend: backend,
		logger:  logger,
		subs:    make(map[chan Event]struct{}),
	}
}

// Append adds a new record to the front of the collection. Most-recent-
// first ordering is a contract other views rely on for "latest
// prediction" semantics.
func (s *ReviewStore) Append(ctx context.Context, record domain.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	records = append([]domain.Prediction{record}, records...)
	if err := s.persist(ctx, records); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"record_id":  record.ID,
		"disease":    record.DiseaseName,
		"confidence": record.Confidence,
	}).Info("Prediction record appended")

	s.notify(Event{Type: EventAppended, Record: record})
	return nil
}

// List returns the full collection, most recent first. The returned
// slice is a snapshot; callers may not mutate stored state through it.
func (s *ReviewStore) List(ctx context.Context) ([]domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Get returns a single record by id.
func (s *ReviewStore) Get(ctx context.Context, id string) (domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.Prediction{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Prediction{}, domain.ErrRecordNotFound
}

// ApplyDecision transitions a record out of Pending. status must be
// Verified or Rejected; the transition is one-way and replaces only
// status, doctorNote and verifiedBy. An unknown id leaves the
// collection untouched and returns domain.ErrRecordNotFound.
func (s *ReviewStore) ApplyDecision(ctx context.Context, id string, status domain.PredictionStatus, note, reviewerName string) (domain.Prediction, error) {
	if status != domain.StatusVerified && status != domain.StatusRejected {
		return domain.Prediction{}, fmt.Errorf("invalid decision status: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.Prediction{}, err
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Prediction{}, domain.ErrRecordNotFound
	}

	records[idx].Status = status
	records[idx].DoctorNote = note
	records[idx].VerifiedBy = reviewerName

	if err := s.persist(ctx, records); err != nil {
		return domain.Prediction{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"record_id": id,
		"status":    status,
		"reviewer":  reviewerName,
	}).Info("Review decision applied")

	s.notify(Event{Type: EventDecided, Record: records[idx]})
	return records[idx], nil
}

// AttachRationale attaches enrichment text to a record. The field is
// additive only; every other field is left unchanged.
func (s *ReviewStore) AttachRationale(ctx context.Context, id string, rationale string) (domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.Prediction{}, err
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Prediction{}, domain.ErrRecordNotFound
	}

	records[idx].ClinicalRationale = rationale
	if err := s.persist(ctx, records); err != nil {
		return domain.Prediction{}, err
	}

	s.notify(Event{Type: EventEnriched, Record: records[idx]})
	return records[idx], nil
}

// PendingCount returns the number of records still awaiting review.
func (s *ReviewStore) PendingCount(ctx context.Context) (int, error) {
	records, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range records {
		if r.Status == domain.StatusPending {
			count++
		}
	}
	return count, nil
}

// Subscribe registers a listener for store mutations. It replaces the
// fixed-interval polling the original client used: viewers observe new
// records and decisions as they happen. Slow subscribers drop events
// rather than block writers.
func (s *ReviewStore) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *ReviewStore) notify(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// load reads and decodes the full collection. Callers must hold mu.
func (s *ReviewStore) load(ctx context.Context) ([]domain.Prediction, error) {
	raw, found, err := s.backend.Get(ctx, storage.KeyPredictions)
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction collection: %w", err)
	}
	if !found {
		return []domain.Prediction{}, nil
	}

	var records []domain.Prediction
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode prediction collection: %w", err)
	}
	return records, nil
}

// persist re-serializes the entire collection; there is no incremental
// write path. Callers must hold mu.
func (s *ReviewStore) persist(ctx context.Context, records []domain.Prediction) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode prediction collection: %w", err)
	}
	if err := s.backend.Set(ctx, storage.KeyPredictions, raw); err != nil {
		return fmt.Errorf("failed to persist prediction collection: %w", err)
	}
	return nil
}

// Package service implements the disease prediction engine and the
// surrounding clinical workflow operations.
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/catalog"
	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/store"
)

// fallbackThreshold is the minimum winning score, in percent, below
// which a scan is considered inconclusive.
const fallbackThreshold = 20.0

// fallbackConfidence is the fixed confidence reported for an
// inconclusive scan. Deliberately low so reviewers treat the result
// as a placeholder rather than a finding.
const fallbackConfidence = 15

// ScanParams carries the patient context for a single analysis run.
type ScanParams struct {
	PatientID   string
	PatientName string
	Symptoms    []string
	Location    string
}

// Predictor scores symptom sets against the disease catalog and files
// the resulting records for clinical review.
type Predictor struct {
	reviews *store.ReviewStore
	logger  *logrus.Logger

	// scanDelay simulates analysis latency for demo parity. Zero in
	// tests.
	scanDelay time.Duration
}

// NewPredictor creates a prediction engine over the given review store.
func NewPredictor(reviews *store.ReviewStore, logger *logrus.Logger, scanDelay time.Duration) *Predictor {
	return &Predictor{
		reviews:   reviews,
		logger:    logger,
		scanDelay: scanDelay,
	}
}

// match is one disease's score against a symptom set.
type match struct {
	disease domain.Disease
	score   float64
}

// Predict analyzes the selected symptoms, produces a Pending record
// and appends it to the review store. At least one symptom is
// required.
func (p *Predictor) Predict(ctx context.Context, params ScanParams) (domain.Prediction, error) {
	if len(params.Symptoms) == 0 {
		return domain.Prediction{}, fmt.Errorf("at least one symptom is required")
	}

	if p.scanDelay > 0 {
		timer := time.NewTimer(p.scanDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return domain.Prediction{}, ctx.Err()
		}
	}

	best, conclusive := scoreCatalog(params.Symptoms)

	confidence := fallbackConfidence
	disease := best.disease
	if conclusive {
		confidence = int(math.Round(best.score))
	} else {
		disease = fallbackMatch()
	}

	record := domain.Prediction{
		ID:          uuid.New().String(),
		PatientID:   params.PatientID,
		PatientName: params.PatientName,
		DiseaseName: disease.Name,
		Confidence:  confidence,
		Symptoms:    params.Symptoms,
		Location:    params.Location,
		Timestamp:   time.Now().UTC(),
		Status:      domain.StatusPending,
		Severity:    disease.Severity,
		Specialty:   disease.Specialty,
	}

	if err := p.reviews.Append(ctx, record); err != nil {
		return domain.Prediction{}, fmt.Errorf("failed to file prediction for review: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"patient_id": params.PatientID,
		"disease":    record.DiseaseName,
		"confidence": record.Confidence,
		"conclusive": conclusive,
	}).Info("Symptom scan completed")

	return record, nil
}

// scoreCatalog scores every catalog disease against the selected
// symptoms and returns the winner. A match counts when the disease's
// own symptom, lowercased, appears among the selections. The score is
// the matched fraction of the disease's symptom list, as a percentage.
// conclusive is false when the winning score does not clear the
// fallback threshold.
func scoreCatalog(selected []string) (best match, conclusive bool) {
	selectedSet := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		selectedSet[strings.ToLower(s)] = struct{}{}
	}

	matches := make([]match, 0, len(catalog.Diseases))
	for _, d := range catalog.Diseases {
		matched := 0
		for _, symptom := range d.Symptoms {
			if _, ok := selectedSet[strings.ToLower(symptom)]; ok {
				matched++
			}
		}
		score := 0.0
		if len(d.Symptoms) > 0 {
			score = float64(matched) / float64(len(d.Symptoms)) * 100
		}
		matches = append(matches, match{disease: d, score: score})
	}

	// Stable sort keeps catalog order as the tie-break.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	best = matches[0]
	return best, best.score > fallbackThreshold
}

// fallbackMatch is the policy for inconclusive scans: report the first
// catalog entry rather than no result, so the record still enters the
// review queue.
func fallbackMatch() domain.Disease {
	return catalog.FallbackDisease()
}

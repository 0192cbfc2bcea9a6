package rationale

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

// Generator produces rationale text for a prediction record.
type Generator interface {
	Generate(ctx context.Context, record domain.Prediction) (string, error)
}

// ResilientClient wraps a Generator with a circuit breaker and an
// in-memory LRU cache keyed by disease and symptom set. Identical
// scans reuse the cached rationale instead of repeating the API call.
type ResilientClient struct {
	inner   Generator
	breaker *gobreaker.CircuitBreaker
	cache   *lru.Cache[string, string]
	logger  *logrus.Logger
}

// NewResilientClient creates a resilient rationale client.
func NewResilientClient(inner Generator, cacheSize int, logger *logrus.Logger) (*ResilientClient, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create rationale cache: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Rationale",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &ResilientClient{
		inner:   inner,
		breaker: breaker,
		cache:   cache,
		logger:  logger,
	}, nil
}

// Generate returns a rationale for the record, serving repeated
// disease/symptom combinations from cache.
func (r *ResilientClient) Generate(ctx context.Context, record domain.Prediction) (string, error) {
	key := cacheKey(record)
	if text, ok := r.cache.Get(key); ok {
		return text, nil
	}

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.inner.Generate(ctx, record)
	})
	if err != nil {
		return "", fmt.Errorf("rationale generation failed: %w", err)
	}

	text := result.(string)
	r.cache.Add(key, text)
	return text, nil
}

// cacheKey normalizes the disease and symptom set into a stable key.
// Symptom order does not affect the rationale, so it must not affect
// the key either.
func cacheKey(record domain.Prediction) string {
	symptoms := make([]string, len(record.Symptoms))
	for i, s := range record.Symptoms {
		symptoms[i] = strings.ToLower(s)
	}
	sort.Strings(symptoms)
	return strings.ToLower(record.DiseaseName) + "|" + strings.Join(symptoms, ",")
}

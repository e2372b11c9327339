package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/document"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/sirupsen/logrus"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured maximum
var ErrBatchTooLarge = errors.New("batch too large")

// batchConcurrency bounds the goroutines used by ValidateBatch
const batchConcurrency = 8

// CaseLookup is a parsed case number and its court, if registered
type CaseLookup struct {
	Case  cnj.CaseNumber
	Court *tribunal.Entry
}

// ValidationService implements ValidationServiceInterface on top of the
// document, cnj and tribunal packages
type ValidationService struct {
	router   *tribunal.Router
	logger   *logrus.Logger
	maxBatch int

	documents atomic.Int64
	cases     atomic.Int64
}

// NewValidationService creates a validation service over a fully populated router
func NewValidationService(router *tribunal.Router, maxBatch int, logger *logrus.Logger) *ValidationService {
	return &ValidationService{
		router:   router,
		logger:   logger,
		maxBatch: maxBatch,
	}
}

// ValidateDocument validates a CPF or CNPJ
func (s *ValidationService) ValidateDocument(kind document.Kind, input string) document.Result {
	s.documents.Add(1)

	result := document.ValidateAs(kind, input)
	if !result.Valid {
		s.logger.WithFields(logrus.Fields{
			"kind":   result.Kind.String(),
			"reason": result.Reason,
		}).Debug("Document rejected")
	}
	return result
}

// ValidateBatch validates inputs concurrently; results keep the input order
func (s *ValidationService) ValidateBatch(ctx context.Context, inputs []string) ([]document.Result, error) {
	if len(inputs) > s.maxBatch {
		return nil, fmt.Errorf("%d documents, max %d: %w", len(inputs), s.maxBatch, ErrBatchTooLarge)
	}

	results := make([]document.Result, len(inputs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, batchConcurrency)

	for i, input := range inputs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(index int, value string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[index] = s.ValidateDocument(document.KindUnknown, value)
		}(i, input)
	}

	wg.Wait()
	return results, nil
}

// ParseCaseNumber parses input and resolves its court. An unknown court is
// not an error: Court is left nil.
func (s *ValidationService) ParseCaseNumber(input string) (*CaseLookup, error) {
	s.cases.Add(1)

	c, err := cnj.Parse(input)
	if err != nil {
		return nil, err
	}

	lookup := &CaseLookup{Case: c}

	entry, err := s.router.Resolve(c)
	switch {
	case err == nil:
		lookup.Court = &entry
	case errors.Is(err, tribunal.ErrNotFound):
		s.logger.WithFields(logrus.Fields{
			"numero": c.String(),
			"chave":  tribunal.KeyOf(c).String(),
		}).Info("Case number from unregistered tribunal")
	default:
		return nil, err
	}

	return lookup, nil
}

// Tribunal returns the court registered for key
func (s *ValidationService) Tribunal(key tribunal.Key) (tribunal.Entry, error) {
	return s.router.Lookup(key)
}

// Tribunals returns the court table ordered by key
func (s *ValidationService) Tribunals() []tribunal.Entry {
	return s.router.Entries()
}

// Health returns service health status
func (s *ValidationService) Health() map[string]interface{} {
	status := "healthy"
	if s.router.Len() == 0 {
		status = "degraded"
	}

	return map[string]interface{}{
		"status":              status,
		"tribunals":           s.router.Len(),
		"documents_validated": s.documents.Load(),
		"cases_parsed":        s.cases.Load(),
	}
}

package services

import (
	"context"
	"net/http"
	"time"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/document"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/tribunal"
)

// ValidationServiceInterface exposes the identifier toolkit to the API
type ValidationServiceInterface interface {
	// ValidateDocument validates a CPF or CNPJ; KindUnknown classifies by length
	ValidateDocument(kind document.Kind, input string) document.Result

	// ValidateBatch validates many documents concurrently, preserving order
	ValidateBatch(ctx context.Context, inputs []string) ([]document.Result, error)

	// ParseCaseNumber parses a case number and resolves its court
	ParseCaseNumber(input string) (*CaseLookup, error)

	// Tribunal returns the court registered for a key
	Tribunal(key tribunal.Key) (tribunal.Entry, error)

	// Tribunals returns the whole court table
	Tribunals() []tribunal.Entry

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}

// DataJudServiceInterface looks cases up on the DataJud public API
type DataJudServiceInterface interface {
	// Search queries the court of c for the case
	Search(ctx context.Context, c cnj.CaseNumber) (*models.DataJudResponse, error)

	// Enabled reports whether an API key is configured
	Enabled() bool

	// Health returns DataJud client health status
	Health() map[string]interface{}
}

// MetricsServiceInterface defines the interface for metrics service
type MetricsServiceInterface interface {
	// RecordRequest records a request under its route pattern
	RecordRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// RecordCacheHit records a cache lookup outcome
	RecordCacheHit(ctx context.Context, hit bool)

	// GetMetrics returns a summary of the recorded metrics
	GetMetrics() map[string]interface{}

	// Handler serves the metrics in the Prometheus text format
	Handler() http.Handler
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/config"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDataJudDisabled is returned when no API key is configured
	ErrDataJudDisabled = errors.New("datajud lookups are disabled")
	// ErrNoEndpoint is returned for courts that are not published on DataJud
	ErrNoEndpoint = errors.New("tribunal has no datajud endpoint")
	// ErrUpstream wraps non-2xx answers from DataJud
	ErrUpstream = errors.New("datajud request failed")
)

// DataJudClient queries the DataJud public API for a case, picking the
// index from the court the case number resolves to
type DataJudClient struct {
	config config.DataJudConfig
	router *tribunal.Router
	cache  CacheServiceInterface
	client *http.Client
	logger *logrus.Logger

	requests atomic.Int64
	failures atomic.Int64
}

type dataJudQuery struct {
	Query struct {
		Match struct {
			NumeroProcesso string `json:"numeroProcesso"`
		} `json:"match"`
	} `json:"query"`
	Size int `json:"size"`
}

type dataJudSearchResult struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string                `json:"_id"`
			Source models.DataJudProcess `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// NewDataJudClient creates a DataJud client
func NewDataJudClient(cfg config.DataJudConfig, router *tribunal.Router, cache CacheServiceInterface, logger *logrus.Logger) *DataJudClient {
	return &DataJudClient{
		config: cfg,
		router: router,
		cache:  cache,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// DataJudCacheKey is the cache key of the DataJud result of c
func DataJudCacheKey(c cnj.CaseNumber) string {
	return "datajud:" + c.Digits
}

// Enabled reports whether an API key is configured
func (d *DataJudClient) Enabled() bool {
	return d.config.Enabled()
}

// Search looks the case up on the DataJud index of its court
func (d *DataJudClient) Search(ctx context.Context, c cnj.CaseNumber) (*models.DataJudResponse, error) {
	start := time.Now()

	if !d.Enabled() {
		return nil, ErrDataJudDisabled
	}

	entry, err := d.router.Resolve(c)
	if err != nil {
		return nil, err
	}
	if entry.Endpoint == "" {
		return nil, fmt.Errorf("%s: %w", entry.Identifier, ErrNoEndpoint)
	}

	logger := d.logger.WithFields(logrus.Fields{
		"numero":   c.String(),
		"tribunal": entry.Identifier,
	})

	cacheKey := DataJudCacheKey(c)
	if cached, err := d.cache.Get(ctx, cacheKey); err == nil {
		var response models.DataJudResponse
		decodeErr := json.Unmarshal([]byte(cached), &response)
		if decodeErr == nil {
			response.Cache = true
			response.TempoConsulta = time.Since(start).Milliseconds()
			logger.Debug("DataJud result found in cache")
			return &response, nil
		}
		logger.WithError(decodeErr).Warn("Failed to unmarshal cached DataJud data")
	}

	processes, err := d.fetch(ctx, entry.Endpoint, c.Digits)
	if err != nil {
		d.failures.Add(1)
		logger.WithError(err).Error("DataJud lookup failed")
		return nil, err
	}

	response := &models.DataJudResponse{
		CaseNumber:    c.String(),
		Tribunal:      models.NewTribunalResponse(entry),
		Processes:     processes,
		Total:         len(processes),
		ConsultadoEm:  time.Now(),
		TempoConsulta: time.Since(start).Milliseconds(),
	}

	if responseJSON, err := json.Marshal(response); err == nil {
		if err := d.cache.Set(ctx, cacheKey, string(responseJSON)); err != nil {
			logger.WithError(err).Warn("Failed to cache DataJud response")
		}
	}

	logger.WithFields(logrus.Fields{
		"total":    response.Total,
		"duration": time.Since(start),
	}).Info("DataJud lookup completed")

	return response, nil
}

func (d *DataJudClient) fetch(ctx context.Context, endpoint, digits string) ([]models.DataJudProcess, error) {
	d.requests.Add(1)

	var query dataJudQuery
	query.Query.Match.NumeroProcesso = digits
	query.Size = d.config.PageSize

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "APIKey "+d.config.APIKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, ErrUpstream)
	}

	var result dataJudSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	processes := make([]models.DataJudProcess, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		process := hit.Source
		if process.ID == "" {
			process.ID = hit.ID
		}
		processes = append(processes, process)
	}
	return processes, nil
}

// Health returns DataJud client health status
func (d *DataJudClient) Health() map[string]interface{} {
	status := "healthy"
	if !d.Enabled() {
		status = "disabled"
	}

	return map[string]interface{}{
		"status":   status,
		"requests": d.requests.Load(),
		"failures": d.failures.Load(),
	}
}

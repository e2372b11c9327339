package models

import (
	"time"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string      `json:"error" example:"Invalid document"`
	Message   string      `json:"message" example:"CPF must contain exactly 11 digits"`
	Code      string      `json:"code" example:"WRONG_LENGTH"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string      `json:"path" example:"/api/v1/cpf/123"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m15s"`
}

// ServiceInfo represents individual service health information
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	Error     string    `json:"error,omitempty"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
}

// MetricsResponse represents application metrics
type MetricsResponse struct {
	Requests  RequestsMetrics        `json:"requests"`
	Cache     map[string]interface{} `json:"cache"`
	RateLimit map[string]interface{} `json:"rate_limit"`
	Tribunals int                    `json:"tribunals" example:"92"`
	System    SystemMetrics          `json:"system"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RequestsMetrics represents request-related metrics
type RequestsMetrics struct {
	Total       int64   `json:"total" example:"1500"`
	Success     int64   `json:"success" example:"1450"`
	Errors      int64   `json:"errors" example:"50"`
	SuccessRate float64 `json:"success_rate" example:"96.67"`
}

// SystemMetrics represents system-related metrics
type SystemMetrics struct {
	MemoryUsage float64 `json:"memory_usage_mb" example:"256.5"`
	Goroutines  int     `json:"goroutines" example:"150"`
}

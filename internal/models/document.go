package models

import (
	"time"

	"github.com/nexconsult/juris-api/internal/document"
)

// DocumentResponse is the validation outcome of a CPF or CNPJ
type DocumentResponse struct {
	Original     string `json:"original" example:"529.982.247-25"`
	Digits       string `json:"digits" example:"52998224725"`
	Kind         string `json:"kind" example:"CPF"`
	Valid        bool   `json:"valid" example:"true"`
	Formatted    string `json:"formatted,omitempty" example:"529.982.247-25"`
	Reason       string `json:"reason,omitempty" example:"INVALID_CHECK_DIGIT"`
	Root         string `json:"root,omitempty" example:"11222333"`
	IsHeadOffice *bool  `json:"is_head_office,omitempty" example:"true"`
}

// NewDocumentResponse converts a validation result for the API
func NewDocumentResponse(result document.Result) DocumentResponse {
	response := DocumentResponse{
		Original:  result.Raw,
		Digits:    result.Digits,
		Kind:      result.Kind.String(),
		Valid:     result.Valid,
		Formatted: result.Formatted,
		Reason:    string(result.Reason),
	}

	if result.Kind == document.KindCNPJ && result.Valid {
		headOffice := document.IsHeadOffice(result.Digits)
		response.Root = document.Root(result.Digits)
		response.IsHeadOffice = &headOffice
	}

	return response
}

// BatchRequest represents a batch validation request
type BatchRequest struct {
	Documents []string `json:"documents" binding:"required,min=1" example:"529.982.247-25,11.222.333/0001-81"`
}

// BatchResponse represents a batch validation response
type BatchResponse struct {
	Results    []DocumentResponse `json:"results"`
	Total      int                `json:"total" example:"2"`
	Valid      int                `json:"valid" example:"1"`
	Invalid    int                `json:"invalid" example:"1"`
	DurationMs int64              `json:"duration_ms" example:"3"`
	Timestamp  time.Time          `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

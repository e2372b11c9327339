package models

import (
	"time"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/tribunal"
)

// TribunalResponse represents a registered court
type TribunalResponse struct {
	Key        string `json:"chave" example:"8.26"`
	Branch     int    `json:"segmento" example:"8"`
	Tribunal   int    `json:"tribunal" example:"26"`
	Identifier string `json:"sigla" example:"TJSP"`
	Endpoint   string `json:"endpoint,omitempty" example:"https://api-publica.datajud.cnj.jus.br/api_publica_tjsp/_search"`
}

// NewTribunalResponse converts a router entry for the API
func NewTribunalResponse(entry tribunal.Entry) TribunalResponse {
	return TribunalResponse{
		Key:        entry.Key.String(),
		Branch:     entry.Key.Branch,
		Tribunal:   entry.Key.Tribunal,
		Identifier: entry.Identifier,
		Endpoint:   entry.Endpoint,
	}
}

// CaseNumberResponse is a parsed case number and, when known, its court
type CaseNumberResponse struct {
	Original         string            `json:"original" example:"0001234-55.2023.8.26.0100"`
	Canonical        string            `json:"numero" example:"0001234-55.2023.8.26.0100"`
	Digits           string            `json:"digits" example:"00012345520238260100"`
	Sequential       string            `json:"sequencial" example:"0001234"`
	CheckDigits      string            `json:"digito_verificador" example:"55"`
	CheckDigitsValid bool              `json:"dv_valido" example:"false"`
	Year             string            `json:"ano" example:"2023"`
	Branch           string            `json:"segmento" example:"8"`
	BranchName       string            `json:"segmento_nome,omitempty" example:"Justiça Estadual"`
	Tribunal         string            `json:"tribunal" example:"26"`
	OriginUnit       string            `json:"origem" example:"0100"`
	Court            *TribunalResponse `json:"orgao,omitempty"`
}

// NewCaseNumberResponse converts a parsed case number for the API
func NewCaseNumberResponse(c cnj.CaseNumber) CaseNumberResponse {
	return CaseNumberResponse{
		Original:         c.Raw,
		Canonical:        c.String(),
		Digits:           c.Digits,
		Sequential:       c.Sequential,
		CheckDigits:      c.CheckDigits,
		CheckDigitsValid: c.HasValidCheckDigits(),
		Year:             c.Year,
		Branch:           c.Branch,
		BranchName:       c.BranchName(),
		Tribunal:         c.Tribunal,
		OriginUnit:       c.OriginUnit,
	}
}

// DataJudProcess is a case as returned by the DataJud public API
type DataJudProcess struct {
	ID           string            `json:"id"`
	Number       string            `json:"numeroProcesso"`
	Tribunal     string            `json:"tribunal"`
	Degree       string            `json:"grau"`
	FiledAt      string            `json:"dataAjuizamento"`
	UpdatedAt    string            `json:"dataHoraUltimaAtualizacao"`
	Class        DataJudCode       `json:"classe"`
	System       DataJudCode       `json:"sistema"`
	Format       DataJudCode       `json:"formato"`
	JudgingBody  DataJudCode       `json:"orgaoJulgador"`
	Subjects     []DataJudCode     `json:"assuntos,omitempty"`
	Movements    []DataJudMovement `json:"movimentos,omitempty"`
	SecrecyLevel int               `json:"nivelSigilo"`
}

// DataJudCode is the code/name pair DataJud uses for classes, subjects and bodies
type DataJudCode struct {
	Code int    `json:"codigo"`
	Name string `json:"nome"`
}

// DataJudMovement is a procedural event of a case
type DataJudMovement struct {
	Code     int    `json:"codigo"`
	Name     string `json:"nome"`
	DateTime string `json:"dataHora"`
}

// DataJudResponse is the API view of a DataJud lookup
type DataJudResponse struct {
	CaseNumber    string           `json:"numero" example:"0001234-55.2023.8.26.0100"`
	Tribunal      TribunalResponse `json:"orgao"`
	Processes     []DataJudProcess `json:"processos"`
	Total         int              `json:"total" example:"1"`
	Cache         bool             `json:"cache" example:"false"`
	ConsultadoEm  time.Time        `json:"consultado_em" example:"2024-01-15T10:30:00Z"`
	TempoConsulta int64            `json:"tempo_consulta_ms" example:"850"`
}

// DataJudBatchRequest lists the case numbers of a bulk DataJud lookup
type DataJudBatchRequest struct {
	CaseNumbers []string `json:"processos" binding:"required,min=1" example:"0000832-35.2018.4.01.3202"`
}

// DataJudBatchItem is the outcome of one lookup in a bulk request
type DataJudBatchItem struct {
	JobID  string           `json:"job_id" example:"5f0c6a36-6b57-4f43-9d7e-8d5d1c1f2f11"`
	Input  string           `json:"original" example:"0000832-35.2018.4.01.3202"`
	Status string           `json:"status" example:"success"`
	Data   *DataJudResponse `json:"data,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// DataJudBatchResponse is the outcome of a bulk DataJud lookup
type DataJudBatchResponse struct {
	Results    []DataJudBatchItem `json:"results"`
	Total      int                `json:"total" example:"2"`
	Success    int                `json:"success" example:"2"`
	Cached     int                `json:"cached" example:"1"`
	Errors     int                `json:"errors" example:"0"`
	DurationMs int64              `json:"duration_ms" example:"1200"`
	Timestamp  time.Time          `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

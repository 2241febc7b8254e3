package model

import (
	"time"
)

// HealthReport is an uploaded lab report. The document itself is kept as
// base64 alongside the OCR text. Analysis fields start empty and are filled
// in exactly once by the analyze endpoint.
type HealthReport struct {
	ReportID            string                 `json:"report_id"`
	UserID              string                 `json:"user_id"`
	PDFBase64           string                 `json:"pdf_base64,omitempty"`
	ExtractedText       string                 `json:"extracted_text"`
	AIAnalysis          *string                `json:"ai_analysis,omitempty"`
	ParametersExtracted map[string]interface{} `json:"parameters_extracted,omitempty"`
	UploadDate          time.Time              `json:"upload_date"`
}

// AnalysisRequest is the request body for POST /health-reports/analyze.
// The inference credential is supplied by the caller, never stored.
type AnalysisRequest struct {
	ReportID string `json:"report_id"`
	HFAPIKey string `json:"hf_api_key"`
}

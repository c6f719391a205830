package dto

import (
	"strings"
	"time"
)

type DocumentType string

const (
	DocTypeAadhaar        DocumentType = "aadhaar"
	DocTypePAN            DocumentType = "pan"
	DocTypeDrivingLicense DocumentType = "driving_license"
	DocTypeBankStatement  DocumentType = "bank_statement"
	DocTypeSalarySlip     DocumentType = "salary_slip"
	DocTypeGeneric        DocumentType = "generic"
)

// ParseDocumentType maps an incoming type string to a known document type.
// Unknown values fall back to the generic analyzer.
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(strings.ToLower(strings.TrimSpace(s))) {
	case DocTypeAadhaar, DocTypePAN, DocTypeDrivingLicense, DocTypeBankStatement, DocTypeSalarySlip:
		return DocumentType(strings.ToLower(strings.TrimSpace(s)))
	default:
		return DocTypeGeneric
	}
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// ExtractedTextResult is what the OCR capability returns. A failed
// extraction yields a zeroed result with Error set; it never aborts
// the verification pipeline.
type ExtractedTextResult struct {
	Text             string  `json:"text"`
	Confidence       float64 `json:"confidence"`
	WordCount        int     `json:"word_count"`
	LineCount        int     `json:"line_count"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	Error            string  `json:"error,omitempty"`
}

// ImageQualityMetrics holds the quality signals derived from pixel
// statistics of the uploaded document image.
type ImageQualityMetrics struct {
	Width               int       `json:"width"`
	Height              int       `json:"height"`
	DensityDPI          int       `json:"density_dpi"`
	Format              string    `json:"format"`
	CompressionEstimate float64   `json:"compression_estimate"`
	ChannelStdDevs      []float64 `json:"channel_std_devs"`
	IsLowResolution     bool      `json:"is_low_resolution"`
	IsHighlyCompressed  bool      `json:"is_highly_compressed"`
	SuspiciousEditing   bool      `json:"suspicious_editing"`
}

// ImageAnalysisResult converts the quality metrics into fraud signals.
type ImageAnalysisResult struct {
	Metrics         ImageQualityMetrics `json:"metrics"`
	FraudIndicators []string            `json:"fraud_indicators"`
	RiskScore       int                 `json:"risk_score"`
	Error           string              `json:"error,omitempty"`
}

// DocumentAnalysisResult is the output of a single document-type analyzer.
type DocumentAnalysisResult struct {
	ExtractedData map[string]string `json:"extracted_data"`
	Confidence    int               `json:"confidence"`
	IsValid       bool              `json:"is_valid"`
	Checks        map[string]bool   `json:"checks"`
}

// FraudIndicatorReport aggregates text-based, image-based and
// type-specific fraud signals into one document-side risk sub-score.
type FraudIndicatorReport struct {
	Indicators []string  `json:"indicators"`
	Warnings   []string  `json:"warnings"`
	RiskScore  int       `json:"risk_score"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

// VerificationSummary carries the composed validity decision.
type VerificationSummary struct {
	IsValid    bool      `json:"is_valid"`
	Confidence int       `json:"confidence"`
	RiskScore  int       `json:"risk_score"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

type OCRDetails struct {
	Confidence       float64 `json:"confidence"`
	WordCount        int     `json:"word_count"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// VerificationOutcome is returned by the document verification entry
// point. Assessment-level failures are encoded in the fields, never
// raised to the caller.
type VerificationOutcome struct {
	Success         bool                `json:"success"`
	VerificationID  string              `json:"verification_id"`
	DocumentType    DocumentType        `json:"document_type"`
	FileName        string              `json:"file_name"`
	Verification    VerificationSummary `json:"verification"`
	ExtractedData   map[string]string   `json:"extracted_data,omitempty"`
	FraudIndicators []string            `json:"fraud_indicators"`
	Warnings        []string            `json:"warnings"`
	OCRDetails      OCRDetails          `json:"ocr_details"`
	Error           string              `json:"error,omitempty"`
	Timestamp       time.Time           `json:"timestamp"`
}

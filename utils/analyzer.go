package utils

import (
	"fmt"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// AnalyzerFunc analyzes raw OCR text for one document type.
type AnalyzerFunc func(text string) dto.DocumentAnalysisResult

// analyzers maps every known document type to its analyzer. Unknown
// types never reach this table; ParseDocumentType folds them into
// DocTypeGeneric.
var analyzers = map[dto.DocumentType]AnalyzerFunc{
	dto.DocTypeAadhaar:        AnalyzeAadhaarCard,
	dto.DocTypePAN:            AnalyzePANCard,
	dto.DocTypeDrivingLicense: AnalyzeDrivingLicense,
	dto.DocTypeBankStatement:  AnalyzeBankStatement,
	dto.DocTypeSalarySlip:     AnalyzeSalarySlip,
	dto.DocTypeGeneric:        AnalyzeGenericDocument,
}

// AnalyzeDocument dispatches to the analyzer for the given type.
func AnalyzeDocument(docType dto.DocumentType, text string) dto.DocumentAnalysisResult {
	analyze, ok := analyzers[docType]
	if !ok {
		analyze = AnalyzeGenericDocument
	}
	return analyze(text)
}

// AnalyzeGenericDocument is the fallback for unrecognized document
// types: it only judges whether the scan produced readable content.
func AnalyzeGenericDocument(text string) dto.DocumentAnalysisResult {
	hasContent := len(text) > 50

	confidence := 20
	if hasContent {
		confidence = 60
	}

	preview := text
	if len(preview) > 500 {
		preview = preview[:500]
	}

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"textContent": preview,
			"wordCount":   fmt.Sprintf("%d", len(strings.Fields(text))),
		},
		Confidence: confidence,
		IsValid:    hasContent,
		Checks: map[string]bool{
			"hasMinimumContent": hasContent,
			"isReadable":        len(text) > 20,
		},
	}
}

// clampScore bounds a confidence or risk score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// allSameDigit reports whether a numeric identifier consists of one
// repeated digit, a common placeholder pattern on specimen documents.
func allSameDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

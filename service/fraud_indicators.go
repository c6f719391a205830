package service

import (
	"fmt"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// suspiciousWords is the vocabulary whose presence in extracted text
// strongly suggests a tampered or specimen document.
var suspiciousWords = []string{
	"edited", "modified", "photoshop", "fake", "duplicate",
	"sample", "specimen", "copy", "draft", "template", "watermark",
}

// ocrArtifactMarkers are glyph sequences Tesseract emits for
// unrecognizable regions; they point to poor scan quality, not fraud.
var ocrArtifactMarkers = []string{"???", "|||", "□"}

// DetectFraudIndicators merges text-based signals, the image tamper
// heuristics and document-type-specific checks into one document-side
// risk sub-score. Indicators mark likely falsification; warnings mark
// mere quality problems.
func DetectFraudIndicators(text string, imageAnalysis dto.ImageAnalysisResult, docType dto.DocumentType, weights config.ScoringWeights) dto.FraudIndicatorReport {
	indicators := []string{}
	warnings := []string{}
	riskScore := 0

	lowerText := strings.ToLower(text)

	for _, word := range suspiciousWords {
		if strings.Contains(lowerText, word) {
			indicators = append(indicators, fmt.Sprintf("Suspicious text found: %q", word))
			riskScore += weights.SuspiciousWord
		}
	}

	if len(text) < 100 {
		warnings = append(warnings, "Document text seems too short - image quality might be poor")
		riskScore += weights.ShortTextWarning
	}

	for _, marker := range ocrArtifactMarkers {
		if strings.Contains(text, marker) {
			warnings = append(warnings, "Some characters could not be recognized - scan quality issue")
			riskScore += weights.ArtifactWarning
			break
		}
	}

	indicators = append(indicators, imageAnalysis.FraudIndicators...)
	riskScore += imageAnalysis.RiskScore

	if docType == dto.DocTypeAadhaar {
		if strings.Contains(lowerText, "specimen") || strings.Contains(lowerText, "sample") {
			indicators = append(indicators, "Document appears to be a specimen/sample")
			riskScore += weights.SpecimenDocument
		}
	}

	riskScore = clampRiskScore(riskScore)

	return dto.FraudIndicatorReport{
		Indicators: indicators,
		Warnings:   warnings,
		RiskScore:  riskScore,
		RiskLevel:  documentRiskLevel(riskScore, weights),
	}
}

// documentRiskLevel buckets a document-side risk score into the
// 3-tier scale.
func documentRiskLevel(riskScore int, weights config.ScoringWeights) dto.RiskLevel {
	switch {
	case riskScore > weights.DocHighThreshold:
		return dto.RiskHigh
	case riskScore > weights.DocMediumThreshold:
		return dto.RiskMedium
	default:
		return dto.RiskLow
	}
}

func clampRiskScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

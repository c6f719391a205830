package service

import (
	"strings"
	"testing"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/stretchr/testify/assert"
)

func paddedText(body string) string {
	return body + " " + strings.Repeat("regular document content ", 5)
}

func TestDetectFraudIndicatorsSuspiciousWord(t *testing.T) {
	weights := config.DefaultScoringWeights()

	report := DetectFraudIndicators(paddedText("This is a DUPLICATE card"), dto.ImageAnalysisResult{}, dto.DocTypePAN, weights)

	assert.Equal(t, 20, report.RiskScore)
	assert.Len(t, report.Indicators, 1)
	assert.Contains(t, report.Indicators[0], "duplicate")
	assert.Empty(t, report.Warnings)
	assert.Equal(t, dto.RiskLow, report.RiskLevel)
}

func TestDetectFraudIndicatorsShortTextAndArtifacts(t *testing.T) {
	weights := config.DefaultScoringWeights()

	report := DetectFraudIndicators("garbled ??? scan", dto.ImageAnalysisResult{}, dto.DocTypePAN, weights)

	// Short text (10) plus one artifact warning (5); artifact markers
	// are counted once no matter how many kinds appear.
	assert.Equal(t, 15, report.RiskScore)
	assert.Empty(t, report.Indicators)
	assert.Len(t, report.Warnings, 2)
	assert.Equal(t, dto.RiskLow, report.RiskLevel)
}

func TestDetectFraudIndicatorsAadhaarSpecimen(t *testing.T) {
	weights := config.DefaultScoringWeights()
	text := paddedText("GOVERNMENT OF INDIA specimen aadhaar")

	aadhaarReport := DetectFraudIndicators(text, dto.ImageAnalysisResult{}, dto.DocTypeAadhaar, weights)
	panReport := DetectFraudIndicators(text, dto.ImageAnalysisResult{}, dto.DocTypePAN, weights)

	// "specimen" scores 20 as a suspicious word for every type; only
	// Aadhaar adds the extra 30-point specimen indicator.
	assert.Equal(t, 50, aadhaarReport.RiskScore)
	assert.Contains(t, aadhaarReport.Indicators, "Document appears to be a specimen/sample")
	assert.Equal(t, dto.RiskMedium, aadhaarReport.RiskLevel)

	assert.Equal(t, 20, panReport.RiskScore)
	assert.Equal(t, dto.RiskLow, panReport.RiskLevel)
}

func TestDetectFraudIndicatorsMergesImageAnalysis(t *testing.T) {
	weights := config.DefaultScoringWeights()
	imageAnalysis := dto.ImageAnalysisResult{
		FraudIndicators: []string{
			"Suspiciously low resolution - possible screenshot",
			"High compression - possible re-encoding after editing",
		},
		RiskScore: 30,
	}

	report := DetectFraudIndicators(paddedText("clean text"), imageAnalysis, dto.DocTypePAN, weights)

	assert.Equal(t, 30, report.RiskScore)
	assert.Len(t, report.Indicators, 2)
	assert.Equal(t, dto.RiskLow, report.RiskLevel)
}

func TestDetectFraudIndicatorsClampAndLevels(t *testing.T) {
	weights := config.DefaultScoringWeights()

	// Six suspicious words plus a 15-point image score would exceed 100.
	text := paddedText("edited modified photoshop fake duplicate watermark")
	report := DetectFraudIndicators(text, dto.ImageAnalysisResult{RiskScore: 15}, dto.DocTypePAN, weights)

	assert.Equal(t, 100, report.RiskScore)
	assert.Equal(t, dto.RiskHigh, report.RiskLevel)
}

func TestDocumentRiskLevelBoundaries(t *testing.T) {
	weights := config.DefaultScoringWeights()

	assert.Equal(t, dto.RiskHigh, documentRiskLevel(71, weights))
	assert.Equal(t, dto.RiskMedium, documentRiskLevel(70, weights))
	assert.Equal(t, dto.RiskMedium, documentRiskLevel(41, weights))
	assert.Equal(t, dto.RiskLow, documentRiskLevel(40, weights))
	assert.Equal(t, dto.RiskLow, documentRiskLevel(0, weights))
}

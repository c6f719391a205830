package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const genuineAadhaarText = `GOVERNMENT OF INDIA
Unique Identification Authority of India
Ramesh Kumar
DOB: 15/08/1992
MALE
2345 6789 1234
Address: 12 MG Road, Pune, Maharashtra`

func TestAnalyzeAadhaarCardGenuine(t *testing.T) {
	result := AnalyzeAadhaarCard(genuineAadhaarText)

	assert.True(t, result.IsValid)
	assert.GreaterOrEqual(t, result.Confidence, 75)
	assert.True(t, result.Checks["hasValidAadhaarNumber"])
	assert.True(t, result.Checks["hasGovernmentText"])
	assert.True(t, result.Checks["hasUIDText"])
	assert.Equal(t, "234567891234", result.ExtractedData["aadhaarNumber"])
	assert.Equal(t, "15/08/1992", result.ExtractedData["dateOfBirth"])
}

func TestAnalyzeAadhaarCardSentinelNumber(t *testing.T) {
	sentinels := []string{
		"0000 0000 0000",
		"1111 1111 1111",
		"1234 5678 9012",
	}

	for _, number := range sentinels {
		text := "GOVERNMENT OF INDIA\nUnique Identification Authority\nDOB: 01/01/1990\nMALE\n" + number

		result := AnalyzeAadhaarCard(text)

		// A sentinel number fails the number check no matter how many
		// other markers match.
		assert.False(t, result.Checks["hasValidAadhaarNumber"], "number %s should be invalid", number)
	}
}

func TestAnalyzeAadhaarCardMissingNumber(t *testing.T) {
	result := AnalyzeAadhaarCard("GOVERNMENT OF INDIA\nsome unrelated text")

	assert.False(t, result.Checks["hasValidAadhaarNumber"])
	assert.Equal(t, 25, result.Confidence)
	assert.False(t, result.IsValid)
}

func TestAnalyzeAadhaarCardThreshold(t *testing.T) {
	// Number alone (30) plus DOB (15) plus gender (10) crosses 50.
	result := AnalyzeAadhaarCard("2345 6789 1234\nDOB: 15/08/1992\nFEMALE")

	assert.Equal(t, 55, result.Confidence)
	assert.True(t, result.IsValid)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const genuineDLText = `DRIVING LICENCE
MH12 20230456789
TRANSPORT DEPARTMENT
DOB: 15/08/1992
Valid Till: 14/08/2043`

func TestAnalyzeDrivingLicenseGenuine(t *testing.T) {
	result := AnalyzeDrivingLicense(genuineDLText)

	assert.True(t, result.IsValid)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, "MH12 20230456789", result.ExtractedData["licenseNumber"])
	assert.True(t, result.Checks["hasValidLicenseNumber"])
	assert.True(t, result.Checks["hasTransportAuthority"])
}

func TestAnalyzeDrivingLicensePlaceholderSerial(t *testing.T) {
	// An all-same-digit serial is a specimen pattern, not a real licence.
	result := AnalyzeDrivingLicense("DRIVING LICENSE\nMH12 11111111111")

	assert.False(t, result.Checks["hasValidLicenseNumber"])
	assert.False(t, result.IsValid)
	assert.Equal(t, 25, result.Confidence)
}

func TestAnalyzeDrivingLicenseBelowThreshold(t *testing.T) {
	// Marker plus DOB only: 25 + 15 < 60.
	result := AnalyzeDrivingLicense("DRIVING LICENCE\nDOB: 15/08/1992")

	assert.Equal(t, 40, result.Confidence)
	assert.False(t, result.IsValid)
}

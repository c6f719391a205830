package utils

import (
	"regexp"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

var (
	reDLNumber      = regexp.MustCompile(`\b[A-Z]{2}[0-9]{2}[ -]?[0-9]{11}\b`)
	reDLMarker      = regexp.MustCompile(`(?i)DRIVING\s+LICEN[CS]E`)
	reDLValidity    = regexp.MustCompile(`(?i)Valid\s+(Till|Upto|Until)[:\s]*\d{2}[/-]\d{2}[/-]\d{4}`)
	reDLDOB         = regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b`)
	reDLRTO         = regexp.MustCompile(`(?i)\bTRANSPORT\b`)
	reDLSerialDigit = regexp.MustCompile(`[0-9]{11}$`)
)

// AnalyzeDrivingLicense extracts driving licence fields from OCR text
// and scores their plausibility. The 11-digit serial part of the DL
// number is checked against placeholder patterns.
func AnalyzeDrivingLicense(text string) dto.DocumentAnalysisResult {
	upper := strings.ToUpper(text)

	dlNumber := reDLNumber.FindString(upper)
	serial := reDLSerialDigit.FindString(strings.ReplaceAll(strings.ReplaceAll(dlNumber, " ", ""), "-", ""))
	isValidNumber := dlNumber != "" && !allSameDigit(serial)

	hasMarker := reDLMarker.MatchString(text)
	hasValidity := reDLValidity.MatchString(text)
	dob := reDLDOB.FindString(text)
	hasRTO := reDLRTO.MatchString(text)

	confidence := 0
	if isValidNumber {
		confidence += 35
	}
	if hasMarker {
		confidence += 25
	}
	if hasValidity {
		confidence += 15
	}
	if dob != "" {
		confidence += 15
	}
	if hasRTO {
		confidence += 10
	}
	confidence = clampScore(confidence)

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"licenseNumber": dlNumber,
			"dateOfBirth":   dob,
		},
		Confidence: confidence,
		IsValid:    confidence >= 60,
		Checks: map[string]bool{
			"hasValidLicenseNumber": isValidNumber,
			"hasLicenseMarker":      hasMarker,
			"hasValidityDate":       hasValidity,
			"hasTransportAuthority": hasRTO,
		},
	}
}

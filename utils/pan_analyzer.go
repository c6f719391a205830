package utils

import (
	"regexp"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

var (
	rePANNumber     = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	rePANName       = regexp.MustCompile(`(?m)^[A-Z][A-Z ]+$`)
	rePANFatherName = regexp.MustCompile(`(?i)Father['\s]*s?\s*Name[:\s]*([A-Z ]+)`)
	rePANDOB        = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	reIncomeTax     = regexp.MustCompile(`(?i)INCOME\s+TAX\s+DEPARTMENT`)
	reGovtAbbrev    = regexp.MustCompile(`(?i)GOVT\.\s+OF\s+INDIA`)
)

var sentinelPANNumbers = map[string]bool{
	"AAAAA0000A": true,
	"BBBBB1111B": true,
	"SAMPLE123A": true,
}

// AnalyzePANCard extracts PAN card fields from OCR text and scores
// their plausibility.
func AnalyzePANCard(text string) dto.DocumentAnalysisResult {
	pan := rePANNumber.FindString(text)
	isValidPAN := pan != "" && !sentinelPANNumbers[pan]

	dob := rePANDOB.FindString(text)
	hasIncomeTax := reIncomeTax.MatchString(text)
	hasGovt := reGovtAbbrev.MatchString(text)

	// First all-caps line longer than 3 chars is taken as the holder name.
	var name string
	for _, candidate := range rePANName.FindAllString(text, -1) {
		if len(strings.TrimSpace(candidate)) > 3 {
			name = strings.TrimSpace(candidate)
			break
		}
	}

	var fatherName string
	if m := rePANFatherName.FindStringSubmatch(text); len(m) > 1 {
		fatherName = strings.TrimSpace(m[1])
	}

	confidence := 0
	if isValidPAN {
		confidence += 40
	}
	if hasIncomeTax {
		confidence += 30
	}
	if hasGovt {
		confidence += 20
	}
	if dob != "" {
		confidence += 10
	}
	confidence = clampScore(confidence)

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"panNumber":   pan,
			"name":        name,
			"fatherName":  fatherName,
			"dateOfBirth": dob,
		},
		Confidence: confidence,
		IsValid:    confidence >= 60,
		Checks: map[string]bool{
			"hasValidPANNumber": isValidPAN,
			"hasIncomeTaxText":  hasIncomeTax,
			"hasGovernmentText": hasGovt,
			"hasPersonalInfo":   name != "" || dob != "",
		},
	}
}

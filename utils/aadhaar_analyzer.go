package utils

import (
	"regexp"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

var (
	reAadhaarNumber = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
	reAadhaarName   = regexp.MustCompile(`(?m)^[A-Z][a-z]+(?: [A-Z][a-z]+)*$`)
	reAadhaarDOB    = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	reAadhaarGender = regexp.MustCompile(`(?i)(MALE|FEMALE)`)
	reGovtOfIndia   = regexp.MustCompile(`(?i)GOVERNMENT\s+OF\s+INDIA`)
	reUIDAuthority  = regexp.MustCompile(`(?i)Unique\s+Identification\s+Authority`)
	reAadhaarAddr   = regexp.MustCompile(`(?i)Address[:\s]*(.+)`)
)

// Canonical placeholder numbers seen on specimen cards. An Aadhaar
// number built from one repeated digit is treated the same way.
var sentinelAadhaarNumbers = map[string]bool{
	"123456789012": true,
}

// AnalyzeAadhaarCard extracts Aadhaar fields from OCR text and scores
// their plausibility. A sentinel number is a hard fraud signal: the
// number check fails regardless of every other match.
func AnalyzeAadhaarCard(text string) dto.DocumentAnalysisResult {
	number := reAadhaarNumber.FindString(text)
	normalized := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), " ", "")

	isValidNumber := number != "" && !sentinelAadhaarNumbers[normalized] && !allSameDigit(normalized)

	name := reAadhaarName.FindString(text)
	dob := reAadhaarDOB.FindString(text)
	gender := reAadhaarGender.FindString(text)
	hasGovt := reGovtOfIndia.MatchString(text)
	hasUID := reUIDAuthority.MatchString(text)

	var address string
	if m := reAadhaarAddr.FindStringSubmatch(text); len(m) > 1 {
		address = strings.TrimSpace(m[1])
	}

	confidence := 0
	if isValidNumber {
		confidence += 30
	}
	if hasGovt {
		confidence += 25
	}
	if hasUID {
		confidence += 20
	}
	if dob != "" {
		confidence += 15
	}
	if gender != "" {
		confidence += 10
	}
	confidence = clampScore(confidence)

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"aadhaarNumber": normalized,
			"name":          name,
			"dateOfBirth":   dob,
			"gender":        strings.ToUpper(gender),
			"address":       address,
		},
		Confidence: confidence,
		IsValid:    confidence >= 50,
		Checks: map[string]bool{
			"hasValidAadhaarNumber": isValidNumber,
			"hasGovernmentText":     hasGovt,
			"hasUIDText":            hasUID,
			"hasPersonalInfo":       name != "" && dob != "",
		},
	}
}

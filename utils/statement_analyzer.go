package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

var (
	reAccountNumber   = regexp.MustCompile(`(?i)Account\s+No[.:]?\s*(\d{9,18})`)
	reIFSCCode        = regexp.MustCompile(`IFSC[:\s]*([A-Z]{4}0[A-Z0-9]{6})`)
	reBankName        = regexp.MustCompile(`(?i)(HDFC|ICICI|SBI|AXIS|KOTAK|PNB|BOI|CANARA|UNION)\s+BANK`)
	reBalance         = regexp.MustCompile(`(?i)Balance[:\s]*Rs\.?\s*([\d,]+\.?\d*)`)
	reTransactionLine = regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s+.*?\s+([\d,]+\.?\d*)`)
	reHolderName      = regexp.MustCompile(`(?i)Account\s+Holder[:\s]*([A-Z ]+)`)
	reStatementPeriod = regexp.MustCompile(`(?i)Statement\s+Period[:\s]*(\d{2}/\d{2}/\d{4})\s*to\s*(\d{2}/\d{2}/\d{4})`)
)

// AnalyzeBankStatement extracts bank statement fields from OCR text
// and scores their plausibility.
func AnalyzeBankStatement(text string) dto.DocumentAnalysisResult {
	var accountNumber string
	if m := reAccountNumber.FindStringSubmatch(text); len(m) > 1 {
		accountNumber = m[1]
	}

	var ifsc string
	if m := reIFSCCode.FindStringSubmatch(text); len(m) > 1 {
		ifsc = m[1]
	}

	bankName := reBankName.FindString(text)

	var balance string
	if m := reBalance.FindStringSubmatch(text); len(m) > 1 {
		balance = m[1]
	}

	var holder string
	if m := reHolderName.FindStringSubmatch(text); len(m) > 1 {
		holder = strings.TrimSpace(m[1])
	}

	period := reStatementPeriod.FindString(text)
	transactions := reTransactionLine.FindAllString(text, -1)

	confidence := 0
	if accountNumber != "" {
		confidence += 25
	}
	if bankName != "" {
		confidence += 25
	}
	if ifsc != "" {
		confidence += 20
	}
	if balance != "" {
		confidence += 15
	}
	if len(transactions) > 0 {
		confidence += 15
	}
	confidence = clampScore(confidence)

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"accountNumber":    accountNumber,
			"ifscCode":         ifsc,
			"bankName":         bankName,
			"currentBalance":   balance,
			"accountHolder":    holder,
			"transactionCount": fmt.Sprintf("%d", len(transactions)),
			"statementPeriod":  period,
		},
		Confidence: confidence,
		IsValid:    confidence >= 60,
		Checks: map[string]bool{
			"hasAccountNumber": accountNumber != "",
			"hasBankName":      bankName != "",
			"hasIFSC":          ifsc != "",
			"hasTransactions":  len(transactions) > 0,
			"hasBalance":       balance != "",
		},
	}
}

var (
	reSlipMarker    = regexp.MustCompile(`(?i)(SALARY|PAY)\s*SLIP`)
	reEmployeeLabel = regexp.MustCompile(`(?i)Employee\s*(Name)?[:\s]`)
	reNetPay        = regexp.MustCompile(`(?i)Net\s*(Pay|Salary)[:\s]*(Rs\.?)?\s*([\d,]+\.?\d*)`)
	rePayPeriod     = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)[,\s]+\d{4}|\b(0[1-9]|1[0-2])/\d{4}\b`)
	rePFMarker      = regexp.MustCompile(`(?i)\b(PF|UAN|ESI)\b`)
)

// AnalyzeSalarySlip extracts salary slip fields from OCR text and
// scores their plausibility.
func AnalyzeSalarySlip(text string) dto.DocumentAnalysisResult {
	hasMarker := reSlipMarker.MatchString(text)
	hasEmployee := reEmployeeLabel.MatchString(text)
	hasPF := rePFMarker.MatchString(text)
	payPeriod := rePayPeriod.FindString(text)

	var netPay string
	if m := reNetPay.FindStringSubmatch(text); len(m) > 3 {
		netPay = m[3]
	}

	confidence := 0
	if hasMarker {
		confidence += 25
	}
	if hasEmployee {
		confidence += 20
	}
	if netPay != "" {
		confidence += 25
	}
	if payPeriod != "" {
		confidence += 15
	}
	if hasPF {
		confidence += 15
	}
	confidence = clampScore(confidence)

	return dto.DocumentAnalysisResult{
		ExtractedData: map[string]string{
			"netPay":    netPay,
			"payPeriod": payPeriod,
		},
		Confidence: confidence,
		IsValid:    confidence >= 60,
		Checks: map[string]bool{
			"hasSlipMarker":    hasMarker,
			"hasEmployeeLabel": hasEmployee,
			"hasNetPay":        netPay != "",
			"hasPayPeriod":     payPeriod != "",
			"hasStatutoryRefs": hasPF,
		},
	}
}

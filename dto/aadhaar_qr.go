package dto

import "encoding/xml"

// AadhaarQRData represents the XML structure in Aadhaar QR code
// Based on UIDAI's print-letter barcode format
type AadhaarQRData struct {
	XMLName     xml.Name `xml:"PrintLetterBarcodeData"`
	UID         string   `xml:"uid,attr"`
	Name        string   `xml:"name,attr"`
	Gender      string   `xml:"gender,attr"`
	YearOfBirth string   `xml:"yob,attr"`
	DateOfBirth string   `xml:"dob,attr"`
	District    string   `xml:"dist,attr"`
	State       string   `xml:"state,attr"`
	PinCode     string   `xml:"pc,attr"`
}

// GetLast4Digits returns the last 4 digits of the Aadhaar number
func (q *AadhaarQRData) GetLast4Digits() string {
	if len(q.UID) >= 4 {
		return q.UID[len(q.UID)-4:]
	}
	return q.UID
}

// GetDOB returns the date of birth, falling back to year of birth
func (q *AadhaarQRData) GetDOB() string {
	if q.DateOfBirth != "" {
		return q.DateOfBirth
	}
	return q.YearOfBirth
}

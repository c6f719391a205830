package dto

import "time"

// The network-side results keep the camelCase field names of the
// upstream verification responses so downstream consumers of the
// assessment see a stable shape.

// NumberVerificationResult reports whether the carrier confirms the
// phone number belongs to the device that initiated the application.
type NumberVerificationResult struct {
	Success    bool      `json:"success"`
	Verified   bool      `json:"verified"`
	Result     string    `json:"result,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type SimSwapResult struct {
	Success      bool      `json:"success"`
	SwapDetected bool      `json:"swapDetected"`
	LastSwapDate string    `json:"lastSwapDate,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel,omitempty"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type LocationVerificationResult struct {
	Success       bool      `json:"success"`
	LocationMatch bool      `json:"locationMatch"`
	Distance      float64   `json:"distance,omitempty"`
	Accuracy      float64   `json:"accuracy,omitempty"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type DeviceStatusResult struct {
	Success            bool      `json:"success"`
	IsActive           bool      `json:"isActive"`
	ConnectivityStatus string    `json:"connectivityStatus,omitempty"`
	Roaming            bool      `json:"roaming"`
	Error              string    `json:"error,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// NetworkCheckResults collects the four per-branch results. A branch
// that failed still appears here with Success=false.
type NetworkCheckResults struct {
	NumberVerification   NumberVerificationResult   `json:"numberVerification"`
	SimSwapDetection     SimSwapResult              `json:"simSwapDetection"`
	LocationVerification LocationVerificationResult `json:"locationVerification"`
	DeviceStatus         DeviceStatusResult         `json:"deviceStatus"`
}

// ComprehensiveFraudCheck is the fused network-side assessment.
type ComprehensiveFraudCheck struct {
	Success        bool                `json:"success"`
	RiskScore      int                 `json:"riskScore"`
	RiskLevel      RiskLevel           `json:"riskLevel"`
	RiskFactors    []string            `json:"riskFactors"`
	NetworkResults NetworkCheckResults `json:"networkResults"`
	Confidence     float64             `json:"confidence"`
	Error          string              `json:"error,omitempty"`
	Timestamp      time.Time           `json:"timestamp"`
}

// FraudCheckRequest is the input to the comprehensive network check.
type FraudCheckRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// PhoneCheckRequest is the input to the individual network checks.
type PhoneCheckRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	MaxAgeHours int     `json:"max_age_hours,omitempty"`
}

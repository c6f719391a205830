package client

import (
	"context"
	"strings"
	"time"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// MockNokiaClient is a deterministic stand-in for the live provider,
// selected via configuration when no provider credentials exist.
// Behavior is keyed on test markers in the phone number:
//
//	contains "000"  -> number not verified by the carrier
//	ends with "666" -> SIM swap detected two days ago
//	ends with "555" -> location mismatch
//	ends with "888" -> device not reachable
//	ends with "999" -> device roaming
type MockNokiaClient struct{}

func NewMockNokiaClient() *MockNokiaClient {
	return &MockNokiaClient{}
}

func (m *MockNokiaClient) VerifyPhoneNumber(_ context.Context, phoneNumber string) dto.NumberVerificationResult {
	verified := !strings.Contains(phoneNumber, "000")
	result := "TRUE"
	if !verified {
		result = "FALSE"
	}
	return dto.NumberVerificationResult{
		Success:    true,
		Verified:   verified,
		Result:     result,
		Confidence: 0.9,
		Timestamp:  time.Now().UTC(),
	}
}

func (m *MockNokiaClient) CheckSimSwap(_ context.Context, phoneNumber string, _ int) dto.SimSwapResult {
	swapDetected := strings.HasSuffix(phoneNumber, "666")

	result := dto.SimSwapResult{
		Success:      true,
		SwapDetected: swapDetected,
		RiskLevel:    dto.RiskLow,
		Timestamp:    time.Now().UTC(),
	}
	if swapDetected {
		result.RiskLevel = dto.RiskHigh
		result.LastSwapDate = time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	}
	return result
}

func (m *MockNokiaClient) VerifyLocation(_ context.Context, phoneNumber string, _, _, _ float64) dto.LocationVerificationResult {
	match := !strings.HasSuffix(phoneNumber, "555")
	result := dto.LocationVerificationResult{
		Success:       true,
		LocationMatch: match,
		Accuracy:      50,
		Timestamp:     time.Now().UTC(),
	}
	if match {
		result.Distance = 120
	} else {
		result.Distance = 25000
	}
	return result
}

func (m *MockNokiaClient) CheckDeviceStatus(_ context.Context, phoneNumber string) dto.DeviceStatusResult {
	active := !strings.HasSuffix(phoneNumber, "888")

	status := "CONNECTED_SMS"
	if !active {
		status = "NOT_CONNECTED"
	}

	return dto.DeviceStatusResult{
		Success:            true,
		IsActive:           active,
		ConnectivityStatus: status,
		Roaming:            strings.HasSuffix(phoneNumber, "999"),
		Timestamp:          time.Now().UTC(),
	}
}

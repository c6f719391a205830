package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tejaspatil1175/nokiabackend/client"
	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// fakeProvider returns canned results and records the parameters it was
// called with.
type fakeProvider struct {
	number   dto.NumberVerificationResult
	simSwap  dto.SimSwapResult
	location dto.LocationVerificationResult
	device   dto.DeviceStatusResult

	simSwapMaxAge int
}

func (f *fakeProvider) VerifyPhoneNumber(_ context.Context, _ string) dto.NumberVerificationResult {
	return f.number
}

func (f *fakeProvider) CheckSimSwap(_ context.Context, _ string, maxAgeHours int) dto.SimSwapResult {
	f.simSwapMaxAge = maxAgeHours
	return f.simSwap
}

func (f *fakeProvider) VerifyLocation(_ context.Context, _ string, _, _, _ float64) dto.LocationVerificationResult {
	return f.location
}

func (f *fakeProvider) CheckDeviceStatus(_ context.Context, _ string) dto.DeviceStatusResult {
	return f.device
}

func allCleanProvider() *fakeProvider {
	return &fakeProvider{
		number:   dto.NumberVerificationResult{Success: true, Verified: true},
		simSwap:  dto.SimSwapResult{Success: true},
		location: dto.LocationVerificationResult{Success: true, LocationMatch: true},
		device:   dto.DeviceStatusResult{Success: true, IsActive: true},
	}
}

func TestComprehensiveFraudCheckAllClean(t *testing.T) {
	provider := allCleanProvider()
	svc := NewNetworkService(provider, config.DefaultScoringWeights())

	check := svc.ComprehensiveFraudCheck(context.Background(), dto.FraudCheckRequest{PhoneNumber: "+919876543210"})

	require.NotNil(t, check)
	assert.True(t, check.Success)
	assert.Equal(t, 0, check.RiskScore)
	assert.Equal(t, dto.RiskLow, check.RiskLevel)
	assert.Empty(t, check.RiskFactors)
	assert.Equal(t, 1.0, check.Confidence)

	// The comprehensive flow narrows the SIM-swap lookback to 7 days.
	assert.Equal(t, 168, provider.simSwapMaxAge)
}

func TestComprehensiveFraudCheckPartialFailure(t *testing.T) {
	// Three branches fail outright, one succeeds: the check still
	// settles, counts a penalty per failure and erodes confidence only
	// for the failed calls.
	provider := allCleanProvider()
	provider.number = dto.NumberVerificationResult{Success: false, Error: "timeout"}
	provider.simSwap = dto.SimSwapResult{Success: false, Error: "timeout"}
	provider.location = dto.LocationVerificationResult{Success: false, Error: "timeout"}

	svc := NewNetworkService(provider, config.DefaultScoringWeights())
	check := svc.ComprehensiveFraudCheck(context.Background(), dto.FraudCheckRequest{PhoneNumber: "+919876543210"})

	require.NotNil(t, check)
	assert.True(t, check.Success)
	assert.Equal(t, 60, check.RiskScore) // 30 + 20 + 10
	assert.Equal(t, dto.RiskHigh, check.RiskLevel)
	assert.Equal(t, []string{
		"Phone number verification failed",
		"SIM swap check failed",
		"Location verification failed",
	}, check.RiskFactors)
	// 0.7 * 0.8 * 0.9 rounded to two decimals.
	assert.Equal(t, 0.5, check.Confidence)
}

func TestComprehensiveFraudCheckSimSwapScenario(t *testing.T) {
	// The deterministic provider flags numbers ending in 666 as
	// recently swapped.
	svc := NewNetworkService(client.NewMockNokiaClient(), config.DefaultScoringWeights())

	check := svc.ComprehensiveFraudCheck(context.Background(), dto.FraudCheckRequest{PhoneNumber: "+919876543666"})

	require.NotNil(t, check)
	assert.True(t, check.NetworkResults.SimSwapDetection.SwapDetected)
	assert.Contains(t, check.RiskFactors, "Recent SIM swap detected - HIGH FRAUD RISK")
	assert.Equal(t, 40, check.RiskScore)
	assert.GreaterOrEqual(t, len(check.NetworkResults.SimSwapDetection.LastSwapDate), 1)
	assert.Equal(t, dto.RiskMedium, check.RiskLevel)
	assert.Equal(t, 1.0, check.Confidence)
}

func TestCalculateFraudScoreUnfavorableResults(t *testing.T) {
	// Every call succeeds but every answer is unfavorable: penalties
	// accumulate while confidence stays intact.
	svc := NewNetworkService(nil, config.DefaultScoringWeights())
	results := dto.NetworkCheckResults{
		NumberVerification:   dto.NumberVerificationResult{Success: true, Verified: false},
		SimSwapDetection:     dto.SimSwapResult{Success: true, SwapDetected: true},
		LocationVerification: dto.LocationVerificationResult{Success: true, LocationMatch: false},
		DeviceStatus:         dto.DeviceStatusResult{Success: true, IsActive: false},
	}

	score := svc.calculateFraudScore(results)

	assert.Equal(t, 88, score.RiskScore) // 25 + 40 + 15 + 8
	assert.Equal(t, dto.RiskCritical, score.RiskLevel)
	assert.Len(t, score.RiskFactors, 4)
	assert.Equal(t, 1.0, score.Confidence)
}

func TestCalculateFraudScoreRoamingOnly(t *testing.T) {
	svc := NewNetworkService(nil, config.DefaultScoringWeights())
	results := dto.NetworkCheckResults{
		NumberVerification:   dto.NumberVerificationResult{Success: true, Verified: true},
		SimSwapDetection:     dto.SimSwapResult{Success: true},
		LocationVerification: dto.LocationVerificationResult{Success: true, LocationMatch: true},
		DeviceStatus:         dto.DeviceStatusResult{Success: true, IsActive: true, Roaming: true},
	}

	score := svc.calculateFraudScore(results)

	assert.Equal(t, 3, score.RiskScore)
	assert.Equal(t, []string{"Device is roaming (minor risk)"}, score.RiskFactors)
	assert.Equal(t, dto.RiskLow, score.RiskLevel)
}

func TestCalculateFraudScoreClamp(t *testing.T) {
	// Inflated weights push the raw sum past 100; the score is capped.
	weights := config.DefaultScoringWeights()
	weights.NumberFailure = 60
	weights.SimSwapFailure = 60
	svc := NewNetworkService(nil, weights)

	results := dto.NetworkCheckResults{
		NumberVerification: dto.NumberVerificationResult{Success: false},
		SimSwapDetection:   dto.SimSwapResult{Success: false},
		LocationVerification: dto.LocationVerificationResult{
			Success: true, LocationMatch: true,
		},
		DeviceStatus: dto.DeviceStatusResult{Success: true, IsActive: true},
	}

	score := svc.calculateFraudScore(results)

	assert.Equal(t, 100, score.RiskScore)
	assert.Equal(t, dto.RiskCritical, score.RiskLevel)
}

func TestNetworkRiskLevelBoundaries(t *testing.T) {
	svc := NewNetworkService(nil, config.DefaultScoringWeights())

	assert.Equal(t, dto.RiskCritical, svc.networkRiskLevel(80))
	assert.Equal(t, dto.RiskHigh, svc.networkRiskLevel(79))
	assert.Equal(t, dto.RiskHigh, svc.networkRiskLevel(60))
	assert.Equal(t, dto.RiskMedium, svc.networkRiskLevel(59))
	assert.Equal(t, dto.RiskMedium, svc.networkRiskLevel(30))
	assert.Equal(t, dto.RiskLow, svc.networkRiskLevel(29))
}

package service

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/logger"
)

// comprehensiveSimSwapMaxAgeHours narrows the SIM-swap lookback to 7
// days when the check runs as part of the comprehensive assessment.
const comprehensiveSimSwapMaxAgeHours = 168

// NetworkService orchestrates the four telecom-capability checks and
// reduces them into one weighted risk score.
type NetworkService struct {
	provider NetworkProvider
	weights  config.ScoringWeights
}

func NewNetworkService(provider NetworkProvider, weights config.ScoringWeights) *NetworkService {
	return &NetworkService{
		provider: provider,
		weights:  weights,
	}
}

// VerifyPhoneNumber runs the single number-ownership check.
func (s *NetworkService) VerifyPhoneNumber(ctx context.Context, phoneNumber string) dto.NumberVerificationResult {
	return s.provider.VerifyPhoneNumber(ctx, phoneNumber)
}

// CheckSimSwap runs the single SIM-swap recency check.
func (s *NetworkService) CheckSimSwap(ctx context.Context, phoneNumber string, maxAgeHours int) dto.SimSwapResult {
	return s.provider.CheckSimSwap(ctx, phoneNumber, maxAgeHours)
}

// VerifyLocation runs the single location-proximity check.
func (s *NetworkService) VerifyLocation(ctx context.Context, phoneNumber string, latitude, longitude, radius float64) dto.LocationVerificationResult {
	return s.provider.VerifyLocation(ctx, phoneNumber, latitude, longitude, radius)
}

// CheckDeviceStatus runs the single device-liveness check.
func (s *NetworkService) CheckDeviceStatus(ctx context.Context, phoneNumber string) dto.DeviceStatusResult {
	return s.provider.CheckDeviceStatus(ctx, phoneNumber)
}

// ComprehensiveFraudCheck fans out all four checks concurrently and
// waits for every branch to settle. A failed branch is isolated as a
// Success=false result and costs a fixed penalty; siblings are never
// cancelled because of it.
func (s *NetworkService) ComprehensiveFraudCheck(ctx context.Context, req dto.FraudCheckRequest) (check *dto.ComprehensiveFraudCheck) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("comprehensive fraud check panicked", zap.Any("panic", r))
			check = terminalFraudCheck()
		}
	}()

	logger.Info("starting comprehensive fraud check", zap.String("phone_number", req.PhoneNumber))

	var results dto.NetworkCheckResults
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				results.NumberVerification = dto.NumberVerificationResult{Success: false, Error: "API call failed", Timestamp: time.Now().UTC()}
			}
		}()
		results.NumberVerification = s.provider.VerifyPhoneNumber(ctx, req.PhoneNumber)
	}()

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				results.SimSwapDetection = dto.SimSwapResult{Success: false, Error: "API call failed", Timestamp: time.Now().UTC()}
			}
		}()
		results.SimSwapDetection = s.provider.CheckSimSwap(ctx, req.PhoneNumber, comprehensiveSimSwapMaxAgeHours)
	}()

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				results.LocationVerification = dto.LocationVerificationResult{Success: false, Error: "API call failed", Timestamp: time.Now().UTC()}
			}
		}()
		results.LocationVerification = s.provider.VerifyLocation(ctx, req.PhoneNumber, req.Latitude, req.Longitude, 0)
	}()

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				results.DeviceStatus = dto.DeviceStatusResult{Success: false, Error: "API call failed", Timestamp: time.Now().UTC()}
			}
		}()
		results.DeviceStatus = s.provider.CheckDeviceStatus(ctx, req.PhoneNumber)
	}()

	wg.Wait()

	score := s.calculateFraudScore(results)

	logger.Info("comprehensive fraud check completed",
		zap.Int("risk_score", score.RiskScore),
		zap.String("risk_level", string(score.RiskLevel)))

	return &dto.ComprehensiveFraudCheck{
		Success:        true,
		RiskScore:      score.RiskScore,
		RiskLevel:      score.RiskLevel,
		RiskFactors:    score.RiskFactors,
		NetworkResults: results,
		Confidence:     score.Confidence,
		Timestamp:      time.Now().UTC(),
	}
}

type fraudScore struct {
	RiskScore   int
	RiskLevel   dto.RiskLevel
	RiskFactors []string
	Confidence  float64
}

// calculateFraudScore applies the weighted scheme over the settled
// branches. A failed call and an unfavorable result carry distinct
// penalties; only failed calls erode confidence.
func (s *NetworkService) calculateFraudScore(results dto.NetworkCheckResults) fraudScore {
	w := s.weights
	score := 0
	factors := []string{}
	confidence := 1.0

	if !results.NumberVerification.Success {
		score += w.NumberFailure
		factors = append(factors, "Phone number verification failed")
		confidence *= w.NumberFailureConfidence
	} else if !results.NumberVerification.Verified {
		score += w.NumberUnverified
		factors = append(factors, "Phone number not verified by carrier")
	}

	if !results.SimSwapDetection.Success {
		score += w.SimSwapFailure
		factors = append(factors, "SIM swap check failed")
		confidence *= w.SimSwapFailureConfidence
	} else if results.SimSwapDetection.SwapDetected {
		score += w.SimSwapDetected
		factors = append(factors, "Recent SIM swap detected - HIGH FRAUD RISK")
	}

	if !results.LocationVerification.Success {
		score += w.LocationFailure
		factors = append(factors, "Location verification failed")
		confidence *= w.LocationFailureConfidence
	} else if !results.LocationVerification.LocationMatch {
		score += w.LocationMismatch
		factors = append(factors, "Location mismatch detected")
	}

	if !results.DeviceStatus.Success {
		score += w.DeviceFailure
		factors = append(factors, "Device status check failed")
		confidence *= w.DeviceFailureConfidence
	} else if !results.DeviceStatus.IsActive {
		score += w.DeviceInactive
		factors = append(factors, "Device appears inactive")
	} else if results.DeviceStatus.Roaming {
		score += w.DeviceRoaming
		factors = append(factors, "Device is roaming (minor risk)")
	}

	if score > 100 {
		score = 100
	}

	return fraudScore{
		RiskScore:   score,
		RiskLevel:   s.networkRiskLevel(score),
		RiskFactors: factors,
		Confidence:  math.Round(confidence*100) / 100,
	}
}

func (s *NetworkService) networkRiskLevel(score int) dto.RiskLevel {
	switch {
	case score >= s.weights.CriticalThreshold:
		return dto.RiskCritical
	case score >= s.weights.HighThreshold:
		return dto.RiskHigh
	case score >= s.weights.MediumThreshold:
		return dto.RiskMedium
	default:
		return dto.RiskLow
	}
}

func terminalFraudCheck() *dto.ComprehensiveFraudCheck {
	return &dto.ComprehensiveFraudCheck{
		Success:     false,
		RiskScore:   100,
		RiskLevel:   dto.RiskCritical,
		RiskFactors: []string{"Nokia API verification failed"},
		Error:       "comprehensive fraud check failed",
		Timestamp:   time.Now().UTC(),
	}
}

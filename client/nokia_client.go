package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/logger"
)

// DefaultSimSwapMaxAgeHours is the lookback window for direct SIM-swap
// checks (10 days).
const DefaultSimSwapMaxAgeHours = 240

// DefaultLocationRadiusMeters is the verification circle radius when
// the caller does not supply one.
const DefaultLocationRadiusMeters = 10000

const locationMaxAgeSeconds = 3600

// NokiaClient calls the Network-as-Code CAMARA APIs. Every check
// returns a typed result with Success set; transport and provider
// errors degrade into the result instead of propagating.
type NokiaClient struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	tokens     *TokenCache
}

func NewNokiaClient(cfg config.NokiaConfig) *NokiaClient {
	c := &NokiaClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	c.tokens = NewTokenCache(c.fetchToken)
	return c
}

// fetchToken performs the client-credentials grant against the
// provider's token endpoint.
func (c *NokiaClient) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", 0, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if out.AccessToken == "" {
		return "", 0, fmt.Errorf("token endpoint returned an empty access token")
	}

	return out.AccessToken, time.Duration(out.ExpiresIn) * time.Second, nil
}

// VerifyPhoneNumber asks the carrier whether the number belongs to the
// device that originated the request.
func (c *NokiaClient) VerifyPhoneNumber(ctx context.Context, phoneNumber string) dto.NumberVerificationResult {
	var out struct {
		DevicePhoneNumberVerified bool    `json:"devicePhoneNumberVerified"`
		VerificationResult        string  `json:"verificationResult"`
		Confidence                float64 `json:"confidence"`
	}

	// The hash travels in the same request as the plaintext number, so
	// it adds no real privacy; the provider contract expects both fields.
	body := map[string]interface{}{
		"phoneNumber":       phoneNumber,
		"hashedPhoneNumber": hashPhoneNumber(phoneNumber),
	}

	if err := c.post(ctx, "/camara/number-verification/v0/verify", body, &out); err != nil {
		logger.Error("number verification failed", zap.Error(err))
		return dto.NumberVerificationResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	confidence := out.Confidence
	if confidence == 0 {
		confidence = 0.95
	}

	return dto.NumberVerificationResult{
		Success:    true,
		Verified:   out.DevicePhoneNumberVerified,
		Result:     out.VerificationResult,
		Confidence: confidence,
		Timestamp:  time.Now().UTC(),
	}
}

// CheckSimSwap reports whether the SIM was swapped within the last
// maxAgeHours hours.
func (c *NokiaClient) CheckSimSwap(ctx context.Context, phoneNumber string, maxAgeHours int) dto.SimSwapResult {
	if maxAgeHours <= 0 {
		maxAgeHours = DefaultSimSwapMaxAgeHours
	}

	var out struct {
		Swapped  bool   `json:"swapped"`
		SwapDate string `json:"swapDate"`
	}

	body := map[string]interface{}{
		"phoneNumber": phoneNumber,
		"maxAge":      maxAgeHours,
	}

	if err := c.post(ctx, "/camara/sim-swap/v0/check", body, &out); err != nil {
		logger.Error("SIM swap check failed", zap.Error(err))
		return dto.SimSwapResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	riskLevel := dto.RiskLow
	if out.Swapped {
		riskLevel = dto.RiskHigh
	}

	return dto.SimSwapResult{
		Success:      true,
		SwapDetected: out.Swapped,
		LastSwapDate: out.SwapDate,
		RiskLevel:    riskLevel,
		Timestamp:    time.Now().UTC(),
	}
}

// VerifyLocation checks whether the device is inside a circle around
// the applicant's declared coordinates.
func (c *NokiaClient) VerifyLocation(ctx context.Context, phoneNumber string, latitude, longitude, radius float64) dto.LocationVerificationResult {
	if radius <= 0 {
		radius = DefaultLocationRadiusMeters
	}

	var out struct {
		VerificationResult string  `json:"verificationResult"`
		Distance           float64 `json:"distance"`
		Accuracy           float64 `json:"accuracy"`
	}

	body := map[string]interface{}{
		"device": map[string]interface{}{
			"phoneNumber": phoneNumber,
		},
		"area": map[string]interface{}{
			"areaType": "Circle",
			"center": map[string]interface{}{
				"latitude":  latitude,
				"longitude": longitude,
			},
			"radius": radius,
		},
		"maxAge": locationMaxAgeSeconds,
	}

	if err := c.post(ctx, "/camara/location-verification/v0/verify", body, &out); err != nil {
		logger.Error("location verification failed", zap.Error(err))
		return dto.LocationVerificationResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	return dto.LocationVerificationResult{
		Success:       true,
		LocationMatch: out.VerificationResult == "TRUE",
		Distance:      out.Distance,
		Accuracy:      out.Accuracy,
		Timestamp:     time.Now().UTC(),
	}
}

// CheckDeviceStatus reports connectivity and roaming state of the
// device behind the number.
func (c *NokiaClient) CheckDeviceStatus(ctx context.Context, phoneNumber string) dto.DeviceStatusResult {
	var out struct {
		ConnectivityStatus string `json:"connectivityStatus"`
		Roaming            bool   `json:"roaming"`
	}

	body := map[string]interface{}{
		"device": map[string]interface{}{
			"phoneNumber": phoneNumber,
		},
	}

	if err := c.post(ctx, "/camara/device-status/v0/status", body, &out); err != nil {
		logger.Error("device status check failed", zap.Error(err))
		return dto.DeviceStatusResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	return dto.DeviceStatusResult{
		Success:            true,
		IsActive:           out.ConnectivityStatus == "CONNECTED_SMS",
		ConnectivityStatus: out.ConnectivityStatus,
		Roaming:            out.Roaming,
		Timestamp:          time.Now().UTC(),
	}
}

// post issues one bearer-authenticated JSON request and decodes the
// response into out. No retries: a failed call is a failed branch.
func (c *NokiaClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func hashPhoneNumber(phoneNumber string) string {
	sum := sha256.Sum256([]byte(phoneNumber))
	return hex.EncodeToString(sum[:])
}

package service

import (
	"context"

	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// TextExtractor is the OCR capability consumed by the document
// pipeline. Implementations must not fail loudly: extraction problems
// come back as a zeroed result with Error set.
type TextExtractor interface {
	ExtractText(data []byte, fileName string) dto.ExtractedTextResult
}

// NetworkProvider is the telecom-capability surface behind the network
// checks. Every call returns a typed result with Success set; there are
// two implementations, the live CAMARA client and a deterministic
// test double, selected by configuration.
type NetworkProvider interface {
	VerifyPhoneNumber(ctx context.Context, phoneNumber string) dto.NumberVerificationResult
	CheckSimSwap(ctx context.Context, phoneNumber string, maxAgeHours int) dto.SimSwapResult
	VerifyLocation(ctx context.Context, phoneNumber string, latitude, longitude, radius float64) dto.LocationVerificationResult
	CheckDeviceStatus(ctx context.Context, phoneNumber string) dto.DeviceStatusResult
}

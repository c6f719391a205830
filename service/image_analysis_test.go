package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// gradientImage fills each channel with either a horizontal gradient or
// a constant, so tests can steer the per-channel variance directly.
func gradientImage(width, height int, gradientR, gradientG, gradientB bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x % 256)
			c := color.RGBA{R: 128, G: 128, B: 128, A: 255}
			if gradientR {
				c.R = v
			}
			if gradientG {
				c.G = v
			}
			if gradientB {
				c.B = v
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAnalyzeImageQualityCleanScan(t *testing.T) {
	weights := config.DefaultScoringWeights()
	data := encodePNG(t, gradientImage(900, 700, true, true, true))

	result := AnalyzeImageQuality(data, weights)

	assert.Empty(t, result.FraudIndicators)
	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, 900, result.Metrics.Width)
	assert.Equal(t, "png", result.Metrics.Format)
	assert.False(t, result.Metrics.IsLowResolution)
	assert.False(t, result.Metrics.IsHighlyCompressed)
	assert.False(t, result.Metrics.SuspiciousEditing)
}

func TestAnalyzeImageQualityFlatScreenshot(t *testing.T) {
	weights := config.DefaultScoringWeights()
	// Small and uniform: trips the resolution and compression flags,
	// but a fully flat image has equal (zero) channel variances and is
	// not reported as edited.
	data := encodePNG(t, gradientImage(100, 100, false, false, false))

	result := AnalyzeImageQuality(data, weights)

	assert.True(t, result.Metrics.IsLowResolution)
	assert.True(t, result.Metrics.IsHighlyCompressed)
	assert.False(t, result.Metrics.SuspiciousEditing)
	assert.Len(t, result.FraudIndicators, 2)
	assert.Equal(t, 30, result.RiskScore)
}

func TestAnalyzeImageQualityChannelImbalance(t *testing.T) {
	weights := config.DefaultScoringWeights()
	// Two channels vary, one is flat: a zero-against-nonzero variance
	// ratio can only come from channel manipulation.
	data := encodePNG(t, gradientImage(900, 700, true, true, false))

	result := AnalyzeImageQuality(data, weights)

	assert.True(t, result.Metrics.SuspiciousEditing)
	assert.Equal(t, []string{"Inconsistent image properties - possible tampering"}, result.FraudIndicators)
	assert.Equal(t, 15, result.RiskScore)
}

func TestAnalyzeImageQualityUndecodable(t *testing.T) {
	weights := config.DefaultScoringWeights()

	result := AnalyzeImageQuality([]byte("not an image"), weights)

	assert.Equal(t, 25, result.RiskScore)
	assert.Equal(t, []string{"Failed to analyze image quality"}, result.FraudIndicators)
	assert.Equal(t, "Image analysis failed", result.Error)
}

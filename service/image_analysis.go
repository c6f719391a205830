package service

import (
	"bytes"
	"image"
	"math"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
)

// Resolutions below these bounds suggest a screenshot rather than a
// scanned document.
const (
	minDocumentWidth  = 800
	minDocumentHeight = 600
)

const defaultDensityDPI = 72

// AnalyzeImageQuality derives tamper heuristics from pixel statistics:
// a low-resolution flag, a compression estimate, and a cross-channel
// variance-ratio check. A buffer that cannot be decoded degrades to a
// fixed 25-point result instead of failing the verification.
func AnalyzeImageQuality(data []byte, weights config.ScoringWeights) dto.ImageAnalysisResult {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return dto.ImageAnalysisResult{
			FraudIndicators: []string{"Failed to analyze image quality"},
			RiskScore:       25,
			Error:           "Image analysis failed",
		}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	stdDevs := channelStdDevs(img)
	compression := estimateImageQuality(stdDevs)

	metrics := dto.ImageQualityMetrics{
		Width:               width,
		Height:              height,
		DensityDPI:          defaultDensityDPI,
		Format:              format,
		CompressionEstimate: compression,
		ChannelStdDevs:      stdDevs,
		IsLowResolution:     width < minDocumentWidth || height < minDocumentHeight,
		IsHighlyCompressed:  compression < 50,
		SuspiciousEditing:   detectSuspiciousEditing(stdDevs),
	}

	indicators := []string{}
	if metrics.IsLowResolution {
		indicators = append(indicators, "Suspiciously low resolution - possible screenshot")
	}
	if metrics.IsHighlyCompressed {
		indicators = append(indicators, "High compression - possible re-encoding after editing")
	}
	if metrics.SuspiciousEditing {
		indicators = append(indicators, "Inconsistent image properties - possible tampering")
	}

	return dto.ImageAnalysisResult{
		Metrics:         metrics,
		FraudIndicators: indicators,
		RiskScore:       len(indicators) * weights.ImageFlagRisk,
	}
}

// channelStdDevs computes the per-channel standard deviation over a
// sampled pixel grid. Large images are strided down to keep the scan
// bounded.
func channelStdDevs(img image.Image) []float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	stepX := width / 512
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / 512
	if stepY < 1 {
		stepY = 1
	}

	var sum, sumSq [3]float64
	var count float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, _ := img.At(x, y).RGBA()
			channels := [3]float64{float64(r >> 8), float64(g >> 8), float64(b >> 8)}
			for i, v := range channels {
				sum[i] += v
				sumSq[i] += v * v
			}
			count++
		}
	}

	stdDevs := make([]float64, 3)
	if count == 0 {
		return stdDevs
	}
	for i := 0; i < 3; i++ {
		mean := sum[i] / count
		variance := sumSq[i]/count - mean*mean
		if variance < 0 {
			variance = 0
		}
		stdDevs[i] = math.Sqrt(variance)
	}
	return stdDevs
}

// estimateImageQuality maps average channel variance to a 0..100
// quality estimate. Heavily compressed or flat images score low.
func estimateImageQuality(stdDevs []float64) float64 {
	if len(stdDevs) == 0 {
		return 0
	}
	var total float64
	for _, s := range stdDevs {
		total += s
	}
	avg := total / float64(len(stdDevs))
	return math.Min(100, avg*2)
}

// detectSuspiciousEditing flags a max/min channel std-dev ratio above
// 3, which indicates the channels were not produced by one capture.
func detectSuspiciousEditing(stdDevs []float64) bool {
	if len(stdDevs) == 0 {
		return false
	}
	maxStd, minStd := stdDevs[0], stdDevs[0]
	for _, s := range stdDevs[1:] {
		if s > maxStd {
			maxStd = s
		}
		if s < minStd {
			minStd = s
		}
	}
	if minStd == 0 {
		return maxStd > 0
	}
	return maxStd/minStd > 3
}

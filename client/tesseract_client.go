package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/logger"
)

// TesseractClient is the live OCR capability. Extraction failures are
// absorbed into a zeroed result with the error attached; the document
// pipeline keeps running on whatever text came out.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractText runs Tesseract over the document bytes and returns the
// recognized text with an averaged word-level confidence.
func (tc *TesseractClient) ExtractText(data []byte, fileName string) dto.ExtractedTextResult {
	start := time.Now()

	tempFile, err := tc.createTempFile(data, fileName)
	if err != nil {
		return failedExtraction(start, fmt.Errorf("failed to create temp file: %w", err))
	}
	defer os.Remove(tempFile)

	text, confidence, err := tc.extractTextAndQuality(tempFile)
	if err != nil {
		return failedExtraction(start, err)
	}

	text = strings.TrimSpace(text)

	return dto.ExtractedTextResult{
		Text:             text,
		Confidence:       confidence,
		WordCount:        len(strings.Fields(text)),
		LineCount:        countLines(text),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

func (tc *TesseractClient) createTempFile(data []byte, fileName string) (string, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		ext = ".png"
	}

	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := tempFile.Write(data); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

func (tc *TesseractClient) extractTextAndQuality(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage("eng"); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	// Word bounding boxes carry the per-word confidence
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return text, 0, nil
	}

	var totalConf float64
	var count int
	for _, box := range boxes {
		totalConf += box.Confidence
		count++
	}

	avgConf := 0.0
	if count > 0 {
		avgConf = totalConf / float64(count)
	}

	return text, avgConf, nil
}

func failedExtraction(start time.Time, err error) dto.ExtractedTextResult {
	logger.Warn("OCR extraction failed", zap.Error(err))
	return dto.ExtractedTextResult{
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Error:            err.Error(),
	}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"image"
	"image/png"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/config"
	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/logger"
	"github.com/Tejaspatil1175/nokiabackend/utils"
)

// minEmbeddedTextLength is the threshold below which a PDF is treated
// as scanned and sent through OCR instead of its embedded text layer.
const minEmbeddedTextLength = 20

// DocumentService runs the sequential document verification pipeline:
// image quality analysis, OCR, type-specific pattern analysis, fraud
// indicator aggregation, and the composed overall result.
type DocumentService struct {
	extractor    TextExtractor
	pdfProcessor PDFProcessor
	weights      config.ScoringWeights
}

func NewDocumentService(extractor TextExtractor, pdfProcessor PDFProcessor, weights config.ScoringWeights) *DocumentService {
	return &DocumentService{
		extractor:    extractor,
		pdfProcessor: pdfProcessor,
		weights:      weights,
	}
}

// VerifyDocument assesses one uploaded document. It never returns an
// error: every failure mode degrades into the outcome's fields.
func (s *DocumentService) VerifyDocument(ctx context.Context, data []byte, documentType, fileName string) (outcome *dto.VerificationOutcome) {
	docType := dto.ParseDocumentType(documentType)

	// The pipeline absorbs component failures individually; a panic
	// here is an orchestration bug and maps to the terminal shape.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("document verification panicked", zap.Any("panic", r))
			outcome = terminalDocumentOutcome(docType, fileName)
		}
	}()

	logger.Info("starting document verification",
		zap.String("document_type", string(docType)),
		zap.String("file_name", fileName),
		zap.Int("size", len(data)))

	imageBytes, ocr := s.prepareDocument(data, fileName)

	imageAnalysis := AnalyzeImageQuality(imageBytes, s.weights)
	documentAnalysis := utils.AnalyzeDocument(docType, ocr.Text)
	fraudAnalysis := DetectFraudIndicators(ocr.Text, imageAnalysis, docType, s.weights)

	if docType == dto.DocTypeAadhaar {
		s.applyAadhaarQRCheck(imageBytes, &documentAnalysis, &fraudAnalysis)
	}

	overall := s.calculateOverallResult(ocr, documentAnalysis, fraudAnalysis)

	logger.Info("document verification completed",
		zap.String("document_type", string(docType)),
		zap.Bool("is_valid", overall.IsValid),
		zap.Int("risk_score", overall.RiskScore))

	return &dto.VerificationOutcome{
		Success:         true,
		VerificationID:  uuid.NewString(),
		DocumentType:    docType,
		FileName:        fileName,
		Verification:    overall,
		ExtractedData:   documentAnalysis.ExtractedData,
		FraudIndicators: fraudAnalysis.Indicators,
		Warnings:        fraudAnalysis.Warnings,
		OCRDetails: dto.OCRDetails{
			Confidence:       ocr.Confidence,
			WordCount:        ocr.WordCount,
			ProcessingTimeMs: ocr.ProcessingTimeMs,
		},
		Timestamp: time.Now().UTC(),
	}
}

// prepareDocument normalizes the upload into pixel bytes for the
// tamper heuristics plus an extraction result for the analyzers. PDFs
// use their embedded text layer when present and fall back to OCR of
// the first page image otherwise.
func (s *DocumentService) prepareDocument(data []byte, fileName string) ([]byte, dto.ExtractedTextResult) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return data, s.extractor.ExtractText(data, fileName)
	}

	var imageBytes []byte
	pageImage, err := s.pdfProcessor.FirstPageImage(data)
	if err != nil {
		logger.Warn("failed to extract page image from PDF", zap.Error(err))
	} else {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, pageImage); err == nil {
			imageBytes = buf.Bytes()
		}
	}

	embedded, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		logger.Warn("PDF text extraction failed", zap.Error(err))
	}

	embedded = strings.TrimSpace(embedded)
	if len(embedded) >= minEmbeddedTextLength {
		// Text-layer PDF: the layer is authoritative, not an OCR guess.
		return imageBytes, dto.ExtractedTextResult{
			Text:       embedded,
			Confidence: 100,
			WordCount:  len(strings.Fields(embedded)),
			LineCount:  len(strings.Split(embedded, "\n")),
		}
	}

	if imageBytes == nil {
		return nil, dto.ExtractedTextResult{Error: "no extractable content in PDF"}
	}
	return imageBytes, s.extractor.ExtractText(imageBytes, "page.png")
}

// applyAadhaarQRCheck cross-checks the printed Aadhaar number against
// the UIDAI QR payload when the image carries a decodable QR code. A
// contradiction is a hard fraud signal; QR absence is neutral.
func (s *DocumentService) applyAadhaarQRCheck(imageBytes []byte, documentAnalysis *dto.DocumentAnalysisResult, fraudAnalysis *dto.FraudIndicatorReport) {
	qrData, err := decodeAadhaarQR(imageBytes)
	if err != nil {
		return
	}

	printed := documentAnalysis.ExtractedData["aadhaarNumber"]
	if len(printed) < 4 || qrData.UID == "" {
		return
	}

	if printed[len(printed)-4:] == qrData.GetLast4Digits() {
		documentAnalysis.Checks["qrMatchesPrintedNumber"] = true
		documentAnalysis.Confidence = clampRiskScore(documentAnalysis.Confidence + 10)
		return
	}

	documentAnalysis.Checks["qrMatchesPrintedNumber"] = false
	fraudAnalysis.Indicators = append(fraudAnalysis.Indicators, "Aadhaar QR data does not match printed number")
	fraudAnalysis.RiskScore = clampRiskScore(fraudAnalysis.RiskScore + s.weights.QRMismatch)
	fraudAnalysis.RiskLevel = documentRiskLevel(fraudAnalysis.RiskScore, s.weights)
}

func decodeAadhaarQR(imageBytes []byte) (*dto.AadhaarQRData, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, err
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil, err
	}

	var qrData dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(result.GetText()), &qrData); err != nil {
		return nil, err
	}
	return &qrData, nil
}

// calculateOverallResult fuses OCR confidence, pattern-analysis
// confidence and the fraud sub-score into the final validity decision.
// Confidence drops by FraudPenaltyRate per risk point, floored at 0.
func (s *DocumentService) calculateOverallResult(ocr dto.ExtractedTextResult, documentAnalysis dto.DocumentAnalysisResult, fraudAnalysis dto.FraudIndicatorReport) dto.VerificationSummary {
	baseConfidence := math.Min(ocr.Confidence, float64(documentAnalysis.Confidence))

	fraudPenalty := float64(fraudAnalysis.RiskScore) * s.weights.FraudPenaltyRate
	adjustedConfidence := math.Max(0, baseConfidence-fraudPenalty)

	isValid := documentAnalysis.IsValid &&
		fraudAnalysis.RiskScore < s.weights.DocHighThreshold &&
		adjustedConfidence > float64(s.weights.MinValidConfidence)

	return dto.VerificationSummary{
		IsValid:    isValid,
		Confidence: int(math.Round(adjustedConfidence)),
		RiskScore:  fraudAnalysis.RiskScore,
		RiskLevel:  fraudAnalysis.RiskLevel,
	}
}

func terminalDocumentOutcome(docType dto.DocumentType, fileName string) *dto.VerificationOutcome {
	return &dto.VerificationOutcome{
		Success:      false,
		DocumentType: docType,
		FileName:     fileName,
		Verification: dto.VerificationSummary{
			IsValid:    false,
			Confidence: 0,
			RiskScore:  100,
			RiskLevel:  dto.RiskCritical,
		},
		FraudIndicators: []string{},
		Warnings:        []string{},
		Error:           "document verification failed",
		Timestamp:       time.Now().UTC(),
	}
}

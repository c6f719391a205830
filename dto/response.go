package dto

import (
	"errors"
	"mime/multipart"
	"strings"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DocumentVerifyRequest represents the incoming document upload.
type DocumentVerifyRequest struct {
	File         *multipart.FileHeader `form:"file" binding:"required"`
	DocumentType string                `form:"document_type" binding:"required"`
}

// Validate performs basic validation on the request
func (r *DocumentVerifyRequest) Validate() error {
	if r.File == nil {
		return errors.New("file is required")
	}
	if r.DocumentType == "" {
		return errors.New("document_type is required")
	}

	filename := strings.ToLower(r.File.Filename)
	validExtensions := []string{".pdf", ".png", ".jpg", ".jpeg", ".webp"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(filename, ext) {
			return nil
		}
	}
	return errors.New("invalid file type. Supported: PDF, PNG, JPG, WEBP")
}

package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/logger"
	"github.com/Tejaspatil1175/nokiabackend/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// VerifyDocument handles the POST /documents/verify endpoint
func (h *DocumentHandler) VerifyDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "File is required", err)
		return
	}

	request := &dto.DocumentVerifyRequest{
		File:         fileHeader,
		DocumentType: c.PostForm("document_type"),
	}
	if err := request.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	outcome := h.documentService.VerifyDocument(c.Request.Context(), data, request.DocumentType, fileHeader.Filename)
	c.JSON(http.StatusOK, outcome)
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		logger.Warn("request rejected", zap.String("message", message), zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "VERIFICATION_FAILED",
		Message: message,
		Code:    statusCode,
	})
}

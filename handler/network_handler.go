package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tejaspatil1175/nokiabackend/dto"
	"github.com/Tejaspatil1175/nokiabackend/service"
)

type NetworkHandler struct {
	networkService *service.NetworkService
}

func NewNetworkHandler(networkService *service.NetworkService) *NetworkHandler {
	return &NetworkHandler{
		networkService: networkService,
	}
}

// FraudCheck handles the POST /network/fraud-check endpoint
func (h *NetworkHandler) FraudCheck(c *gin.Context) {
	var req dto.FraudCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "phone_number is required", err)
		return
	}

	result := h.networkService.ComprehensiveFraudCheck(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}

// VerifyNumber handles the POST /network/verify-number endpoint
func (h *NetworkHandler) VerifyNumber(c *gin.Context) {
	var req dto.PhoneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "phone_number is required", err)
		return
	}

	result := h.networkService.VerifyPhoneNumber(c.Request.Context(), req.PhoneNumber)
	c.JSON(http.StatusOK, result)
}

// CheckSimSwap handles the POST /network/sim-swap endpoint
func (h *NetworkHandler) CheckSimSwap(c *gin.Context) {
	var req dto.PhoneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "phone_number is required", err)
		return
	}

	result := h.networkService.CheckSimSwap(c.Request.Context(), req.PhoneNumber, req.MaxAgeHours)
	c.JSON(http.StatusOK, result)
}

// VerifyLocation handles the POST /network/verify-location endpoint
func (h *NetworkHandler) VerifyLocation(c *gin.Context) {
	var req dto.PhoneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "phone_number is required", err)
		return
	}

	result := h.networkService.VerifyLocation(c.Request.Context(), req.PhoneNumber, req.Latitude, req.Longitude, req.Radius)
	c.JSON(http.StatusOK, result)
}

// DeviceStatus handles the POST /network/device-status endpoint
func (h *NetworkHandler) DeviceStatus(c *gin.Context) {
	var req dto.PhoneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "phone_number is required", err)
		return
	}

	result := h.networkService.CheckDeviceStatus(c.Request.Context(), req.PhoneNumber)
	c.JSON(http.StatusOK, result)
}

package handler

import (
	"log"
	"net/http"

	"newsroom/internal/model"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req model.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: " + err.Error()})
		return
	}

	if _, err := h.service.SubmitMessage(c.Request.Context(), req); err != nil {
		log.Printf("Error saving contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message received successfully"})
}

// RegisterContactRoutes registers contact routes
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitMessage)
}

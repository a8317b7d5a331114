package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookcall/models"
	"bookcall/services/leads"
)

// LeadsHandler exposes the lead-capture endpoints.
type LeadsHandler struct {
	Svc    leads.LeadsService
	Logger *zap.Logger
}

// NewLeadsHandler constructs a LeadsHandler.
func NewLeadsHandler(svc leads.LeadsService, logger *zap.Logger) *LeadsHandler {
	return &LeadsHandler{Svc: svc, Logger: logger}
}

// SubmitContact handles POST /api/leads/contact.
func (h *LeadsHandler) SubmitContact(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	msg, err := h.Svc.SubmitContactMessage(c.Request.Context(), models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	})
	if err != nil {
		h.Logger.Warn("SubmitContact rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID})
}

// Subscribe handles POST /api/leads/subscribe.
func (h *LeadsHandler) Subscribe(c *gin.Context) {
	var body struct {
		Email  string `json:"email" binding:"required"`
		Source string `json:"source"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	sub, err := h.Svc.Subscribe(c.Request.Context(), body.Email, body.Source)
	if err != nil {
		h.Logger.Warn("Subscribe rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

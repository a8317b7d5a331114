package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "bookcall/database/repository/booking"
	leadsRepo "bookcall/database/repository/leads"
	"bookcall/utils"
)

// AdminHandler exposes read-only admin views over bookings and leads.
type AdminHandler struct {
	Bookings bookingRepo.BookingRepository
	Leads    leadsRepo.LeadsRepository
	Logger   *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(bookings bookingRepo.BookingRepository, leads leadsRepo.LeadsRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Leads: leads, Logger: logger}
}

func limitFrom(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 0 {
		return 50
	}
	return limit
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.List(c.Request.Context(), limitFrom(c))
	if err != nil {
		h.Logger.Error("ListBookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListLeads handles GET /api/admin/leads.
func (h *AdminHandler) ListLeads(c *gin.Context) {
	ctx := c.Request.Context()
	limit := limitFrom(c)

	contacts, err := h.Leads.ListContactMessages(ctx, limit)
	if err != nil {
		h.Logger.Error("ListLeads failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list contact messages", err.Error())
		return
	}
	subscribers, err := h.Leads.ListSubscribers(ctx, limit)
	if err != nil {
		h.Logger.Error("ListLeads failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list subscribers", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contactMessages": contacts,
		"subscribers":     subscribers,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookcall/models"
	"bookcall/services/scheduler"
)

// SchedulerHandler exposes the scheduling session API.
type SchedulerHandler struct {
	Svc    scheduler.SchedulerService
	Clock  scheduler.Clock
	Logger *zap.Logger
}

// NewSchedulerHandler constructs a SchedulerHandler.
func NewSchedulerHandler(svc scheduler.SchedulerService, clock scheduler.Clock, logger *zap.Logger) *SchedulerHandler {
	if clock == nil {
		clock = scheduler.SystemClock{}
	}
	return &SchedulerHandler{Svc: svc, Clock: clock, Logger: logger}
}

// sessionView augments the raw session with the rendered month grid so the
// frontend never does calendar math.
type sessionView struct {
	*models.SchedulingSession
	Grid models.MonthGrid `json:"grid"`
}

func (h *SchedulerHandler) view(session *models.SchedulingSession) sessionView {
	return sessionView{
		SchedulingSession: session,
		Grid:              scheduler.BuildMonthGrid(session.Cursor, session.SelectedDate, h.Clock.Now()),
	}
}

// statusFor maps scheduler error codes onto HTTP statuses.
func statusFor(err error) int {
	switch scheduler.CodeOf(err) {
	case scheduler.CodeSessionNotFound:
		return http.StatusNotFound
	case scheduler.CodeValidation, scheduler.CodePastDate:
		return http.StatusBadRequest
	case scheduler.CodeFlow, scheduler.CodeSlot, scheduler.CodeSubmitInFlight:
		return http.StatusConflict
	case scheduler.CodeDispatch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *SchedulerHandler) respondError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// StartSession handles POST /api/scheduler/session.
func (h *SchedulerHandler) StartSession(c *gin.Context) {
	session, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		h.respondError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, h.view(session))
}

// GetSession handles GET /api/scheduler/session/:sessionID.
func (h *SchedulerHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// Navigate handles POST /api/scheduler/session/:sessionID/navigate.
func (h *SchedulerHandler) Navigate(c *gin.Context) {
	var body struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	session, err := h.Svc.Navigate(c.Request.Context(), c.Param("sessionID"), scheduler.Direction(body.Direction))
	if err != nil {
		h.respondError(c, "Navigate", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// SelectDate handles POST /api/scheduler/session/:sessionID/date.
func (h *SchedulerHandler) SelectDate(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	session, err := h.Svc.SelectDate(c.Request.Context(), c.Param("sessionID"), body.Date)
	if err != nil {
		h.respondError(c, "SelectDate", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// GetSlots handles GET /api/scheduler/session/:sessionID/slots. The frontend
// polls this while the slot status is "loading".
func (h *SchedulerHandler) GetSlots(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "GetSlots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": session.SlotStatus,
		"date":   session.SlotsFor,
		"slots":  session.Slots,
	})
}

// SelectTime handles POST /api/scheduler/session/:sessionID/time.
func (h *SchedulerHandler) SelectTime(c *gin.Context) {
	var body struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	session, err := h.Svc.SelectTime(c.Request.Context(), c.Param("sessionID"), body.Time)
	if err != nil {
		h.respondError(c, "SelectTime", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// Back handles POST /api/scheduler/session/:sessionID/back.
func (h *SchedulerHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "Back", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// Submit handles POST /api/scheduler/session/:sessionID/submit.
func (h *SchedulerHandler) Submit(c *gin.Context) {
	var contact models.ContactDetails
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	confirmation, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"), contact)
	if err != nil {
		h.respondError(c, "Submit", err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Reset handles POST /api/scheduler/session/:sessionID/reset.
func (h *SchedulerHandler) Reset(c *gin.Context) {
	session, err := h.Svc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, "Reset", err)
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

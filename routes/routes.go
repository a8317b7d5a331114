package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookcall/config"
	"bookcall/handlers"
	"bookcall/middleware"
)

// HandlerBundle aggregates the handlers the router needs.
type HandlerBundle struct {
	Scheduler *handlers.SchedulerHandler
	Leads     *handlers.LeadsHandler
	Admin     *handlers.AdminHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(corsMiddleware())

	RegisterHealthRoute(r)
	RegisterSchedulerRoutes(r, hb)
	RegisterLeadsRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BookCall"})
	})
}

// RegisterSchedulerRoutes sets up the scheduling session endpoints.
func RegisterSchedulerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/scheduler")
	{
		api.POST("/session", hb.Scheduler.StartSession)
		api.GET("/session/:sessionID", hb.Scheduler.GetSession)
		api.POST("/session/:sessionID/navigate", hb.Scheduler.Navigate)
		api.POST("/session/:sessionID/date", hb.Scheduler.SelectDate)
		api.GET("/session/:sessionID/slots", hb.Scheduler.GetSlots)
		api.POST("/session/:sessionID/time", hb.Scheduler.SelectTime)
		api.POST("/session/:sessionID/back", hb.Scheduler.Back)
		api.POST("/session/:sessionID/submit", hb.Scheduler.Submit)
		api.POST("/session/:sessionID/reset", hb.Scheduler.Reset)
	}
}

// RegisterLeadsRoutes sets up the lead-capture endpoints.
func RegisterLeadsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("/contact", hb.Leads.SubmitContact)
		api.POST("/subscribe", hb.Leads.Subscribe)
	}
}

// RegisterAdminRoutes sets up the JWT-guarded admin read endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/bookings", hb.Admin.ListBookings)
		api.GET("/leads", hb.Admin.ListLeads)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	origins := config.AppConfig.AllowedOrigins
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(cfg)
}

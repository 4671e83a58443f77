package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-api/internal/config"
	"github.com/campushub/campus-api/internal/handler"
	"github.com/campushub/campus-api/internal/middleware"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentDashboardHandler *handler.StudentDashboardHandler
	FacultyDashboardHandler *handler.FacultyDashboardHandler
	ComplaintHandler        *handler.ComplaintHandler
	NoticeHandler           *handler.NoticeHandler
	EventHandler            *handler.EventHandler
	PollHandler             *handler.PollHandler
	NotificationHandler     *handler.NotificationHandler
	ProfileHandler          *handler.ProfileHandler
	ChatbotHandler          *handler.ChatbotHandler
	ClubHandler             *handler.ClubHandler
	LostItemHandler         *handler.LostItemHandler
	PlacementHandler        *handler.PlacementHandler
	HostelComplaintHandler  *handler.HostelComplaintHandler
	JWTMiddleware           fiber.Handler
	ChatbotRateLimit        fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	authed := api.Group("", jwtMiddleware)

	// Shared surface: any authenticated role.
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(authed)
	}
	if deps.PollHandler != nil {
		deps.PollHandler.Register(authed)
	}
	if deps.ClubHandler != nil {
		deps.ClubHandler.Register(authed)
	}
	if deps.LostItemHandler != nil {
		deps.LostItemHandler.Register(authed)
	}
	if deps.PlacementHandler != nil {
		deps.PlacementHandler.Register(authed)
	}

	// Student surface.
	student := authed.Group("/student", middleware.RequireRole(models.RoleStudent))
	if deps.StudentDashboardHandler != nil {
		deps.StudentDashboardHandler.Register(student)
	}
	if deps.ComplaintHandler != nil {
		deps.ComplaintHandler.RegisterStudent(student)
	}
	if deps.HostelComplaintHandler != nil {
		deps.HostelComplaintHandler.RegisterStudent(student)
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(student)
	}
	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(student)
	}

	// Faculty surface. Admins pass the role check too.
	faculty := authed.Group("/faculty", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin))
	if deps.FacultyDashboardHandler != nil {
		deps.FacultyDashboardHandler.Register(faculty)
	}
	if deps.ComplaintHandler != nil {
		deps.ComplaintHandler.RegisterFaculty(faculty)
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(faculty)
		deps.NoticeHandler.RegisterManage(faculty)
	}
	if deps.EventHandler != nil {
		deps.EventHandler.Register(faculty)
		deps.EventHandler.RegisterFaculty(faculty)
	}
	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(faculty)
	}

	// Admin surface.
	admin := authed.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	if deps.EventHandler != nil {
		deps.EventHandler.RegisterAdmin(admin)
	}
	if deps.PollHandler != nil {
		deps.PollHandler.RegisterAdmin(admin)
	}
	if deps.ClubHandler != nil {
		deps.ClubHandler.RegisterAdmin(admin)
	}
	if deps.LostItemHandler != nil {
		deps.LostItemHandler.RegisterAdmin(admin)
	}
	if deps.PlacementHandler != nil {
		deps.PlacementHandler.RegisterAdmin(admin)
	}
	if deps.HostelComplaintHandler != nil {
		deps.HostelComplaintHandler.RegisterAdmin(admin)
	}

	// Chatbot widget, rate limited per user.
	if deps.ChatbotHandler != nil {
		chatbot := authed.Group("/chatbot")
		if deps.ChatbotRateLimit != nil {
			chatbot.Use(deps.ChatbotRateLimit)
		}
		deps.ChatbotHandler.Register(chatbot)
	}
}

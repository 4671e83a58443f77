package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/config"
	"github.com/campushub/campus-api/internal/database"
	"github.com/campushub/campus-api/internal/handler"
	"github.com/campushub/campus-api/internal/middleware"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
	"github.com/campushub/campus-api/internal/router"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/pkg/ai"
	cloud "github.com/campushub/campus-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.HostelComplaint{},
		&models.Notice{},
		&models.Notification{},
		&models.Event{},
		&models.EventHistory{},
		&models.Poll{},
		&models.PollOption{},
		&models.Club{},
		&models.LostItem{},
		&models.PlacementDrive{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNATS(cfg.NATSURL)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	storage, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	assistant, err := buildAssistant(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create assistant: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	hostelRepo := repository.NewHostelComplaintRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	pollRepo := repository.NewPollRepository(db)
	clubRepo := repository.NewClubRepository(db)
	lostItemRepo := repository.NewLostItemRepository(db)
	placementRepo := repository.NewPlacementRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, redisClient, cfg.NotificationChannel, natsConn, logger)
	studentDashboardService := service.NewStudentDashboardService(userRepo, complaintRepo, noticeRepo, notificationRepo, logger)
	facultyDashboardService := service.NewFacultyDashboardService(userRepo, complaintRepo, logger)
	complaintService := service.NewComplaintService(complaintRepo, notificationService, validate, logger)
	hostelService := service.NewHostelComplaintService(hostelRepo, notificationService, validate, logger)
	noticeService := service.NewNoticeService(noticeRepo, validate, logger)
	eventService := service.NewEventService(eventRepo, validate, logger)
	pollService := service.NewPollService(pollRepo, validate, logger)
	clubService := service.NewClubService(clubRepo, validate, logger)
	lostItemService := service.NewLostItemService(lostItemRepo, validate, logger)
	placementService := service.NewPlacementService(placementRepo, validate, logger)
	profileService := service.NewProfileService(userRepo, storage, validate, cfg.AvatarMaxSizeMB, logger)
	chatbotService := service.NewChatbotService(assistant, validate, logger)

	rootCtx, stopServices := context.WithCancel(context.Background())
	defer stopServices()
	notificationService.Start(rootCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentDashboardHandler: handler.NewStudentDashboardHandler(studentDashboardService, logger),
		FacultyDashboardHandler: handler.NewFacultyDashboardHandler(facultyDashboardService, logger),
		ComplaintHandler:        handler.NewComplaintHandler(complaintService, logger),
		NoticeHandler:           handler.NewNoticeHandler(noticeService, logger),
		EventHandler:            handler.NewEventHandler(eventService, logger),
		PollHandler:             handler.NewPollHandler(pollService, logger),
		NotificationHandler:     handler.NewNotificationHandler(notificationService, logger, 30*time.Second),
		ProfileHandler:          handler.NewProfileHandler(profileService, logger),
		ChatbotHandler:          handler.NewChatbotHandler(chatbotService, logger),
		ClubHandler:             handler.NewClubHandler(clubService, logger),
		LostItemHandler:         handler.NewLostItemHandler(lostItemService, logger),
		PlacementHandler:        handler.NewPlacementHandler(placementService, logger),
		HostelComplaintHandler:  handler.NewHostelComplaintHandler(hostelService, logger),
		JWTMiddleware:           middleware.JWTProtected(cfg.JWTSecret),
		ChatbotRateLimit:        middleware.RateLimit("chatbot", cfg.ChatbotRateLimit, cfg.ChatbotRateWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func buildAssistant(cfg config.Config, logger zerolog.Logger) (ai.Assistant, error) {
	switch cfg.AIProvider {
	case "anthropic":
		return ai.NewAnthropicAssistant(ai.AnthropicConfig{APIKey: cfg.AnthropicAPIKey})
	default:
		return ai.NewOpenAIAssistant(ai.OpenAIConfig{APIKey: cfg.OpenAIAPIKey, Logger: logger})
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

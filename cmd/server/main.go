package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anotoria/Zenith-AI/configs"
	"github.com/anotoria/Zenith-AI/internal/api/handlers"
	"github.com/anotoria/Zenith-AI/internal/api/middleware"
	job "github.com/anotoria/Zenith-AI/internal/jobs"
	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/queue"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	notifier := notify.New(notify.DefaultTTL)

	userRepo := repository.NewUserRepository(seedUsers())
	articleRepo := repository.NewArticleRepository(nil)
	postRepo := repository.NewPostRepository(nil)
	profileRepo := repository.NewSocialProfileRepository(seedProfiles())
	trailRepo := repository.NewTrailRepository(nil)
	savedItemRepo := repository.NewSavedItemRepository()
	apiKeyRepo := repository.NewApiKeyRepository()

	var enqueuer service.PostEnqueuer
	var asynqClient *asynq.Client
	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	if cfg.RedisURI != "" {
		asynqClient = asynq.NewClient(redisConn)
		defer asynqClient.Close()
		enqueuer = queue.NewEnqueuer(asynqClient)
	}

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, notifier)
	r2Service := service.NewR2Service(*cfg)
	generationService := service.NewGenerationService(cfg.AI)
	facebookService := service.NewFacebookService(*cfg)
	articleService := service.NewArticleService(articleRepo, generationService, *r2Service)
	syncService := service.NewSyncService(articleRepo, postRepo, profileRepo, generationService, notifier)
	schedulerService := service.NewSchedulerService(articleRepo, postRepo, enqueuer, notifier, rand.New(rand.NewSource(time.Now().UnixNano())))
	postService := service.NewPostService(postRepo, enqueuer, notifier)
	profileService := service.NewProfileService(*cfg, profileRepo, notifier)
	trailService := service.NewTrailService(trailRepo, notifier)
	savedItemService := service.NewSavedItemService(savedItemRepo, notifier)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Get("/users", user.ListUsers)
	api.Post("/users/permission", user.TogglePermission)
	api.Post("/users/status", user.ToggleStatus)
	api.Post("/user/profile", user.UpdateProfile)

	article := handlers.NewArticleHandler(articleService, syncService, schedulerService)
	api.Get("/articles", article.ListArticles)
	api.Post("/articles/sync", article.SyncAndAutoPost)
	api.Post("/articles/:id/schedule", article.SchedulePost)
	api.Post("/articles/:id/generate", article.GenerateCopies)
	api.Post("/articles/:id/copy", article.SelectCopy)
	api.Post("/articles/:id/image", article.SelectImage)
	api.Post("/articles/:id/upload", article.UploadImages)

	post := handlers.NewPostHandler(postService)
	api.Post("/posts/create", post.CreatePost)
	api.Post("/posts/update", post.UpdatePost)
	api.Get("/posts", post.ListPosts)

	profile := handlers.NewProfileHandler(profileService)
	api.Get("/profiles", profile.ListProfiles)
	api.Post("/profiles/toggle", profile.ToggleConnection)
	api.Post("/profiles/facebook", profile.UpdateFacebookConfig)
	api.Post("/profiles/wordpress", profile.UpdateWordpressConfig)

	trail := handlers.NewTrailHandler(trailService)
	api.Get("/trails", trail.ListTrails)
	api.Post("/trails/save", trail.SaveTrail)

	saved := handlers.NewSavedItemHandler(savedItemService)
	api.Get("/saved", saved.ListItems)
	api.Post("/saved/create", saved.SaveItem)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	notification := handlers.NewNotificationHandler(notifier)
	api.Get("/notifications", notification.GetNotification)

	// cron jobs
	refreshTokenJob := job.NewTokenRefreshJob(profileRepo, facebookService)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", refreshTokenJob.RefreshTokens)
	c.Start()

	if cfg.RedisURI != "" {
		queueW := queue.NewQueue(postRepo, profileRepo, facebookService, notifier)

		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app)
}

func seedProfiles() []models.SocialProfile {
	return []models.SocialProfile{
		{
			ID:       "sp_facebook",
			Platform: models.PlatformFacebook,
			Facebook: &models.FacebookConfig{},
		},
		{
			ID:        "sp_wordpress",
			Platform:  models.PlatformWordpress,
			Wordpress: &models.WordpressConfig{},
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:       "u_admin",
			Email:    "admin@zenith.ai",
			Name:     "Admin",
			Role:     "admin",
			IsActive: true,
			Permissions: models.Permissions{
				CanPublish:      true,
				CanManageTrails: true,
				CanManageUsers:  true,
			},
			CreatedAt: time.Now(),
		},
	}
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}

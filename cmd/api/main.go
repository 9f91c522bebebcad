package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sudoLimin/OurCollege/internal/config"
	"github.com/sudoLimin/OurCollege/internal/database"
	"github.com/sudoLimin/OurCollege/internal/middleware"
	"github.com/sudoLimin/OurCollege/internal/modules/chat"
	"github.com/sudoLimin/OurCollege/internal/modules/group"
	"github.com/sudoLimin/OurCollege/internal/modules/material"
	"github.com/sudoLimin/OurCollege/internal/modules/notification"
	"github.com/sudoLimin/OurCollege/internal/modules/stats"
	"github.com/sudoLimin/OurCollege/internal/modules/task"
	"github.com/sudoLimin/OurCollege/internal/modules/user"
	jwtsvc "github.com/sudoLimin/OurCollege/internal/pkg/jwt"
	"github.com/sudoLimin/OurCollege/internal/realtime"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&group.Member{},
		&task.Task{},
		&chat.Message{},
		&material.StudyMaterial{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := realtime.NewHub()

	userRepo := user.NewRepository(db)
	groupRepo := group.NewRepository(db)
	taskRepo := task.NewRepository(db)
	chatRepo := chat.NewRepository(db)
	materialRepo := material.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Fan-out: broadcast on the hub, then drop a copy in every group
	// member's mailbox.
	notifier := notification.NewNotifier(notificationRepo, groupRepo, hub)

	userService := user.NewService(userRepo, j)
	groupService := group.NewService(groupRepo, userRepo, notifier)
	taskService := task.NewService(taskRepo, notifier)
	chatService := chat.NewService(chatRepo, notifier)
	materialService := material.NewService(materialRepo, notifier, cfg.UploadDir)
	statsService := stats.NewService(db)

	userHandler := user.NewHandler(userService)
	groupHandler := group.NewHandler(groupService)
	taskHandler := task.NewHandler(taskService)
	chatHandler := chat.NewHandler(chatService)
	materialHandler := material.NewHandler(materialService)
	statsHandler := stats.NewHandler(statsService)
	notificationHandler := notification.NewHandler(notificationRepo)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.CORS(), middleware.ErrorLogger())

	// Public surface: account creation, login and the notification socket.
	root := r.Group("/")
	user.RegisterRoutes(root, userHandler)
	r.GET("/ws/notify", realtime.Handler(hub))

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(j))
	{
		user.RegisterProtectedRoutes(protected, userHandler)
		group.RegisterRoutes(protected, groupHandler)
		task.RegisterRoutes(protected, taskHandler)
		chat.RegisterRoutes(protected, chatHandler)
		material.RegisterRoutes(protected, materialHandler)
		stats.RegisterRoutes(protected, statsHandler)
		notification.RegisterRoutes(protected, notificationHandler)
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

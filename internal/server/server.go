package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/auth"
	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/cache"
	"github.com/ankitmishra16/Blogger/internal/config"
	"github.com/ankitmishra16/Blogger/internal/database"
	"github.com/ankitmishra16/Blogger/internal/handlers"
	"github.com/ankitmishra16/Blogger/internal/middleware"
	"github.com/ankitmishra16/Blogger/internal/notify"
	"github.com/ankitmishra16/Blogger/internal/storage"
)

type Server struct {
	db      database.Service
	tokens  *auth.TokenService
	handler *handlers.Handler
}

// NewServer wires every component and returns a configured HTTP server.
// Redis and MinIO are optional; the app degrades to uncached queries and a
// disabled upload endpoint when they are not configured.
func NewServer() *http.Server {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var topCache *cache.Cache
	if cfg.RedisAddr != "" {
		topCache, err = cache.New(context.Background(), cfg.RedisAddr, cfg.RedisPassword, time.Minute)
		if err != nil {
			log.Printf("redis unavailable, running uncached: %v", err)
			topCache = nil
		}
	}

	var images *storage.ImageStore
	if cfg.MinioEndpoint != "" {
		images, err = storage.NewImageStore(context.Background(),
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
	}

	var sender notify.Sender = notify.LogSender{}
	if cfg.TwilioAccountSID != "" {
		sender = notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.ResetTTL, cfg.SessionTTL)
	svc := blog.NewService(db.DB(), topCache)
	handler := handlers.NewHandler(svc, tokens, sender, images, cfg.BaseURL)

	newServer := &Server{
		db:      db,
		tokens:  tokens,
		handler: handler,
	}

	router := newServer.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Stored uploads
	r.GET("/files/:filename", s.handler.Upload.ServeFile)

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)
		api.POST("/reset_password", s.handler.Auth.RequestReset)
		api.POST("/reset_password/:token", s.handler.Auth.ResetPassword)

		// Public reads; optional auth so owners see their drafts and their
		// comments carry their name.
		optional := api.Group("")
		optional.Use(middleware.OptionalAuth(s.tokens))
		{
			optional.GET("/home", s.handler.Post.Home)
			optional.GET("/posts/:id", s.handler.Post.GetPost)
			optional.GET("/posts/:id/comments", s.handler.Comment.GetComments)
			optional.POST("/posts/:id/comments", s.handler.Comment.CreateComment)
			optional.GET("/search", s.handler.Post.Search)
			optional.GET("/users/:username/posts", s.handler.User.Posts)
			optional.GET("/users/:username/posts/published", s.handler.User.PublishedPosts)
			optional.GET("/users/:username/comments", s.handler.User.Comments)
		}

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(s.tokens))
		{
			protected.GET("/me", s.handler.Auth.GetMe)
			protected.PUT("/me", s.handler.Auth.UpdateMe)

			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)
			protected.POST("/posts/:id/publish", s.handler.Post.PublishPost)
			protected.POST("/posts/:id/like", s.handler.Post.LikePost)
			protected.POST("/posts/:id/unlike", s.handler.Post.UnlikePost)

			protected.GET("/users/:username/posts/unpublished", s.handler.User.UnpublishedPosts)

			protected.POST("/upload", s.handler.Upload.Upload)
		}
	}

	return r
}

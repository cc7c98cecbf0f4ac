package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging

	"contact_system/internal/api"        // Custom package for API handlers
	"contact_system/internal/config"     // Custom package for configuration
	"contact_system/internal/middleware" // Custom package for middleware
	"contact_system/internal/repository/mysql"
	"contact_system/internal/service"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm" // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(gormmysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the contact read cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories and services
	userRepo := mysql.NewUserRepository(db)
	contactRepo := mysql.NewContactRepository(db)
	addressRepo := mysql.NewAddressRepository(db)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo, redisClient)
	addressService := service.NewAddressService(contactRepo, addressRepo)

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public routes
	r.POST("/api/users", api.RegisterHandler(userService))    // Registration endpoint
	r.POST("/api/users/login", api.LoginHandler(userService)) // Login endpoint

	// Authenticated routes (protected by the session token middleware)
	authGroup := r.Group("/api")
	authGroup.Use(middleware.TokenAuthMiddleware(userRepo))

	// User routes
	authGroup.GET("/users/current", api.CurrentUserHandler(userService))
	authGroup.PATCH("/users/current", api.UpdateUserHandler(userService))
	authGroup.DELETE("/users/logout", api.LogoutHandler(userService))

	// Contact routes
	authGroup.POST("/contacts", api.CreateContactHandler(contactService))
	authGroup.GET("/contacts", api.SearchContactHandler(contactService))
	authGroup.GET("/contacts/:contactId", api.GetContactHandler(contactService))
	authGroup.PUT("/contacts/:contactId", api.UpdateContactHandler(contactService))
	authGroup.DELETE("/contacts/:contactId", api.DeleteContactHandler(contactService))

	// Address routes
	authGroup.POST("/contacts/:contactId/addresses", api.CreateAddressHandler(addressService))
	authGroup.GET("/contacts/:contactId/addresses/:addressId", api.GetAddressHandler(addressService))
	authGroup.PUT("/contacts/:contactId/addresses/:addressId", api.UpdateAddressHandler(addressService))
	authGroup.DELETE("/contacts/:contactId/addresses/:addressId", api.DeleteAddressHandler(addressService))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

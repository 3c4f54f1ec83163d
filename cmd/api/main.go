package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

func main() {
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}
	if os.Getenv("JWT_SECRET") == "" {
		logger.Warn("JWT_SECRET is not set, token issuance will fail")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "doctors_portal"
	}
	db := client.Database(dbName)
	logger.Info("Connected to MongoDB", zap.String("database", dbName))

	// --- Stores, Services, Handlers ---
	st := store.NewMongoStore(db)
	notificationSvc := services.NewNotificationService()
	h := handlers.NewHandler(st, notificationSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from Doctors Portal")
	})

	// Public routes
	r.GET("/service", h.GetServices)
	r.GET("/available", h.GetAvailable)
	r.POST("/booking", h.CreateBooking)
	r.PUT("/user/:email", h.UpsertUser)

	// Routes behind the authentication gate
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/user", h.GetUsers)
		authed.GET("/admin/:email", h.GetAdminStatus)
		authed.GET("/booking", h.GetBookings)

		// Routes additionally behind the admin gate. Granting the admin role
		// lives at /user/:email/role because gin's router cannot hold a
		// literal segment next to the :email param used by the upsert route.
		admin := authed.Group("/")
		admin.Use(middleware.AdminMiddleware(st.Users))
		{
			admin.PUT("/user/:email/role", h.MakeAdmin)
			admin.GET("/doctor", h.GetDoctors)
			admin.POST("/doctor", h.CreateDoctor)
			admin.DELETE("/doctor/:email", h.DeleteDoctor)
		}
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("Starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

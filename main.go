// main.go - Entry point for the Go video folder backend server

package main // Declares the package name

import ( // Import required packages
	"go-video-backend/config"     // Project config management
	"go-video-backend/database"   // Database connection and setup
	"go-video-backend/handlers"   // HTTP handlers for API endpoints
	"go-video-backend/middleware" // Middleware (token authentication)

	"github.com/charmbracelet/log" // Structured logging
	"github.com/gin-gonic/gin"     // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and open the database
	cfg := config.Load() // Load configuration (port, DB path, media dir)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("database connection failed", "err", err) // If error, log and exit
	}
	log.Info("database ready", "path", cfg.DBPath)

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// Public routes (no authentication required)
	r.POST("/api/register", handlers.Register) // Public route: user registration
	r.POST("/api/login", handlers.Login)       // Public route: user login

	// Resource routes: GET is public, mutating methods need a bearer token
	api := r.Group("/api")         // Route group for the resource endpoints
	api.Use(middleware.TokenAuth()) // Apply method-sensitive token authentication
	{
		folders := api.Group("/folders")
		{
			folders.GET("", handlers.ListFolders)          // List all folders as trees
			folders.POST("", handlers.CreateFolder)        // Create a folder
			folders.GET("/:id", handlers.GetFolder)        // Retrieve one folder tree
			folders.PUT("/:id", handlers.UpdateFolder)     // Full update
			folders.PATCH("/:id", handlers.PatchFolder)    // Partial update
			folders.DELETE("/:id", handlers.DeleteFolder)  // Delete (cascades)
		}

		videos := api.Group("/videos")
		{
			videos.GET("", handlers.ListVideos)                  // List all videos
			videos.POST("", handlers.CreateVideo)                // Create a video
			videos.GET("/:id", handlers.GetVideo)                // Retrieve one video
			videos.PUT("/:id", handlers.UpdateVideo)             // Full update
			videos.PATCH("/:id", handlers.PatchVideo)            // Partial update
			videos.DELETE("/:id", handlers.DeleteVideo)          // Delete
			videos.POST("/:id/upload", handlers.UploadVideoFile) // Attach an uploaded file
		}
	}

	// STEP 3: Start the web server
	log.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}

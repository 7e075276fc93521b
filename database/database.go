// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-video-backend/config" // Project config
	"go-video-backend/models" // Domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

// Connect opens the database and runs migrations. Foreign-key enforcement is
// switched on in the DSN so that the ON DELETE CASCADE constraints on
// folders, videos and tokens actually fire — without the pragma SQLite
// silently ignores them.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate the domain models (create tables and constraints if needed)
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Folder{},
		&models.Video{},
	); err != nil {
		return err
	}

	// Create default staff user if configured
	return createDefaultStaff()
}

// createDefaultStaff - Creates a default staff account if configured and none exists
// This uses environment variables for security instead of hardcoded credentials
func createDefaultStaff() error {
	cfg := config.Load() // Load configuration

	// Only seed when explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	// Check if any staff user exists
	var count int64
	DB.Model(&models.User{}).Where("is_staff = ?", true).Count(&count)

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		staff := models.User{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: string(hash),
			IsStaff:  true,
		}

		if err := DB.Create(&staff).Error; err != nil {
			return err
		}
	}

	return nil
}

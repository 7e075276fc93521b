// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a user in the database
	ID       uint   `gorm:"primaryKey"`      // Unique user ID (primary key)
	Username string `gorm:"unique;not null"` // Login name (must be unique, cannot be null)
	Email    string `gorm:"unique;not null"` // User's email (must be unique, cannot be null)
	Password string `gorm:"not null"`        // Hashed password (cannot be null)
	IsStaff  bool   `gorm:"default:false"`   // Staff/teacher flag (returned to clients, not a write gate)
}

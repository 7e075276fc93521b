// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"go-video-backend/database" // Database connection
	"go-video-backend/models"   // User and Token models
	"net/http"                  // HTTP status codes
	"unicode"                   // For password strength checks

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Opaque token key generation
	"golang.org/x/crypto/bcrypt" // Password hashing
)

type RegisterInput struct { // Struct for registration input
	Username  string `json:"username" binding:"required"`    // Login name (required)
	Email     string `json:"email" binding:"required,email"` // Email (required, well-formed)
	Password  string `json:"password" binding:"required"`    // Password (required)
	Password2 string `json:"password2" binding:"required"`   // Password confirmation (required)
}

type LoginInput struct { // Struct for login input
	Username string `json:"username" binding:"required"` // Login name (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// validatePassword applies the platform's password strength rules: a minimum
// length and a "not entirely numeric" check. Returns a message for the
// password field, or "" when the password is acceptable.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "This password is too short. It must contain at least 8 characters."
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return "This password is entirely numeric."
	}
	return ""
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}
	if input.Password != input.Password2 { // Confirmation must match
		c.JSON(http.StatusBadRequest, gin.H{"password": "Passwords do not match."})
		return
	}
	if msg := validatePassword(input.Password); msg != "" { // Strength check
		c.JSON(http.StatusBadRequest, gin.H{"password": msg})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	user := models.User{Username: input.Username, Email: input.Email, Password: string(hash)}
	if err := database.DB.Create(&user).Error; err != nil { // Save user to DB
		// Uniqueness violations on username/email land here
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{ // Created user summary
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}
	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil { // Find user
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	// Issue-or-reuse: the first login creates the token, later logins return
	// the same key. No rotation, no expiry.
	var token models.Token
	err := database.DB.
		Where(models.Token{UserID: user.ID}).
		Attrs(models.Token{Key: uuid.NewString()}).
		FirstOrCreate(&token).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token.Key, "is_staff": user.IsStaff})
}

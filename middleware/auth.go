// auth.go - Bearer-token authentication and method-sensitive access policy
//
// Authentication Flow:
// 1. Extract the bearer key from the Authorization header
// 2. Look the key up in the tokens table (tokens never expire)
// 3. Store the owning user in the context for handlers
//
// Authorization Flow:
// 1. GET requests are public: no token needed
// 2. POST/PUT/PATCH/DELETE require a valid token
// 3. The staff flag is NOT checked: any authenticated user may write

package middleware // Declares the package name

import ( // Import required packages
	"go-video-backend/database" // Database connection (for token lookup)
	"go-video-backend/models"   // Token and User models
	"net/http"                  // HTTP methods and status codes
	"strings"                   // String operations (for header parsing)

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// UserKey is the context key under which the authenticated user is stored.
const UserKey = "user"

// Permit is the whole access policy as a pure function: given the request
// method and whether the caller presented a valid token, may the request
// proceed? Read methods are open to everyone; every mutating method needs
// an authenticated caller. Kept framework-free so it can be tested alone.
func Permit(method string, authenticated bool) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true // Reads are public
	default:
		return authenticated // Writes require a valid token
	}
}

// TokenAuth - Returns a Gin middleware enforcing the Permit policy.
//
// How it works:
// 1. No Authorization header: the caller is anonymous; reads pass, writes get 401
// 2. A header is present: it must be a valid "Bearer <key>" on ANY method —
//    presenting a broken credential is an error even on a read
// 3. On success the token's user is stored in the context for handlers
func TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")
		if header == "" { // Anonymous caller
			if !Permit(c.Request.Method, false) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			c.Next() // Public read, continue without a user
			return
		}

		// STEP 2: A credential was presented, so it has to check out
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		key := strings.TrimPrefix(header, "Bearer ")

		var token models.Token
		if err := database.DB.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Store the authenticated user in the context for later use
		c.Set(UserKey, token.User)
		c.Next() // Authentication successful
	}
}

// CurrentUser returns the authenticated user stored by TokenAuth, or nil for
// an anonymous (public read) request.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, ok := value.(models.User)
	if !ok {
		return nil
	}
	return &user
}

package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"timetrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const LoginPath = "/accounts/login"

// RedirectToLogin sends the caller to the login page, keeping the
// originally requested path for the post-login redirect. Wrong-role
// access gets the same answer as unauthenticated access so gated routes
// are not discoverable.
func RedirectToLogin(c *gin.Context) {
	target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// Auth resolves the session token from the access_token cookie or a
// bearer header and loads the principal into the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			RedirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			RedirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			RedirectToLogin(c)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			RedirectToLogin(c)
			return
		}

		roleNum, ok := claims["role"].(float64)
		if !ok || !domain.Role(roleNum).Valid() {
			RedirectToLogin(c)
			return
		}

		departmentID, _ := claims["department_id"].(string)

		c.Set("user_id", userID)
		c.Set("role", int(roleNum))
		c.Set("department_id", departmentID)

		c.Next()
	}
}

// Role reads the authenticated role out of the gin context.
func Role(c *gin.Context) domain.Role {
	return domain.Role(c.GetInt("role"))
}

// RequireGroup gates a route group on the role table. Must run after
// Auth.
func RequireGroup(group domain.RouteGroup) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		if !role.Valid() || !domain.Authorized(role, group) {
			RedirectToLogin(c)
			return
		}
		c.Next()
	}
}

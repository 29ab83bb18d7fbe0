package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"roombook/backend/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context.
// Returns false (with a 401 already written) when the JWT middleware did
// not inject it; callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetUserName extracts the display name injected by the JWT middleware;
// empty when absent.
func GetUserName(c *gin.Context) string {
	if v, exists := c.Get("user_name"); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// MustGetTokenInfo extracts the token's JTI and expiry for logout.
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jtiV, exists := c.Get("token_jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	jti, ok := jtiV.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	expV, exists := c.Get("token_exp")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	exp, ok := expV.(time.Time)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	return jti, exp, true
}

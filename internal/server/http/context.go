package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/server/users"
)

// currentUserKey is the gin context key under which the request gate binds
// the authenticated user.
const currentUserKey = "currentUser"

func bindUser(c *gin.Context, u *users.User) {
	c.Set(currentUserKey, u)
}

// CurrentUser returns the identity bound by the request gate, if any.
func CurrentUser(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*users.User)
	return u, ok
}

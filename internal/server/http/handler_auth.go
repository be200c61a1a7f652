package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/common"
)

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	_, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.String(http.StatusConflict, "Username already taken")
			return
		}
		s.logger.Error(c.Request.Context(), "register failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.String(http.StatusOK, "User registered")
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.String(http.StatusUnauthorized, "Invalid username or password")
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// checkUsername reports availability; lookup failures read as "free" so the
// signup form never blocks on a transient error.
func (s *Server) checkUsername(c *gin.Context) {
	exists, err := s.users.UsernameExists(c.Request.Context(), c.Query("username"))
	if err != nil {
		s.logger.Error(c.Request.Context(), "username check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (s *Server) checkEmail(c *gin.Context) {
	exists, err := s.users.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		s.logger.Error(c.Request.Context(), "email check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

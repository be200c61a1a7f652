package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) imageUploadURL(c *gin.Context) {
	key, url, err := s.images.UploadURL(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "upload url presign failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

func (s *Server) imageDownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.String(http.StatusBadRequest, "Missing key")
		return
	}

	url, err := s.images.DownloadURL(c.Request.Context(), key)
	if err != nil {
		s.logger.Error(c.Request.Context(), "download url presign failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

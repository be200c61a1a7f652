package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/server/categories"
)

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, categories.Names())
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/common"
)

func (s *Server) listFavorites(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	list, err := s.favorites.List(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "favorite list failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, toFavoriteDTOs(list))
}

func (s *Server) toggleFavorite(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	recipeID, err := strconv.ParseInt(c.Query("recipeId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid recipeId")
		return
	}

	view, removed, err := s.favorites.Toggle(c.Request.Context(), user.ID, recipeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		s.logger.Error(c.Request.Context(), "favorite toggle failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	if removed {
		c.String(http.StatusOK, "Unfav recipe")
		return
	}

	c.JSON(http.StatusOK, toFavoriteDTO(view))
}

func (s *Server) isFavorite(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid recipeId")
		return
	}

	fav, err := s.favorites.IsFavorite(c.Request.Context(), user.ID, recipeID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "favorite lookup failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, fav)
}

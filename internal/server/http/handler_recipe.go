package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/common"
)

const notOwnerMessage = "You are not allowed to modify a recipe that isn't yours."

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func (s *Server) listRecipes(c *gin.Context) {
	list, err := s.recipes.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "recipe list failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, toRecipeDTOs(list))
}

func (s *Server) latestRecipes(c *gin.Context) {
	n, _ := strconv.Atoi(c.Query("n"))
	list, err := s.recipes.Latest(c.Request.Context(), n)
	if err != nil {
		s.logger.Error(c.Request.Context(), "latest recipes failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, toRecipeDTOs(list))
}

func (s *Server) getRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := s.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		s.logger.Error(c.Request.Context(), "recipe lookup failed", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, toRecipeDTO(recipe))
}

func (s *Server) createRecipe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := req.validate()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.recipes.Create(c.Request.Context(), user, req.toModel(category))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateTitle),
			errors.Is(err, common.ErrMissingIngredients),
			errors.Is(err, common.ErrUnknownCategory):
			c.String(http.StatusBadRequest, err.Error())
		default:
			s.logger.Error(c.Request.Context(), "recipe create failed", "error", err)
			c.String(http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, toRecipeDTO(created))
}

func (s *Server) updateRecipe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := req.validate()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.recipes.Update(c.Request.Context(), user.Username, id, req.toModel(category))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, common.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": notOwnerMessage})
		case errors.Is(err, common.ErrDuplicateTitle),
			errors.Is(err, common.ErrMissingIngredients),
			errors.Is(err, common.ErrUnknownCategory):
			c.String(http.StatusBadRequest, err.Error())
		default:
			s.logger.Error(c.Request.Context(), "recipe update failed", "error", err)
			c.String(http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, toRecipeDTO(updated))
}

func (s *Server) deleteRecipe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := s.recipes.Delete(c.Request.Context(), user.Username, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, common.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": notOwnerMessage})
		default:
			s.logger.Error(c.Request.Context(), "recipe delete failed", "error", err)
			c.String(http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

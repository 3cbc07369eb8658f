package news

import (
	"errors"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NewsInput struct {
	Title      string `json:"title" binding:"required"`
	Category   string `json:"category"`
	Content    string `json:"content" binding:"required"`
	IsFeatured bool   `json:"isFeatured"`
}

func (in NewsInput) toService() services.NewsInput {
	return services.NewsInput{
		Title:      in.Title,
		Category:   in.Category,
		Content:    in.Content,
		IsFeatured: in.IsFeatured,
	}
}

// CreateNews godoc
// @Summary Publish a news item
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body NewsInput true "News item"
// @Success 201 {object} utils.Response{data=models.News}
// @Failure 400 {object} utils.Response
// @Router /admin/news [post]
func CreateNews(c *gin.Context) {
	var input NewsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	item, err := services.CreateNews(input.toService())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create news item"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("News created successfully", item))
}

// UpdateNews godoc
// @Summary Update a news item
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "News ID"
// @Param input body NewsInput true "News item"
// @Success 200 {object} utils.Response{data=models.News}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/news/{id} [put]
func UpdateNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid news ID"))
		return
	}

	var input NewsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	item, err := services.UpdateNews(uint(id), input.toService())
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update news item"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("News updated successfully", item))
}

// DeleteNews godoc
// @Summary Delete a news item
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "News ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/news/{id} [delete]
func DeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid news ID"))
		return
	}

	if err := services.DeleteNews(uint(id)); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete news item"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("News deleted successfully", nil))
}

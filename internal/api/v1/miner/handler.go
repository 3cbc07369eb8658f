package miner

import (
	"errors"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AddMinerInput struct {
	WorkerName string  `json:"workerName" binding:"required"`
	Hashrate   float64 `json:"hashrate" binding:"omitempty,gte=0"`
}

// AddMiner godoc
// @Summary Register a mining worker
// @Description Adds a worker to the authenticated user's account
// @Tags miner
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body   AddMinerInput  true  "Worker details"
// @Success 201 {object} utils.Response{data=models.Miner}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /miners [post]
func AddMiner(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	var input AddMinerInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	miner, err := services.AddMiner(user.ID, input.WorkerName, input.Hashrate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Miner added successfully", miner))
}

// ListMiners godoc
// @Summary List the user's mining workers
// @Tags miner
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Miner}
// @Failure 401 {object} utils.Response
// @Router /miners [get]
func ListMiners(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	miners, err := services.FindMinersByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to retrieve miners"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Miners retrieved successfully", miners))
}

// DeleteMiner godoc
// @Summary Remove a mining worker
// @Description Deletes a worker owned by the authenticated user
// @Tags miner
// @Produce  json
// @Security ApiKeyAuth
// @Param   id  path   int  true  "Miner ID"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /miners/{id} [delete]
func DeleteMiner(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid miner ID"))
		return
	}

	if err := services.DeleteMiner(uint(id), user.ID); err != nil {
		if errors.Is(err, services.ErrMinerNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete miner"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Miner deleted successfully", nil))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ian-shakespeare/tapster/middlewares"
	"github.com/ian-shakespeare/tapster/services"
)

type BarController struct {
	bars *services.BarService
}

func NewBarController(bars *services.BarService) *BarController {
	return &BarController{bars: bars}
}

func (bc *BarController) Create(c *gin.Context) {
	var input services.CreateBarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bar, err := bc.bars.Create(c.Request.Context(), middlewares.OwnerID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bar)
}

func (bc *BarController) List(c *gin.Context) {
	bars, err := bc.bars.List(c.Request.Context(), middlewares.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bars)
}

func (bc *BarController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bar id"})
		return
	}

	bar, err := bc.bars.Get(c.Request.Context(), middlewares.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bar)
}

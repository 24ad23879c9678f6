package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ian-shakespeare/tapster/services"
)

func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "tapster-api",
	})
}

type UnitController struct {
	units *services.UnitService
}

func NewUnitController(units *services.UnitService) *UnitController {
	return &UnitController{units: units}
}

func (uc *UnitController) List(c *gin.Context) {
	units, err := uc.units.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

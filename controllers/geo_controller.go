package controllers

import (
	"TnenntAdmin/utils"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GeoController struct{}

func NewGeoController() *GeoController {
	return &GeoController{}
}

// Distance returns the great-circle distance in km between two points.
func (h *GeoController) Distance(c *gin.Context) {
	var coords [4]float64
	for i, key := range []string{"lat1", "lon1", "lat2", "lon2"} {
		v, err := queryFloat(c, key)
		if err != nil {
			c.Error(err)
			return
		}
		coords[i] = v
	}
	if !utils.ValidCoordinate(coords[0], coords[1]) || !utils.ValidCoordinate(coords[2], coords[3]) {
		c.Error(utils.BadRequest("Coordinates out of range"))
		return
	}

	km := utils.Haversine(coords[0], coords[1], coords[2], coords[3])
	utils.SuccessResponse(c, http.StatusOK, "Distance calculated", gin.H{
		"km": math.Round(km*1000) / 1000,
	})
}

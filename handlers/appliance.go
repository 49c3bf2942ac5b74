package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LovationAdmin/powertrack/config"
	"github.com/LovationAdmin/powertrack/services"

	"github.com/gin-gonic/gin"
)

type ApplianceHandler struct {
	Consumptions *services.ConsumptionService
}

// ShowSetup renders the appliance list and the add form.
func (h *ApplianceHandler) ShowSetup(c *gin.Context) {
	appliances, err := h.Consumptions.ListAppliances(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appliances"})
		return
	}

	c.HTML(http.StatusOK, "appliance_setup.html", gin.H{
		"appliances":    appliances,
		"countries":     config.CountryNames(),
		"current_month": time.Now().Format("2006-01"),
	})
}

// CreateAppliance adds an appliance from the setup form.
func (h *ApplianceHandler) CreateAppliance(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	powerWatts, err := strconv.ParseFloat(c.PostForm("power_watts"), 64)
	if err != nil || powerWatts <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "power_watts must be a positive number"})
		return
	}

	if _, err := h.Consumptions.CreateAppliance(c.Request.Context(), name, powerWatts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appliance"})
		return
	}

	c.Redirect(http.StatusFound, "/appliance-setup")
}

// DeleteAppliance removes an appliance and its consumption history.
func (h *ApplianceHandler) DeleteAppliance(c *gin.Context) {
	err := h.Consumptions.DeleteAppliance(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrApplianceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appliance not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appliance"})
		return
	}

	c.Redirect(http.StatusFound, "/appliance-setup")
}

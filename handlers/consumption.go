package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LovationAdmin/powertrack/config"
	"github.com/LovationAdmin/powertrack/models"
	"github.com/LovationAdmin/powertrack/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionHandler struct {
	Consumptions *services.ConsumptionService
}

// ShowDailyInput renders the hours-entry form for the current month.
// Without any appliances there is nothing to enter, so it sends the user
// back to setup.
func (h *ConsumptionHandler) ShowDailyInput(c *gin.Context) {
	appliances, err := h.Consumptions.ListAppliances(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appliances"})
		return
	}
	if len(appliances) == 0 {
		c.Redirect(http.StatusFound, "/appliance-setup")
		return
	}

	now := time.Now()
	currentMonth := now.Format("2006-01")

	daysWithData, err := h.Consumptions.DatesWithData(c.Request.Context(), currentMonth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recorded days"})
		return
	}

	c.HTML(http.StatusOK, "daily_input.html", gin.H{
		"appliances":     appliances,
		"current_month":  currentMonth,
		"current_day":    now.Day(),
		"days_with_data": daysWithData,
		"countries":      config.CountryNames(),
	})
}

// SubmitDailyInput upserts hours for every appliance on the posted date.
// Fields with zero or missing hours are skipped, matching the entry form's
// blank rows.
func (h *ConsumptionHandler) SubmitDailyInput(c *gin.Context) {
	date := c.PostForm("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	appliances, err := h.Consumptions.ListAppliances(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appliances"})
		return
	}

	for _, appliance := range appliances {
		raw := c.PostForm("hours_" + appliance.ID)
		if raw == "" {
			continue
		}

		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be numeric"})
			return
		}
		if hours <= 0 {
			continue
		}

		if err := h.Consumptions.UpsertDailyConsumption(c.Request.Context(), date, appliance.ID, appliance.PowerWatts, hours); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consumption"})
			return
		}
	}

	c.Redirect(http.StatusFound, "/daily-input")
}

// GetDayData returns one day's entries keyed by appliance id.
func (h *ConsumptionHandler) GetDayData(c *gin.Context) {
	rows, err := h.Consumptions.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch day data"})
		return
	}

	data := make(map[string]models.DayData, len(rows))
	for _, row := range rows {
		data[row.ApplianceID] = models.DayData{
			HoursUsed:      row.HoursUsed,
			ConsumptionKWh: row.ConsumptionKWh,
		}
	}

	c.JSON(http.StatusOK, data)
}

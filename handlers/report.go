package handlers

import (
	"net/http"
	"time"

	"github.com/LovationAdmin/powertrack/config"
	"github.com/LovationAdmin/powertrack/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// MonthlyResults renders the aggregated month report for a country's
// tariff. Defaults: the current month and USA.
func (h *ReportHandler) MonthlyResults(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))
	country := c.DefaultQuery("country", "USA")

	tariff, ok := config.TariffFor(country)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown country"})
		return
	}

	report, err := h.Reports.MonthlyReport(c.Request.Context(), month, country, tariff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.HTML(http.StatusOK, "monthly_results.html", gin.H{
		"month":               report.Month,
		"country":             report.Country,
		"tariff":              tariff,
		"total_kwh":           report.TotalKWh,
		"total_cost":          report.TotalCost,
		"carbon_footprint":    report.CarbonFootprint,
		"monthly_totals":      report.MonthlyTotals,
		"daily_max_consumers": report.DailyMaxEntries,
		"available_months":    report.AvailableMonths,
		"countries":           config.CountryNames(),
	})
}

// DailyAnalysis renders the per-day maximum breakdown for a month.
func (h *ReportHandler) DailyAnalysis(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	analysis, err := h.Reports.DailyAnalysis(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analysis"})
		return
	}

	c.HTML(http.StatusOK, "daily_analysis.html", gin.H{
		"month":               analysis.Month,
		"daily_max_consumers": analysis.DailyMaxEntries,
		"appliance_days":      analysis.ApplianceDays,
		"most_frequent_max":   analysis.MostFrequentMax,
		"total_days":          analysis.TotalDays,
	})
}

package routes

import (
	"database/sql"
	"net/http"

	"github.com/LovationAdmin/powertrack/handlers"
	"github.com/LovationAdmin/powertrack/services"

	"github.com/gin-gonic/gin"
)

// SetupApplianceRoutes wires the appliance setup and delete endpoints.
func SetupApplianceRoutes(r *gin.Engine, db *sql.DB) {
	h := &handlers.ApplianceHandler{Consumptions: services.NewConsumptionService(db)}

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/appliance-setup")
	})
	r.GET("/appliance-setup", h.ShowSetup)
	r.POST("/appliance-setup", h.CreateAppliance)
	r.GET("/delete-appliance/:id", h.DeleteAppliance)
}

// SetupConsumptionRoutes wires the daily entry form and day-data JSON.
func SetupConsumptionRoutes(r *gin.Engine, db *sql.DB) {
	h := &handlers.ConsumptionHandler{Consumptions: services.NewConsumptionService(db)}

	r.GET("/daily-input", h.ShowDailyInput)
	r.POST("/daily-input", h.SubmitDailyInput)
	r.GET("/get-day-data/:date", h.GetDayData)
}

// SetupReportRoutes wires the monthly report and daily analysis views.
func SetupReportRoutes(r *gin.Engine, db *sql.DB) {
	reports := services.NewReportService(services.NewConsumptionService(db))
	h := &handlers.ReportHandler{Reports: reports}

	r.GET("/monthly-results", h.MonthlyResults)
	r.GET("/daily-analysis", h.DailyAnalysis)
}

package controllers

import (
	"Backend-MedDash/src/models"
	"Backend-MedDash/src/services/charts"
	"Backend-MedDash/src/services/dataset"
	"Backend-MedDash/src/services/sessions"
	"Backend-MedDash/src/utils"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DashboardController ถือ data context ที่ inject มาตอน start
// (ไม่มี global dataset - ทุก handler อ่านผ่าน struct นี้เท่านั้น)
type DashboardController struct {
	Data     *dataset.Context
	Sessions *sessions.Store
	validate *validator.Validate
}

func NewDashboardController(data *dataset.Context, store *sessions.Store) *DashboardController {
	return &DashboardController{
		Data:     data,
		Sessions: store,
		validate: validator.New(),
	}
}

// selectionRequest - body ของ event เปลี่ยน dropdown
type selectionRequest struct {
	Feature string `json:"feature" validate:"required,oneof=Age Gender Scholarship Hipertension Diabetes Alcoholism SMS_received WaitingDays"`
}

// GetOverview godoc
// @Summary Get overview summary cards
// @Description Total appointments, average age, show rate and no-show rate
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /dashboard/overview [get]
func (dc *DashboardController) GetOverview(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Overview retrieved successfully",
		"data":    dc.Data.Overview,
	})
}

// GetFeatureOptions godoc
// @Summary Get dropdown feature options
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /dashboard/features [get]
func (dc *DashboardController) GetFeatureOptions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Feature options retrieved successfully",
		"data":    models.FeatureOptions,
	})
}

// GetCharts godoc
// @Summary Get all chart specifications
// @Description Returns the eight chart specs. Without ?feature= the session's current selection is used.
// @Tags dashboard
// @Produce json
// @Param feature query string false "Selected feature column"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/charts [get]
func (dc *DashboardController) GetCharts(c *fiber.Ctx) error {
	feature := dc.Sessions.Get(dc.sessionID(c))

	if q := c.Query("feature"); q != "" {
		f, ok := models.ParseFeature(q)
		if !ok {
			return utils.HandleError(c, http.StatusBadRequest, "Unknown feature: "+q)
		}
		feature = f
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Charts built successfully",
		"feature": feature,
		"data":    charts.BuildAll(dc.Data, feature),
	})
}

// UpdateSelection godoc
// @Summary Update the session's selected feature
// @Description Stores the dropdown selection and synchronously rebuilds all eight chart specs
// @Tags dashboard
// @Accept json
// @Produce json
// @Param selection body selectionRequest true "Selected feature"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/selection [put]
func (dc *DashboardController) UpdateSelection(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := dc.validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Unknown feature: "+req.Feature)
	}

	feature, _ := models.ParseFeature(req.Feature)
	dc.Sessions.Set(dc.sessionID(c), feature)

	// event เดียว -> สร้าง spec ใหม่ทั้งแปด slot แบบ synchronous
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Selection updated successfully",
		"feature": feature,
		"data":    charts.BuildAll(dc.Data, feature),
	})
}

// GetAgeGroupSummary godoc
// @Summary Get the no-show rate table by age group
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /dashboard/summary/age-groups [get]
func (dc *DashboardController) GetAgeGroupSummary(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Age group summary retrieved successfully",
		"data":    dc.Data.AgeGroupRates,
	})
}

// GetWeekdaySummary godoc
// @Summary Get the no-show rate table by weekday
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /dashboard/summary/weekdays [get]
func (dc *DashboardController) GetWeekdaySummary(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Weekday summary retrieved successfully",
		"data":    dc.Data.WeekdayRates,
	})
}

// sessionID อ่าน session id จาก cookie หรือออกใหม่ถ้ายังไม่มี
func (dc *DashboardController) sessionID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
		})
	}
	return sid
}

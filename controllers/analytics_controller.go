package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

type AnalyticsController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewAnalyticsController(s *store.Store, logger *logrus.Logger) *AnalyticsController {
	return &AnalyticsController{
		Store:  s,
		Logger: logger,
	}
}

// GetAnalytics lists the user's analytics events, optionally filtered
// by platform.
func (ac *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	userID := utils.QueryUserID(c)
	platform := c.Query("platform")

	var events []models.Analytics
	if platform != "" {
		events = ac.Store.GetAnalyticsByPlatform(userID, platform)
	} else {
		events = ac.Store.GetAnalytics(userID)
	}
	if events == nil {
		events = []models.Analytics{}
	}
	return c.JSON(events)
}

// GetCampaignAnalytics lists every event attributed to one campaign.
func (ac *AnalyticsController) GetCampaignAnalytics(c *fiber.Ctx) error {
	campaignID, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign ID")
	}

	events := ac.Store.GetAnalyticsByCampaign(campaignID)
	if events == nil {
		events = []models.Analytics{}
	}
	return c.JSON(events)
}

// CreateAnalytics records a new metric observation.
func (ac *AnalyticsController) CreateAnalytics(c *fiber.Ctx) error {
	var input models.InsertAnalytics
	if err := c.BodyParser(&input); err != nil {
		ac.Logger.WithError(err).Warn("failed to parse analytics body")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	event := ac.Store.CreateAnalytics(input)
	return c.JSON(event)
}

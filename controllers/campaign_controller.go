package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

type CampaignController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewCampaignController(s *store.Store, logger *logrus.Logger) *CampaignController {
	return &CampaignController{
		Store:  s,
		Logger: logger,
	}
}

// GetCampaigns lists the user's campaigns. userId defaults to the
// demo user when absent.
func (cc *CampaignController) GetCampaigns(c *fiber.Ctx) error {
	userID := utils.QueryUserID(c)
	campaigns := cc.Store.GetCampaigns(userID)
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return c.JSON(campaigns)
}

// GetCampaign returns a single campaign by id.
func (cc *CampaignController) GetCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign ID")
	}

	campaign, ok := cc.Store.GetCampaign(id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found")
	}
	return c.JSON(campaign)
}

// CreateCampaign validates the insert shape and stores a new campaign.
// Server-assigned fields (id, createdAt, sentAt, stats) are not part
// of the insert shape, so client-supplied values are ignored.
func (cc *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	var input models.InsertCampaign
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.WithError(err).Warn("failed to parse campaign body")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	campaign := cc.Store.CreateCampaign(input)
	cc.Logger.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"platform":    campaign.Platform,
	}).Info("campaign created")

	return c.JSON(campaign)
}

// UpdateCampaign merges a partial update onto an existing campaign.
func (cc *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign ID")
	}

	var patch models.CampaignUpdate
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(patch); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	campaign, ok := cc.Store.UpdateCampaign(id, patch)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found")
	}
	return c.JSON(campaign)
}

// DeleteCampaign hard-deletes a campaign. Analytics attributed to it
// are kept; there is no cascading delete.
func (cc *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign ID")
	}

	if !cc.Store.DeleteCampaign(id) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found")
	}
	return c.JSON(fiber.Map{"message": "Campaign deleted successfully"})
}

package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

type ContactController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewContactController(s *store.Store, logger *logrus.Logger) *ContactController {
	return &ContactController{
		Store:  s,
		Logger: logger,
	}
}

// GetContacts lists the user's contacts.
func (cc *ContactController) GetContacts(c *fiber.Ctx) error {
	userID := utils.QueryUserID(c)
	contacts := cc.Store.GetContacts(userID)
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return c.JSON(contacts)
}

// GetContact returns a single contact by id.
func (cc *ContactController) GetContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID")
	}

	contact, ok := cc.Store.GetContact(id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found")
	}
	return c.JSON(contact)
}

// CreateContact validates the insert shape and stores a new contact.
func (cc *ContactController) CreateContact(c *fiber.Ctx) error {
	var input models.InsertContact
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.WithError(err).Warn("failed to parse contact body")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	contact := cc.Store.CreateContact(input)
	cc.Logger.WithFields(logrus.Fields{
		"contact_id": contact.ID,
		"platform":   contact.Platform,
	}).Info("contact created")

	return c.JSON(contact)
}

// UpdateContact merges a partial update onto an existing contact.
func (cc *ContactController) UpdateContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID")
	}

	var patch models.ContactUpdate
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(patch); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	contact, ok := cc.Store.UpdateContact(id, patch)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found")
	}
	return c.JSON(contact)
}

// DeleteContact hard-deletes a contact.
func (cc *ContactController) DeleteContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact ID")
	}

	if !cc.Store.DeleteContact(id) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found")
	}
	return c.JSON(fiber.Map{"message": "Contact deleted successfully"})
}

package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"marketpro/models"
	"marketpro/utils"
)

// wizardForm is the accumulated state of the campaign creation wizard,
// carried between steps in hidden form fields. Objective is collected
// for step gating only; it is not a campaign field and is not stored.
type wizardForm struct {
	Name           string
	Platform       string
	TargetAudience string
	Objective      string
	Message        string
	ScheduledAt    string
}

const wizardSteps = 4

// scheduledAtLayout matches the datetime-local input format.
const scheduledAtLayout = "2006-01-02T15:04"

func readWizardForm(c *fiber.Ctx) wizardForm {
	return wizardForm{
		Name:           strings.TrimSpace(c.FormValue("name")),
		Platform:       c.FormValue("platform"),
		TargetAudience: strings.TrimSpace(c.FormValue("targetAudience")),
		Objective:      strings.TrimSpace(c.FormValue("objective")),
		Message:        strings.TrimSpace(c.FormValue("message")),
		ScheduledAt:    c.FormValue("scheduledAt"),
	}
}

// stepError returns the message blocking progression from the given
// step, empty when the step's requirements are met. Step 4 has no
// hard requirement.
func (f wizardForm) stepError(step int) string {
	switch step {
	case 1:
		if f.Name == "" || f.Platform == "" {
			return "Campaign name and platform are required"
		}
	case 2:
		if f.TargetAudience == "" || f.Objective == "" {
			return "Target audience and objective are required"
		}
	case 3:
		if f.Message == "" {
			return "Campaign message is required"
		}
	}
	return ""
}

// CampaignWizard renders the first step of the creation wizard.
func (h *Handler) CampaignWizard(c *fiber.Ctx) error {
	return h.renderWizard(c, 1, wizardForm{}, "")
}

// CampaignWizardSubmit advances, rewinds or finishes the wizard. Each
// Next is gated by the current step's validation; Back never is.
func (h *Handler) CampaignWizardSubmit(c *fiber.Ctx) error {
	step, err := strconv.Atoi(c.FormValue("step"))
	if err != nil || step < 1 || step > wizardSteps {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid wizard step")
	}

	form := readWizardForm(c)

	switch c.FormValue("action") {
	case "back":
		if step > 1 {
			step--
		}
		return h.renderWizard(c, step, form, "")

	case "launch":
		if msg := form.stepError(step); msg != "" {
			return h.renderWizard(c, step, form, msg)
		}
		return h.launchCampaign(c, form)

	default: // next
		if msg := form.stepError(step); msg != "" {
			return h.renderWizard(c, step, form, msg)
		}
		if step < wizardSteps {
			step++
		}
		return h.renderWizard(c, step, form, "")
	}
}

func (h *Handler) launchCampaign(c *fiber.Ctx, form wizardForm) error {
	insert := models.InsertCampaign{
		UserID:   demoUserID,
		Name:     form.Name,
		Platform: form.Platform,
		Message:  form.Message,
	}
	if form.TargetAudience != "" {
		insert.TargetAudience = &form.TargetAudience
	}
	if form.ScheduledAt != "" {
		at, err := time.ParseInLocation(scheduledAtLayout, form.ScheduledAt, time.Local)
		if err != nil {
			return h.renderWizard(c, wizardSteps, form, "Invalid schedule date")
		}
		insert.ScheduledAt = &at
	}

	if errs := utils.ValidateStruct(insert); errs != nil {
		return h.renderWizard(c, wizardSteps, form, errs[0].Message)
	}

	campaign := h.Store.CreateCampaign(insert)
	h.Logger.WithField("campaign_id", campaign.ID).Info("campaign created via wizard")

	return c.Redirect("/campaigns", fiber.StatusSeeOther)
}

func (h *Handler) renderWizard(c *fiber.Ctx, step int, form wizardForm, errMsg string) error {
	return h.render(c, "wizard", "campaigns", fiber.Map{
		"Step":      step,
		"LastStep":  step == wizardSteps,
		"Form":      form,
		"Error":     errMsg,
		"Platforms": models.Platforms,
	})
}

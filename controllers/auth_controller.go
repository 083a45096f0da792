package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

type AuthController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewAuthController(s *store.Store, logger *logrus.Logger) *AuthController {
	return &AuthController{
		Store:  s,
		Logger: logger,
	}
}

// Register creates a new account. Duplicate registration is rejected
// without touching the store; the password is bcrypt-hashed before it
// is handed over.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input models.InsertUser
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}
	if err := utils.ValidateEmailFormat(input.Email); err != nil {
		return utils.ValidationErrorResponse(c, []utils.FieldError{
			{Field: "email", Message: "email must be a valid email"},
		})
	}

	// Check if user already exists
	if _, exists := ac.Store.GetUserByEmail(input.Email); exists {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "User already exists")
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		ac.Logger.WithError(err).Error("failed to hash password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := ac.Store.CreateUser(input, string(hash))
	ac.Logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("user registered")

	return c.JSON(AuthResponse{User: &user})
}

// Login checks the submitted credentials against the stored bcrypt
// hash and issues a JWT on success. The token is informational; no
// endpoint currently requires it.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	user, ok := ac.Store.GetUserByEmail(req.Email)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(&user)
	if err != nil {
		ac.Logger.WithError(err).Error("failed to generate token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(AuthResponse{User: &user, Token: token})
}

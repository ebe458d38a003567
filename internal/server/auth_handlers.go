package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/users. On success the response body carries only
// the token; the client fetches the user via GET /api/auth.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Name) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Avatar:   gravatar.URL(req.Email),
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		// A concurrent registration with the same email surfaces here.
		return s.handleServiceError(c, createErr, fiber.StatusBadRequest)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"token": token})
}

// Login handles POST /api/auth. An unknown email and a wrong password render
// identically so the endpoint does not leak which accounts exist.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please enter a valid email"))
	}
	if req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please enter a password"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidCredentialsError())
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidCredentialsError())
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"token": token})
}

// GetAuthenticatedUser handles GET /api/auth and returns the caller's user
// record without the password hash.
func (s *Server) GetAuthenticatedUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), callerID(c))
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(user)
}

// generateToken creates a signed JWT carrying the user id in the subject claim.
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "devconnector-api",
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(time.Duration(s.config.JWTExpiryHours) * time.Hour).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

package server

import (
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGithubRepos handles GET /api/profile/github/:username and relays the raw
// GitHub response for the user's five most recent repositories.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("No Github profile found"))
	}

	body, err := s.github.Repos(username)
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwnProfile(c.UserContext(), callerID(c))
	if err != nil {
		// A missing profile renders as 400, not 404.
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// GetProfiles handles GET /api/profile and lists all profiles with their
// owners' name and avatar.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.UserContext())
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:userId.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId", fiber.StatusBadRequest, "There is no profile for this user id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfileByUser(c.UserContext(), userID)
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile. It creates the caller's profile or
// updates only the supplied fields on the existing one; omitted fields keep
// their stored values.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Status         string  `json:"status"`
		Skills         string  `json:"skills"`
		Company        *string `json:"company"`
		Website        *string `json:"website"`
		Location       *string `json:"location"`
		Bio            *string `json:"bio"`
		GithubUsername *string `json:"githubusername"`
		Youtube        *string `json:"youtube"`
		Twitter        *string `json:"twitter"`
		Facebook       *string `json:"facebook"`
		Linkedin       *string `json:"linkedin"`
		Instagram      *string `json:"instagram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertProfile(c.UserContext(), service.UpsertProfileInput{
		UserID:         callerID(c),
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile and removes the caller's profile
// and user record. The caller's posts stay behind.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), callerID(c)); err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(fiber.Map{"msg": "Successfully deleted"})
}

// AddExperience handles PUT /api/profile/experience and returns the updated
// profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location"`
		From        string `json:"from"`
		To          string `json:"to"`
		Current     bool   `json:"current"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), service.AddExperienceInput{
		UserID:      callerID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:id. Removing an
// id that is not on the profile succeeds without changing anything.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	experienceID, err := parseID(c, "id", fiber.StatusBadRequest, "There is no profile for this user")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(c.UserContext(), callerID(c), experienceID)
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education and returns the updated
// profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to"`
		Current      bool   `json:"current"`
		Description  string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), service.AddEducationInput{
		UserID:       callerID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profile/education/:id with the same
// no-op semantics as RemoveExperience.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	educationID, err := parseID(c, "id", fiber.StatusBadRequest, "There is no profile for this user")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(c.UserContext(), callerID(c), educationID)
	if err != nil {
		return s.handleServiceError(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(profile)
}

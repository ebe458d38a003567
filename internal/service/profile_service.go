package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

// ProfileService owns profile rules: required status/skills, partial upsert
// semantics, experience/education entries and account deletion.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries the upsert payload. Pointer fields are optional:
// a nil pointer means "leave the stored value alone", an empty string clears it.
type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type AddEducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *ProfileService) GetOwnProfile(ctx context.Context, callerID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

func (s *ProfileService) GetProfileByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user id")
	}
	return profile, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// UpsertProfile creates the caller's profile or updates the supplied fields on
// the existing one. Status and skills are always written; optional fields only
// when present in the input.
func (s *ProfileService) UpsertProfile(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, models.NewValidationError("Status is required")
	}
	if strings.TrimSpace(in.Skills) == "" {
		return nil, models.NewValidationError("Skills is required")
	}

	skills := splitSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewValidationError("Skills is required")
	}

	profile := &models.Profile{
		UserID: in.UserID,
		Status: in.Status,
		Skills: skills,
	}

	// Skills go through the JSON serializer on insert; the conflict-update
	// path writes raw column values, so encode them the same way here.
	encodedSkills, err := json.Marshal(skills)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	assignments := map[string]interface{}{
		"status":     in.Status,
		"skills":     string(encodedSkills),
		"updated_at": time.Now(),
	}

	setOptional := func(column string, value *string, dest *string) {
		if value == nil {
			return
		}
		*dest = *value
		assignments[column] = *value
	}
	setOptional("company", in.Company, &profile.Company)
	setOptional("website", in.Website, &profile.Website)
	setOptional("location", in.Location, &profile.Location)
	setOptional("bio", in.Bio, &profile.Bio)
	setOptional("github_username", in.GithubUsername, &profile.GithubUsername)
	setOptional("social_youtube", in.Youtube, &profile.Social.Youtube)
	setOptional("social_twitter", in.Twitter, &profile.Social.Twitter)
	setOptional("social_facebook", in.Facebook, &profile.Social.Facebook)
	setOptional("social_linkedin", in.Linkedin, &profile.Social.Linkedin)
	setOptional("social_instagram", in.Instagram, &profile.Social.Instagram)

	if err := s.profileRepo.Upsert(ctx, profile, assignments); err != nil {
		return nil, err
	}
	return s.GetOwnProfile(ctx, in.UserID)
}

// DeleteAccount removes the caller's profile and user record. The caller's
// posts deliberately stay behind with their denormalized name/avatar.
func (s *ProfileService) DeleteAccount(ctx context.Context, callerID uint) error {
	if _, err := s.userRepo.GetByID(ctx, callerID); err != nil {
		return err
	}
	return s.profileRepo.DeleteWithUser(ctx, callerID)
}

func (s *ProfileService) AddExperience(ctx context.Context, in AddExperienceInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return nil, models.NewValidationError("Company is required")
	}
	if strings.TrimSpace(in.From) == "" {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.GetOwnProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.GetOwnProfile(ctx, in.UserID)
}

// RemoveExperience deletes the entry by id. An unknown id leaves the profile
// untouched and still succeeds; clients retry deletes freely.
func (s *ProfileService) RemoveExperience(ctx context.Context, callerID, experienceID uint) (*models.Profile, error) {
	profile, err := s.GetOwnProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, experienceID); err != nil {
		return nil, err
	}
	return s.GetOwnProfile(ctx, callerID)
}

func (s *ProfileService) AddEducation(ctx context.Context, in AddEducationInput) (*models.Profile, error) {
	if strings.TrimSpace(in.School) == "" {
		return nil, models.NewValidationError("School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		return nil, models.NewValidationError("Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		return nil, models.NewValidationError("Field of study is required")
	}
	if strings.TrimSpace(in.From) == "" {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.GetOwnProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.GetOwnProfile(ctx, in.UserID)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, callerID, educationID uint) (*models.Profile, error) {
	profile, err := s.GetOwnProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, educationID); err != nil {
		return nil, err
	}
	return s.GetOwnProfile(ctx, callerID)
}

// splitSkills turns a comma-separated string into a trimmed, non-empty list.
func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

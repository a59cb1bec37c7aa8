package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/internal/domain"
	"devconnect/internal/repository"
)

// ProfileService coordina perfiles y sus entradas de experiencia y educación.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository, users repository.UserRepository) *ProfileService {
	return &ProfileService{
		logger:   logger,
		profiles: profiles,
		users:    users,
	}
}

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrHandleTaken        = errors.New("handle already exists")
	ErrExperienceNotFound = errors.New("experience entry not found")
	ErrEducationNotFound  = errors.New("education entry not found")
)

type ProfileInput struct {
	Handle         string
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// Upsert crea o actualiza el perfil del usuario. El handle duplicado lo
// detecta el constraint UNIQUE, no un chequeo previo.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input ProfileInput) (domain.Profile, error) {
	profile := domain.Profile{
		ID:             uuid.NewString(),
		UserID:         userID,
		Handle:         strings.TrimSpace(input.Handle),
		Company:        strings.TrimSpace(input.Company),
		Website:        strings.TrimSpace(input.Website),
		Location:       strings.TrimSpace(input.Location),
		Status:         strings.TrimSpace(input.Status),
		Skills:         splitSkills(input.Skills),
		Bio:            strings.TrimSpace(input.Bio),
		GithubUsername: strings.TrimSpace(input.GithubUsername),
		Social: domain.Social{
			Youtube:   strings.TrimSpace(input.Youtube),
			Twitter:   strings.TrimSpace(input.Twitter),
			Facebook:  strings.TrimSpace(input.Facebook),
			Linkedin:  strings.TrimSpace(input.Linkedin),
			Instagram: strings.TrimSpace(input.Instagram),
		},
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		if repository.IsUniqueViolation(err, "profiles_handle_key") {
			return domain.Profile{}, ErrHandleTaken
		}
		return domain.Profile{}, err
	}

	// El upsert conserva el id original cuando ya existía; se relee.
	return s.GetByUserID(ctx, userID)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	profile, err := s.profiles.GetByHandle(ctx, handle)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// AddExperience agrega una entrada con id nuevo y devuelve el perfil actualizado.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, input ExperienceInput) (domain.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	exp := domain.Experience{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Location:    strings.TrimSpace(input.Location),
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.profiles.AddExperience(ctx, profile.ID, exp); err != nil {
		return domain.Profile{}, err
	}
	return s.GetByUserID(ctx, userID)
}

// RemoveExperience elimina exactamente la entrada indicada.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (domain.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	deleted, err := s.profiles.DeleteExperience(ctx, profile.ID, expID)
	if err != nil {
		if repository.IsMalformedID(err) {
			return domain.Profile{}, ErrExperienceNotFound
		}
		return domain.Profile{}, err
	}
	if !deleted {
		return domain.Profile{}, ErrExperienceNotFound
	}
	return s.GetByUserID(ctx, userID)
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// AddEducation agrega una entrada con id nuevo y devuelve el perfil actualizado.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, input EducationInput) (domain.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	edu := domain.Education{
		ID:           uuid.NewString(),
		School:       strings.TrimSpace(input.School),
		Degree:       strings.TrimSpace(input.Degree),
		FieldOfStudy: strings.TrimSpace(input.FieldOfStudy),
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  strings.TrimSpace(input.Description),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.profiles.AddEducation(ctx, profile.ID, edu); err != nil {
		return domain.Profile{}, err
	}
	return s.GetByUserID(ctx, userID)
}

// RemoveEducation elimina exactamente la entrada indicada.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (domain.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	deleted, err := s.profiles.DeleteEducation(ctx, profile.ID, eduID)
	if err != nil {
		if repository.IsMalformedID(err) {
			return domain.Profile{}, ErrEducationNotFound
		}
		return domain.Profile{}, err
	}
	if !deleted {
		return domain.Profile{}, ErrEducationNotFound
	}
	return s.GetByUserID(ctx, userID)
}

// DeleteAccount borra el perfil y la cuenta del usuario.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if s.logger != nil {
		s.logger.Info("account deleted", zap.String("user_id", userID))
	}
	return nil
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

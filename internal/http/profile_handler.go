package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnect/internal/service"
	"devconnect/internal/validation"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

// NewProfileHandler crea una instancia de ProfileHandler.
func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		profileServ: profileServ,
	}
}

// Upsert maneja POST /api/profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req struct {
		Handle         string `json:"handle"`
		Company        string `json:"company"`
		Website        string `json:"website"`
		Location       string `json:"location"`
		Status         string `json:"status"`
		Skills         string `json:"skills"`
		Bio            string `json:"bio"`
		GithubUsername string `json:"githubusername"`
		Youtube        string `json:"youtube"`
		Twitter        string `json:"twitter"`
		Facebook       string `json:"facebook"`
		Linkedin       string `json:"linkedin"`
		Instagram      string `json:"instagram"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := validation.ValidateProfileInput(validation.ProfileInput{
		Handle:    req.Handle,
		Status:    req.Status,
		Skills:    req.Skills,
		Website:   req.Website,
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	})
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	profile, err := h.profileServ.Upsert(c.Request.Context(), claims.UserID, service.ProfileInput{
		Handle:         req.Handle,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		if errors.Is(err, service.ErrHandleTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"handle": "That handle already exists"})
			return
		}
		h.logger.Error("profile upsert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCurrent maneja GET /api/profile.
func (h *ProfileHandler) GetCurrent(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	h.respondProfile(c, claims.UserID, "")
}

// GetByHandle maneja GET /api/profile/handle/:handle.
func (h *ProfileHandler) GetByHandle(c *gin.Context) {
	h.respondProfile(c, "", c.Param("handle"))
}

// GetByUserID maneja GET /api/profile/user/:user_id.
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	h.respondProfile(c, c.Param("user_id"), "")
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID, handle string) {
	var (
		profile any
		err     error
	)
	if handle != "" {
		profile, err = h.profileServ.GetByHandle(c.Request.Context(), handle)
	} else {
		profile, err = h.profileServ.GetByUserID(c.Request.Context(), userID)
	}
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"noprofile": "There is no profile for this user"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetAll maneja GET /api/profile/all.
func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// AddExperience maneja POST /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location"`
		From        string `json:"from"`
		To          string `json:"to"`
		Current     bool   `json:"current"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid experience request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := validation.ValidateExperienceInput(validation.ExperienceInput{
		Title:   req.Title,
		Company: req.Company,
		From:    req.From,
	})
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	from, to, dateErrs := parseDateRange(req.From, req.To)
	if len(dateErrs) > 0 {
		c.JSON(http.StatusBadRequest, dateErrs)
		return
	}

	profile, err := h.profileServ.AddExperience(c.Request.Context(), claims.UserID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.respondProfileMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveExperience maneja DELETE /api/profile/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	profile, err := h.profileServ.RemoveExperience(c.Request.Context(), claims.UserID, c.Param("exp_id"))
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"experience": "No experience entry found with that id"})
			return
		}
		h.respondProfileMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation maneja POST /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to"`
		Current      bool   `json:"current"`
		Description  string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid education request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := validation.ValidateEducationInput(validation.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
	})
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	from, to, dateErrs := parseDateRange(req.From, req.To)
	if len(dateErrs) > 0 {
		c.JSON(http.StatusBadRequest, dateErrs)
		return
	}

	profile, err := h.profileServ.AddEducation(c.Request.Context(), claims.UserID, service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.respondProfileMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveEducation maneja DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	profile, err := h.profileServ.RemoveEducation(c.Request.Context(), claims.UserID, c.Param("edu_id"))
	if err != nil {
		if errors.Is(err, service.ErrEducationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"education": "No education entry found with that id"})
			return
		}
		h.respondProfileMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount maneja DELETE /api/profile.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	if err := h.profileServ.DeleteAccount(c.Request.Context(), claims.UserID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("delete account failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProfileHandler) respondProfileMutationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"noprofile": "There is no profile for this user"})
		return
	}
	h.logger.Error("profile mutation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
}

// parseDateRange interpreta fechas "2006-01-02" o RFC3339. From es requerido,
// To es opcional.
func parseDateRange(fromRaw, toRaw string) (time.Time, *time.Time, map[string]string) {
	errs := make(map[string]string)

	from, err := parseDate(fromRaw)
	if err != nil {
		errs["from"] = "From date is invalid"
	}

	var to *time.Time
	if toRaw != "" {
		parsed, err := parseDate(toRaw)
		if err != nil {
			errs["to"] = "To date is invalid"
		} else {
			to = &parsed
		}
	}

	if len(errs) > 0 {
		return time.Time{}, nil, errs
	}
	return from, to, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

package server

import (
	"chorus/internal/models"
	"chorus/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{user=models.UserProfile}
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"error": false,
		"user":  user.Profile(),
	})
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update own profile
// @Description Partially update profile fields; absent fields are kept
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{first_name=string,last_name=string,phone=string,sex=int} true "Profile fields"
// @Success 200 {object} object{user=models.UserProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Sex       *int   `json:"sex"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    currentUserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Sex:       req.Sex,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"user":  user.Profile(),
	})
}

// DeactivateMe handles DELETE /api/users/me
// @Summary Deactivate own account
// @Description Soft-deletes the account; content stays but the profile disappears
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /users/me [delete]
func (s *Server) DeactivateMe(c *fiber.Ctx) error {
	if err := s.userService.Deactivate(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Account deactivated",
	})
}

// UpdateMyAvatar handles POST /api/users/me/avatar
// @Summary Upload own avatar
// @Description Accepts a base64 data URL; 1-7 MiB jpeg/png
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{avatar=string} true "Base64 data URL"
// @Success 200 {object} object{user=models.UserProfile}
// @Failure 422 {object} models.ErrorResponse
// @Router /users/me/avatar [post]
func (s *Server) UpdateMyAvatar(c *fiber.Ctx) error {
	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if req.Avatar == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Avatar is required"))
	}

	user, err := s.userService.UpdateAvatar(c.Context(), currentUserID(c), req.Avatar)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"user":  user.Profile(),
	})
}

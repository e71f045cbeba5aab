package server

import (
	"chorus/internal/models"
	"chorus/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BecomeArtist handles POST /api/artists
// @Summary Create an artist profile
// @Description Requires the user to be at least 16 and not already an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,biography=string} true "Artist profile"
// @Success 201 {object} object{artist=models.ArtistProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /artists [post]
func (s *Server) BecomeArtist(c *fiber.Ctx) error {
	var req struct {
		Name      string `json:"name"`
		Biography string `json:"biography"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	artist, err := s.artistService.Become(c.Context(), service.BecomeArtistInput{
		UserID:    currentUserID(c),
		Name:      req.Name,
		Biography: req.Biography,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":  false,
		"artist": artist.Profile(0),
	})
}

// GetArtists handles GET /api/artists
// @Summary List active artists
// @Tags artists
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{artists=[]models.ArtistProfile,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /artists [get]
func (s *Server) GetArtists(c *fiber.Ctx) error {
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	artists, total, err := s.artistService.List(c.Context(), p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profiles := make([]models.ArtistProfile, 0, len(artists))
	for i := range artists {
		followers, err := s.artistRepo.CountFollowers(c.Context(), artists[i].ID)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		profiles = append(profiles, artists[i].Profile(followers))
	}

	return paginatedResponse(c, "artists", profiles, total, p)
}

// GetArtist handles GET /api/artists/:id
// @Summary Get an artist profile
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} object{artist=models.ArtistProfile}
// @Failure 404 {object} models.ErrorResponse
// @Router /artists/{id} [get]
func (s *Server) GetArtist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	artist, followers, err := s.artistService.Get(c.Context(), id, requesterID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"artist": artist.Profile(followers),
	})
}

// GetMyArtist handles GET /api/artists/me
// @Summary Get own artist profile
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{artist=models.ArtistProfile}
// @Failure 404 {object} models.ErrorResponse
// @Router /artists/me [get]
func (s *Server) GetMyArtist(c *fiber.Ctx) error {
	artist, err := s.artistService.GetOwn(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	followers, err := s.artistRepo.CountFollowers(c.Context(), artist.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"artist": artist.Profile(followers),
	})
}

// UpdateMyArtist handles PUT /api/artists/me
// @Summary Update own artist profile
// @Description Partially update name, biography and label memberships
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,biography=string,label_ids=[]int} true "Artist fields"
// @Success 200 {object} object{artist=models.ArtistProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /artists/me [put]
func (s *Server) UpdateMyArtist(c *fiber.Ctx) error {
	var req struct {
		Name      string  `json:"name"`
		Biography *string `json:"biography"`
		LabelIDs  []uint  `json:"label_ids"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	artist, err := s.artistService.Update(c.Context(), service.UpdateArtistInput{
		UserID:    currentUserID(c),
		Name:      req.Name,
		Biography: req.Biography,
		LabelIDs:  req.LabelIDs,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	followers, err := s.artistRepo.CountFollowers(c.Context(), artist.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"artist": artist.Profile(followers),
	})
}

// DeactivateMyArtist handles DELETE /api/artists/me
// @Summary Deactivate own artist profile
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /artists/me [delete]
func (s *Server) DeactivateMyArtist(c *fiber.Ctx) error {
	if err := s.artistService.Deactivate(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Artist profile deactivated",
	})
}

// UpdateMyArtistAvatar handles POST /api/artists/me/avatar
// @Summary Upload own artist avatar
// @Description Accepts a base64 data URL; 1-7 MiB jpeg/png
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{avatar=string} true "Base64 data URL"
// @Success 200 {object} object{artist=models.ArtistProfile}
// @Failure 422 {object} models.ErrorResponse
// @Router /artists/me/avatar [post]
func (s *Server) UpdateMyArtistAvatar(c *fiber.Ctx) error {
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

	artist, err := s.artistService.UpdateAvatar(c.Context(), currentUserID(c), req.Avatar)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	followers, err := s.artistRepo.CountFollowers(c.Context(), artist.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":  false,
		"artist": artist.Profile(followers),
	})
}

// FollowArtist handles POST /api/artists/:id/follow
// @Summary Follow an artist
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /artists/{id}/follow [post]
func (s *Server) FollowArtist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.artistService.Follow(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Following artist",
	})
}

// UnfollowArtist handles DELETE /api/artists/:id/follow
// @Summary Unfollow an artist
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /artists/{id}/follow [delete]
func (s *Server) UnfollowArtist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.artistService.Unfollow(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Unfollowed artist",
	})
}

// GetArtistAlbums handles GET /api/artists/:id/albums
// @Summary List an artist's albums
// @Description Non-owners see only published albums
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{albums=[]models.AlbumDetail,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /artists/{id}/albums [get]
func (s *Server) GetArtistAlbums(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	albums, total, err := s.albumService.ListByArtist(c.Context(), id, requesterID, p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	details := make([]models.AlbumDetail, 0, len(albums))
	for i := range albums {
		details = append(details, albums[i].Detail())
	}

	return paginatedResponse(c, "albums", details, total, p)
}

package server

import (
	"chorus/internal/models"
	"chorus/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSong handles GET /api/songs/:id
// @Summary Get a song
// @Description Hidden songs answer 404 for non-owners
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} object{song=models.SongDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /songs/{id} [get]
func (s *Server) GetSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	song, err := s.songService.Get(c.Context(), id, requesterID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"song":  song.Detail(),
	})
}

// UpdateSong handles PUT /api/songs/:id
// @Summary Update a song
// @Description Owner only; absent fields are kept
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Song ID"
// @Param request body object{title=string,visibility=bool} true "Song fields"
// @Success 200 {object} object{song=models.SongDetail}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /songs/{id} [put]
func (s *Server) UpdateSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title      string `json:"title"`
		Visibility *bool  `json:"visibility"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	song, err := s.songService.Update(c.Context(), service.UpdateSongInput{
		UserID:     currentUserID(c),
		SongID:     id,
		Title:      req.Title,
		Visibility: req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"song":  song.Detail(),
	})
}

// DeleteSong handles DELETE /api/songs/:id
// @Summary Soft-delete a song
// @Tags songs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Song ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /songs/{id} [delete]
func (s *Server) DeleteSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.songService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Song deleted",
	})
}

// UploadSongAudio handles POST /api/songs/:id/audio
// @Summary Upload song audio
// @Description Accepts a base64 data URL; 1-7 MiB mp3/wav
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Song ID"
// @Param request body object{audio=string} true "Base64 data URL"
// @Success 200 {object} object{song=models.SongDetail}
// @Failure 422 {object} models.ErrorResponse
// @Router /songs/{id}/audio [post]
func (s *Server) UploadSongAudio(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Audio string `json:"audio"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if req.Audio == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Audio is required"))
	}

	song, err := s.songService.UpdateAudio(c.Context(), id, currentUserID(c), req.Audio)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"song":  song.Detail(),
	})
}

// UploadSongCover handles POST /api/songs/:id/cover
// @Summary Upload a song cover
// @Description Accepts a base64 data URL; 1-7 MiB jpeg/png
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Song ID"
// @Param request body object{cover=string} true "Base64 data URL"
// @Success 200 {object} object{song=models.SongDetail}
// @Failure 422 {object} models.ErrorResponse
// @Router /songs/{id}/cover [post]
func (s *Server) UploadSongCover(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Cover string `json:"cover"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if req.Cover == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Cover is required"))
	}

	song, err := s.songService.UpdateCover(c.Context(), id, currentUserID(c), req.Cover)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"song":  song.Detail(),
	})
}

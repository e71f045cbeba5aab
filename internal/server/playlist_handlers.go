package server

import (
	"chorus/internal/models"
	"chorus/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaylist handles POST /api/playlists
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,public=bool} true "Playlist fields"
// @Success 201 {object} object{playlist=models.PlaylistDetail}
// @Failure 400 {object} models.ErrorResponse
// @Router /playlists [post]
func (s *Server) CreatePlaylist(c *fiber.Ctx) error {
	var req struct {
		Title  string `json:"title"`
		Public bool   `json:"public"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	playlist, err := s.playlistService.Create(c.Context(), service.CreatePlaylistInput{
		UserID: currentUserID(c),
		Title:  req.Title,
		Public: req.Public,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":    false,
		"playlist": playlist.Detail(),
	})
}

// GetPlaylists handles GET /api/playlists
// @Summary List visible playlists
// @Description Public playlists plus the requester's own
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{playlists=[]models.PlaylistDetail,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /playlists [get]
func (s *Server) GetPlaylists(c *fiber.Ctx) error {
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	playlists, total, err := s.playlistService.List(c.Context(), currentUserID(c), p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	details := make([]models.PlaylistDetail, 0, len(playlists))
	for i := range playlists {
		details = append(details, playlists[i].Detail())
	}

	return paginatedResponse(c, "playlists", details, total, p)
}

// GetPlaylist handles GET /api/playlists/:id
// @Summary Get a playlist with its songs in order
// @Description Private playlists answer 404 for non-owners
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Playlist ID"
// @Success 200 {object} object{playlist=models.PlaylistDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /playlists/{id} [get]
func (s *Server) GetPlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	playlist, err := s.playlistService.Get(c.Context(), id, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":    false,
		"playlist": playlist.Detail(),
	})
}

// UpdatePlaylist handles PUT /api/playlists/:id
// @Summary Update a playlist
// @Description Owner only; absent fields are kept
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Playlist ID"
// @Param request body object{title=string,public=bool} true "Playlist fields"
// @Success 200 {object} object{playlist=models.PlaylistDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /playlists/{id} [put]
func (s *Server) UpdatePlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title  string `json:"title"`
		Public *bool  `json:"public"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	playlist, err := s.playlistService.Update(c.Context(), service.UpdatePlaylistInput{
		UserID:     currentUserID(c),
		PlaylistID: id,
		Title:      req.Title,
		Public:     req.Public,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":    false,
		"playlist": playlist.Detail(),
	})
}

// DeletePlaylist handles DELETE /api/playlists/:id
// @Summary Delete a playlist and its entries
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Playlist ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /playlists/{id} [delete]
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.playlistService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Playlist deleted",
	})
}

// AddPlaylistSong handles POST /api/playlists/:id/songs
// @Summary Append a song to a playlist
// @Description The song takes the next position; duplicates answer 409
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Playlist ID"
// @Param request body object{song_id=int} true "Song reference"
// @Success 200 {object} object{playlist=models.PlaylistDetail}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /playlists/{id}/songs [post]
func (s *Server) AddPlaylistSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		SongID uint `json:"song_id"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if req.SongID == 0 {
		return models.RespondWithError(c,
			models.NewValidationError("Song ID is required"))
	}

	playlist, err := s.playlistService.AddSong(c.Context(), id, req.SongID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":    false,
		"playlist": playlist.Detail(),
	})
}

// RemovePlaylistSong handles DELETE /api/playlists/:id/songs/:songId
// @Summary Remove a song from a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Playlist ID"
// @Param songId path int true "Song ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /playlists/{id}/songs/{songId} [delete]
func (s *Server) RemovePlaylistSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	songID, err := s.parseID(c, "songId")
	if err != nil {
		return nil
	}

	if err := s.playlistService.RemoveSong(c.Context(), id, songID, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Song removed from playlist",
	})
}

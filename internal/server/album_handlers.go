package server

import (
	"chorus/internal/models"
	"chorus/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAlbum handles POST /api/albums
// @Summary Create an album
// @Description Requires an artist profile; title must be unique per artist
// @Tags albums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,category=string,year=int,visibility=bool} true "Album fields"
// @Success 201 {object} object{album=models.AlbumDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /albums [post]
func (s *Server) CreateAlbum(c *fiber.Ctx) error {
	var req struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		Year       int    `json:"year"`
		Visibility bool   `json:"visibility"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	album, err := s.albumService.Create(c.Context(), service.CreateAlbumInput{
		UserID:     currentUserID(c),
		Title:      req.Title,
		Category:   req.Category,
		Year:       req.Year,
		Visibility: req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"album": album.Detail(),
	})
}

// GetAlbums handles GET /api/albums
// @Summary List visible albums
// @Description Published albums plus the requester's own
// @Tags albums
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{albums=[]models.AlbumDetail,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /albums [get]
func (s *Server) GetAlbums(c *fiber.Ctx) error {
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	albums, total, err := s.albumService.List(c.Context(), requesterID, p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	details := make([]models.AlbumDetail, 0, len(albums))
	for i := range albums {
		details = append(details, albums[i].Detail())
	}

	return paginatedResponse(c, "albums", details, total, p)
}

// SearchAlbums handles GET /api/albums/search
// @Summary Search albums by field equality
// @Tags albums
// @Produce json
// @Param title query string false "Exact title"
// @Param category query string false "Category"
// @Param year query int false "Release year"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{albums=[]models.AlbumDetail,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /albums/search [get]
func (s *Server) SearchAlbums(c *fiber.Ctx) error {
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	albums, total, err := s.albumService.Search(c.Context(), service.SearchAlbumsInput{
		UserID:   requesterID,
		Title:    c.Query("title"),
		Category: c.Query("category"),
		Year:     c.QueryInt("year", 0),
	}, p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	details := make([]models.AlbumDetail, 0, len(albums))
	for i := range albums {
		details = append(details, albums[i].Detail())
	}

	return paginatedResponse(c, "albums", details, total, p)
}

// GetAlbum handles GET /api/albums/:id
// @Summary Get an album with its songs
// @Description Hidden albums answer 404 for non-owners
// @Tags albums
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} object{album=models.AlbumDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /albums/{id} [get]
func (s *Server) GetAlbum(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	album, err := s.albumService.Get(c.Context(), id, requesterID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"album": album.Detail(),
	})
}

// UpdateAlbum handles PUT /api/albums/:id
// @Summary Update an album
// @Description Owner only; absent fields are kept
// @Tags albums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param request body object{title=string,category=string,year=int,visibility=bool} true "Album fields"
// @Success 200 {object} object{album=models.AlbumDetail}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /albums/{id} [put]
func (s *Server) UpdateAlbum(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		Year       int    `json:"year"`
		Visibility *bool  `json:"visibility"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	album, err := s.albumService.Update(c.Context(), service.UpdateAlbumInput{
		UserID:     currentUserID(c),
		AlbumID:    id,
		Title:      req.Title,
		Category:   req.Category,
		Year:       req.Year,
		Visibility: req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"album": album.Detail(),
	})
}

// DeleteAlbum handles DELETE /api/albums/:id
// @Summary Soft-delete an album
// @Tags albums
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /albums/{id} [delete]
func (s *Server) DeleteAlbum(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.albumService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Album deleted",
	})
}

// UploadAlbumCover handles POST /api/albums/:id/cover
// @Summary Upload an album cover
// @Description Accepts a base64 data URL; 1-7 MiB jpeg/png
// @Tags albums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param request body object{cover=string} true "Base64 data URL"
// @Success 200 {object} object{album=models.AlbumDetail}
// @Failure 422 {object} models.ErrorResponse
// @Router /albums/{id}/cover [post]
func (s *Server) UploadAlbumCover(c *fiber.Ctx) error {
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

	album, err := s.albumService.UpdateCover(c.Context(), id, currentUserID(c), req.Cover)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"album": album.Detail(),
	})
}

// GetAlbumSongs handles GET /api/albums/:id/songs
// @Summary List an album's songs
// @Tags albums
// @Produce json
// @Param id path int true "Album ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{songs=[]models.SongDetail,total=int,total_pages=int,page=int,limit=int}
// @Failure 404 {object} models.ErrorResponse
// @Router /albums/{id}/songs [get]
func (s *Server) GetAlbumSongs(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	requesterID, _ := s.optionalUserID(c)
	songs, total, err := s.songService.ListByAlbum(c.Context(), id, requesterID, p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	details := make([]models.SongDetail, 0, len(songs))
	for i := range songs {
		details = append(details, songs[i].Detail())
	}

	return paginatedResponse(c, "songs", details, total, p)
}

// CreateSong handles POST /api/albums/:id/songs
// @Summary Add a song to an album
// @Description Album owner only; featuring lists other artist IDs
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param request body object{title=string,visibility=bool,featuring=[]int} true "Song fields"
// @Success 201 {object} object{song=models.SongDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /albums/{id}/songs [post]
func (s *Server) CreateSong(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title      string `json:"title"`
		Visibility bool   `json:"visibility"`
		Featuring  []uint `json:"featuring"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	song, err := s.songService.Create(c.Context(), service.CreateSongInput{
		UserID:      currentUserID(c),
		AlbumID:     id,
		Title:       req.Title,
		Visibility:  req.Visibility,
		FeaturingID: req.Featuring,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"song":  song.Detail(),
	})
}

package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAlbum(t *testing.T, app *fiber.App, token string, fields map[string]any) uint {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/albums", token, fields)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create album: %v", body)
	album := body["album"].(map[string]any)
	return uint(album["id"].(float64))
}

func TestCreateAlbum(t *testing.T) {
	_, app := newTestServer(t)
	plain := registerUser(t, app, "listener@example.com")
	artist := registerUser(t, app, "artist@example.com")
	becomeArtist(t, app, artist, "The Composers")

	t.Run("unauthenticated", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/albums", "", map[string]any{
			"title": "Nope", "category": "rock", "year": 2020,
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("no artist profile", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/albums", plain, map[string]any{
			"title": "Nope", "category": "rock", "year": 2020,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("bad category", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/albums", artist, map[string]any{
			"title": "Oddity", "category": "polka", "year": 2020,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unexpected field", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/albums", artist, map[string]any{
			"title": "Sneaky", "category": "rock", "year": 2020, "artist_id": 999,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("round trip", func(t *testing.T) {
		id := createAlbum(t, app, artist, map[string]any{
			"title": "First Light", "category": "jazz", "year": 2021, "visibility": true,
		})

		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", id), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		album := body["album"].(map[string]any)
		assert.Equal(t, "First Light", album["title"])
		assert.Equal(t, "jazz", album["category"])
		assert.Equal(t, float64(2021), album["year"])
	})

	t.Run("duplicate title for same artist", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/albums", artist, map[string]any{
			"title": "First Light", "category": "jazz", "year": 2021,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestAlbumVisibilityPolicy(t *testing.T) {
	_, app := newTestServer(t)
	owner := registerUser(t, app, "owner@example.com")
	becomeArtist(t, app, owner, "Owner Band")
	stranger := registerUser(t, app, "stranger@example.com")

	hidden := createAlbum(t, app, owner, map[string]any{
		"title": "Demos", "category": "rock", "year": 2022, "visibility": false,
	})

	t.Run("anonymous gets 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", hidden), "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("stranger gets 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", hidden), stranger, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner sees it", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", hidden), owner, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		// The album is invisible to the stranger, so the answer is 404 and
		// never 403, to avoid leaking its existence.
		resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/albums/%d", hidden), stranger, map[string]any{
			"title": "Hijacked",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("soft delete keeps owner access", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/albums/%d", hidden), owner, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", hidden), owner, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/albums/%d", hidden), stranger, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAlbumListPagination(t *testing.T) {
	_, app := newTestServer(t)
	owner := registerUser(t, app, "pager@example.com")
	becomeArtist(t, app, owner, "Pager Band")

	for i := 0; i < 3; i++ {
		createAlbum(t, app, owner, map[string]any{
			"title":      fmt.Sprintf("Volume %d", i+1),
			"category":   "pop",
			"year":       2020 + i,
			"visibility": true,
		})
	}
	// A hidden album never counts toward anonymous listings.
	createAlbum(t, app, owner, map[string]any{
		"title": "Shelved", "category": "pop", "year": 2024, "visibility": false,
	})

	t.Run("metadata arithmetic", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums?limit=2", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(3), body["total"])
		assert.Equal(t, float64(2), body["total_pages"])
		assert.Equal(t, float64(1), body["page"])
		assert.Len(t, body["albums"], 2)
	})

	t.Run("last page is partial", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums?limit=2&page=2", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["albums"], 1)
	})

	t.Run("out-of-range page keeps metadata", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums?limit=2&page=9", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body["albums"])
		assert.Equal(t, float64(3), body["total"])
		assert.Equal(t, float64(9), body["page"])
	})

	t.Run("owner also sees hidden album", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums?limit=10", owner, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(4), body["total"])
	})
}

func TestSearchAlbums(t *testing.T) {
	_, app := newTestServer(t)
	owner := registerUser(t, app, "search@example.com")
	becomeArtist(t, app, owner, "Search Party")

	createAlbum(t, app, owner, map[string]any{
		"title": "Blue Notes", "category": "blues", "year": 2019, "visibility": true,
	})
	createAlbum(t, app, owner, map[string]any{
		"title": "Night Drive", "category": "pop", "year": 2019, "visibility": true,
	})

	t.Run("by category", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums/search?category=blues", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("by year", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/albums/search?year=2019", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2), body["total"])
	})

	t.Run("invalid category", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/albums/search?category=polka", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateSongUnderAlbum(t *testing.T) {
	_, app := newTestServer(t)
	owner := registerUser(t, app, "songwriter@example.com")
	becomeArtist(t, app, owner, "Songwriter")
	other := registerUser(t, app, "rival@example.com")
	becomeArtist(t, app, other, "Rival")

	albumID := createAlbum(t, app, owner, map[string]any{
		"title": "Songbook", "category": "rock", "year": 2023, "visibility": true,
	})

	t.Run("owner creates song", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/albums/%d/songs", albumID), owner, map[string]any{
			"title": "Opening Track", "visibility": true,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "create song: %v", body)
		song := body["song"].(map[string]any)
		assert.Equal(t, "Opening Track", song["title"])
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/albums/%d/songs", albumID), other, map[string]any{
			"title": "Intruder", "visibility": true,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

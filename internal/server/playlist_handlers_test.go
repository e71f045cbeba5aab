package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSong creates an artist-owned published album with one published song
// and returns the song ID.
func seedSong(t *testing.T, app *fiber.App, artistToken, albumTitle, songTitle string) uint {
	t.Helper()
	albumID := createAlbum(t, app, artistToken, map[string]any{
		"title": albumTitle, "category": "pop", "year": 2022, "visibility": true,
	})
	resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/albums/%d/songs", albumID), artistToken, map[string]any{
		"title": songTitle, "visibility": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "seed song: %v", body)
	song := body["song"].(map[string]any)
	return uint(song["id"].(float64))
}

func TestPlaylistLifecycle(t *testing.T) {
	_, app := newTestServer(t)
	dj := registerUser(t, app, "dj@example.com")
	musician := registerUser(t, app, "musician@example.com")
	becomeArtist(t, app, musician, "Musician")

	songA := seedSong(t, app, musician, "Album A", "Track A")
	songB := seedSong(t, app, musician, "Album B", "Track B")

	var playlistID uint
	t.Run("create", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/playlists", dj, map[string]any{
			"title": "Morning Mix", "public": false,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "create playlist: %v", body)
		playlist := body["playlist"].(map[string]any)
		playlistID = uint(playlist["id"].(float64))
	})

	t.Run("songs append in order", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/playlists/%d/songs", playlistID), dj, map[string]any{
			"song_id": songA,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/playlists/%d/songs", playlistID), dj, map[string]any{
			"song_id": songB,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		playlist := body["playlist"].(map[string]any)
		songs := playlist["songs"].([]any)
		require.Len(t, songs, 2)
		assert.Equal(t, "Track A", songs[0].(map[string]any)["title"])
		assert.Equal(t, "Track B", songs[1].(map[string]any)["title"])
	})

	t.Run("duplicate song conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/playlists/%d/songs", playlistID), dj, map[string]any{
			"song_id": songA,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("remove song", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/playlists/%d/songs/%d", playlistID, songA), dj, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", playlistID), dj, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		playlist := body["playlist"].(map[string]any)
		songs := playlist["songs"].([]any)
		require.Len(t, songs, 1)
		assert.Equal(t, "Track B", songs[0].(map[string]any)["title"])
	})

	t.Run("removing absent song is 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/playlists/%d/songs/%d", playlistID, songA), dj, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete playlist", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/playlists/%d", playlistID), dj, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", playlistID), dj, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPlaylistPrivacy(t *testing.T) {
	_, app := newTestServer(t)
	owner := registerUser(t, app, "plowner@example.com")
	peeker := registerUser(t, app, "peeker@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/playlists", owner, map[string]any{
		"title": "Secret Stash", "public": false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	private := uint(body["playlist"].(map[string]any)["id"].(float64))

	resp, body = doJSON(t, app, http.MethodPost, "/api/playlists", owner, map[string]any{
		"title": "Road Trip", "public": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	public := uint(body["playlist"].(map[string]any)["id"].(float64))

	t.Run("private playlist hidden from others", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", private), peeker, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("public playlist open to others", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/playlists/%d", public), peeker, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("owner sees both in listing", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/playlists?limit=10", owner, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2), body["total"])
	})

	t.Run("others list only public", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/playlists?limit=10", peeker, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("non-owner cannot rename", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/playlists/%d", public), peeker, map[string]any{
			"title": "Mine Now",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

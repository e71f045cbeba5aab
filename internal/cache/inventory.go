package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	ArtistKeyPrefix   = "artist:%d"
	AlbumKeyPrefix    = "album:%d"
	LabelListKey      = "labels:all"
	PlaylistKeyPrefix = "playlist:%d"
)

const (
	UserTTL     = 5 * time.Minute
	ArtistTTL   = 10 * time.Minute
	AlbumTTL    = 10 * time.Minute
	LabelTTL    = 30 * time.Minute
	PlaylistTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ArtistKey(artistID uint) string {
	return fmt.Sprintf(ArtistKeyPrefix, artistID)
}

func AlbumKey(albumID uint) string {
	return fmt.Sprintf(AlbumKeyPrefix, albumID)
}

func PlaylistKey(playlistID uint) string {
	return fmt.Sprintf(PlaylistKeyPrefix, playlistID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateArtist(ctx context.Context, artistID uint) {
	Invalidate(ctx, ArtistKey(artistID))
}

func InvalidateAlbum(ctx context.Context, albumID uint) {
	Invalidate(ctx, AlbumKey(albumID))
}

func InvalidatePlaylist(ctx context.Context, playlistID uint) {
	Invalidate(ctx, PlaylistKey(playlistID))
}

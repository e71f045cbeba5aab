package models

import (
	"time"
)

// Playlist is an ordered collection of songs owned by a user. Private
// playlists are visible only to their owner.
type Playlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:90;not null" json:"title"`
	Public    bool           `gorm:"default:false" json:"public"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	Entries   []PlaylistSong `gorm:"foreignKey:PlaylistID" json:"entries,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PlaylistSong is the ordered join row between playlists and songs.
type PlaylistSong struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	PlaylistID uint  `gorm:"not null;uniqueIndex:idx_playlist_song" json:"playlist_id"`
	SongID     uint  `gorm:"not null;uniqueIndex:idx_playlist_song" json:"song_id"`
	Position   int   `gorm:"not null" json:"position"`
	Song       *Song `gorm:"foreignKey:SongID" json:"song,omitempty"`
}

// VisibleTo reports whether the playlist may be read by the given user.
func (p *Playlist) VisibleTo(requesterUserID uint) bool {
	if requesterUserID != 0 && requesterUserID == p.UserID {
		return true
	}
	return p.Public
}

// PlaylistDetail is the response DTO for playlist data. Songs are returned in
// playlist order.
type PlaylistDetail struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Public    bool         `json:"public"`
	Songs     []SongDetail `json:"songs,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Detail shapes the playlist into its response DTO.
func (p *Playlist) Detail() PlaylistDetail {
	d := PlaylistDetail{
		ID:        p.ID,
		Title:     p.Title,
		Public:    p.Public,
		CreatedAt: p.CreatedAt,
	}
	for _, e := range p.Entries {
		if e.Song != nil {
			d.Songs = append(d.Songs, e.Song.Detail())
		}
	}
	return d
}

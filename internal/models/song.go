package models

import (
	"time"
)

// Song belongs to one Album and credits a primary Artist plus zero or more
// featured Artists.
type Song struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:90;not null" json:"title"`
	Cover      string    `json:"cover"`
	Audio      string    `json:"audio"`
	Visibility bool      `gorm:"default:false" json:"visibility"`
	Deleted    bool      `gorm:"default:false" json:"-"`
	AlbumID    uint      `gorm:"not null" json:"album_id"`
	Album      *Album    `gorm:"foreignKey:AlbumID" json:"album,omitempty"`
	ArtistID   uint      `gorm:"not null" json:"artist_id"`
	Artist     *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Featuring  []Artist  `gorm:"many2many:song_featurings" json:"featuring,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VisibleTo reports whether the song may be read by the given artist.
func (s *Song) VisibleTo(requesterArtistID uint) bool {
	if requesterArtistID != 0 && requesterArtistID == s.ArtistID {
		return true
	}
	return s.Visibility && !s.Deleted
}

// SongDetail is the response DTO for song data.
type SongDetail struct {
	ID         uint          `json:"id"`
	Title      string        `json:"title"`
	Cover      string        `json:"cover,omitempty"`
	Audio      string        `json:"audio,omitempty"`
	Visibility bool          `json:"visibility"`
	AlbumID    uint          `json:"album_id"`
	Artist     *ArtistBrief  `json:"artist,omitempty"`
	Featuring  []ArtistBrief `json:"featuring,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Detail shapes the song into its response DTO.
func (s *Song) Detail() SongDetail {
	d := SongDetail{
		ID:         s.ID,
		Title:      s.Title,
		Cover:      s.Cover,
		Audio:      s.Audio,
		Visibility: s.Visibility,
		AlbumID:    s.AlbumID,
		CreatedAt:  s.CreatedAt,
	}
	if s.Artist != nil {
		d.Artist = &ArtistBrief{ID: s.Artist.ID, Name: s.Artist.Name}
	}
	for _, f := range s.Featuring {
		d.Featuring = append(d.Featuring, ArtistBrief{ID: f.ID, Name: f.Name})
	}
	return d
}

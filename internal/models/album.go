package models

import (
	"time"
)

// Album categories form a closed set; anything else is rejected at
// validation time.
const (
	CategoryRock  = "rock"
	CategoryPop   = "pop"
	CategoryJazz  = "jazz"
	CategoryBlues = "blues"
)

// Album belongs to one Artist. Title uniqueness is scoped per artist and
// enforced by a composite unique index. Deleted albums keep their row and are
// filtered from non-owner views.
type Album struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:90;not null;uniqueIndex:idx_albums_artist_title" json:"title"`
	Category   string    `gorm:"size:20;not null" json:"category"`
	Cover      string    `json:"cover"`
	Year       int       `json:"year"`
	Visibility bool      `gorm:"default:false" json:"visibility"`
	Deleted    bool      `gorm:"default:false" json:"-"`
	ArtistID   uint      `gorm:"not null;uniqueIndex:idx_albums_artist_title" json:"artist_id"`
	Artist     *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Songs      []Song    `gorm:"foreignKey:AlbumID" json:"songs,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VisibleTo reports whether the album may be read by the given artist.
// Owners see their own albums even when private or soft-deleted.
func (a *Album) VisibleTo(requesterArtistID uint) bool {
	if requesterArtistID != 0 && requesterArtistID == a.ArtistID {
		return true
	}
	return a.Visibility && !a.Deleted
}

// AlbumDetail is the response DTO for album data.
type AlbumDetail struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	Category   string       `json:"category"`
	Cover      string       `json:"cover,omitempty"`
	Year       int          `json:"year"`
	Visibility bool         `json:"visibility"`
	Artist     *ArtistBrief `json:"artist,omitempty"`
	Songs      []SongDetail `json:"songs,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ArtistBrief is the nested artist reference embedded in album and song DTOs.
type ArtistBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Detail shapes the album into its response DTO.
func (a *Album) Detail() AlbumDetail {
	d := AlbumDetail{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		Cover:      a.Cover,
		Year:       a.Year,
		Visibility: a.Visibility,
		CreatedAt:  a.CreatedAt,
	}
	if a.Artist != nil {
		d.Artist = &ArtistBrief{ID: a.Artist.ID, Name: a.Artist.Name}
	}
	for i := range a.Songs {
		d.Songs = append(d.Songs, a.Songs[i].Detail())
	}
	return d
}

package models

import (
	"time"
)

// Artist is a user's public-facing musician profile, bound 1:1 to its User.
type Artist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name      string    `gorm:"uniqueIndex;size:60;not null" json:"name"`
	Biography string    `gorm:"size:500" json:"biography"`
	Avatar    string    `json:"avatar"`
	Active    bool      `gorm:"default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Labels    []Label   `gorm:"many2many:artist_labels" json:"labels,omitempty"`
	Albums    []Album   `gorm:"foreignKey:ArtistID" json:"albums,omitempty"`
	Followers []User    `gorm:"many2many:artist_followers" json:"-"`
}

// ArtistProfile is the response DTO for artist data.
type ArtistProfile struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Biography string   `json:"biography,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Followers int64    `json:"followers"`
}

// Profile shapes the artist into its public DTO. The follower count is
// queried separately and passed in.
func (a *Artist) Profile(followers int64) ArtistProfile {
	p := ArtistProfile{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		Avatar:    a.Avatar,
		Followers: followers,
	}
	for _, l := range a.Labels {
		p.Labels = append(p.Labels, l.Name)
	}
	return p
}

// Label is an organizational entity artists belong to.
type Label struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:90;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Artists   []Artist  `gorm:"many2many:artist_labels" json:"artists,omitempty"`
}

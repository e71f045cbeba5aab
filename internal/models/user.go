// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account on the platform. A user owns at most one Artist
// profile. Deactivated accounts keep their row with Active=false.
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"uniqueIndex;size:80;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	FirstName        string     `gorm:"size:55;not null" json:"first_name"`
	LastName         string     `gorm:"size:55;not null" json:"last_name"`
	Phone            string     `gorm:"uniqueIndex;size:10" json:"phone"`
	Sex              int        `json:"sex"`
	BirthDate        time.Time  `json:"birth_date"`
	Avatar           string     `json:"avatar"`
	Active           bool       `gorm:"default:true" json:"-"`
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Artist           *Artist    `gorm:"foreignKey:UserID" json:"artist,omitempty"`
}

// Age returns the user's age in full years at the given instant, using
// anniversary arithmetic rather than day counting.
func (u *User) Age(now time.Time) int {
	years := now.Year() - u.BirthDate.Year()
	anniversary := time.Date(now.Year(), u.BirthDate.Month(), u.BirthDate.Day(),
		0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		years--
	}
	return years
}

// UserProfile is the response DTO for user data. Fields are enumerated
// explicitly so that password hashes and reset tokens can never serialize.
type UserProfile struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Sex       int       `json:"sex"`
	BirthDate string    `json:"birth_date"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ArtistID  *uint     `json:"artist_id,omitempty"`
}

// Profile shapes the user into its public DTO.
func (u *User) Profile() UserProfile {
	p := UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Sex:       u.Sex,
		BirthDate: u.BirthDate.Format("2006-01-02"),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
	if u.Artist != nil {
		id := u.Artist.ID
		p.ArtistID = &id
	}
	return p
}

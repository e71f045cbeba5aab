// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"chorus/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the login password of every seeded account.
const DefaultPassword = "Password123!"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	hash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// Hash once; bcrypt per user would dominate seeding time.
	hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		hash: string(hashed),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:     gofakeit.Email(),
		Password:  f.hash,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Phone:     fmt.Sprintf("%010d", f.rng.Int63n(1e10)),
		Sex:       f.rng.Intn(2),
		BirthDate: gofakeit.DateRange(
			time.Now().AddDate(-60, 0, 0),
			time.Now().AddDate(-18, 0, 0),
		),
		Active: true,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateArtist promotes the given user to an artist with a generated name.
func (f *Factory) CreateArtist(user *models.User, overrides ...func(*models.Artist)) (*models.Artist, error) {
	artist := &models.Artist{
		UserID: user.ID,
		Name: fmt.Sprintf("%s %s %d", gofakeit.AdjectiveDescriptive(),
			gofakeit.NounCollectivePeople(), gofakeit.Number(100, 999)),
		Biography: gofakeit.Sentence(12),
		Active:    true,
	}
	for _, override := range overrides {
		override(artist)
	}
	if err := f.db.Create(artist).Error; err != nil {
		return nil, err
	}
	return artist, nil
}

// CreateAlbum persists an album for the artist with a spread of creation
// dates so listings look lived-in.
func (f *Factory) CreateAlbum(artist *models.Artist, overrides ...func(*models.Album)) (*models.Album, error) {
	categories := []string{
		models.CategoryRock, models.CategoryPop,
		models.CategoryJazz, models.CategoryBlues,
	}
	album := &models.Album{
		Title:      fmt.Sprintf("%s %s", gofakeit.HipsterWord(), gofakeit.NounAbstract()),
		Category:   categories[f.rng.Intn(len(categories))],
		Year:       1990 + f.rng.Intn(time.Now().Year()-1990+1),
		Visibility: f.rng.Intn(4) > 0, // roughly a quarter stay drafts
		ArtistID:   artist.ID,
	}
	album.CreatedAt = time.Now().Add(-time.Duration(f.rng.Intn(365*24)) * time.Hour)
	for _, override := range overrides {
		override(album)
	}
	if err := f.db.Create(album).Error; err != nil {
		return nil, err
	}
	return album, nil
}

// CreateSong persists a song on the album, credited to the album's artist.
func (f *Factory) CreateSong(album *models.Album, overrides ...func(*models.Song)) (*models.Song, error) {
	song := &models.Song{
		Title:      fmt.Sprintf("%s %s", gofakeit.Verb(), gofakeit.NounConcrete()),
		Visibility: album.Visibility,
		AlbumID:    album.ID,
		ArtistID:   album.ArtistID,
	}
	for _, override := range overrides {
		override(song)
	}
	if err := f.db.Create(song).Error; err != nil {
		return nil, err
	}
	return song, nil
}

// CreateLabel persists a label with the given name, reusing an existing row
// when the name is already taken.
func (f *Factory) CreateLabel(name string) (*models.Label, error) {
	var label models.Label
	err := f.db.Where("name = ?", name).FirstOrCreate(&label, models.Label{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// CreatePlaylist persists a playlist owned by the user with the given songs
// appended in order.
func (f *Factory) CreatePlaylist(user *models.User, songs []models.Song, overrides ...func(*models.Playlist)) (*models.Playlist, error) {
	playlist := &models.Playlist{
		Title:  fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), "Mix"),
		Public: f.rng.Intn(2) == 0,
		UserID: user.ID,
	}
	for _, override := range overrides {
		override(playlist)
	}
	if err := f.db.Create(playlist).Error; err != nil {
		return nil, err
	}
	for i := range songs {
		entry := models.PlaylistSong{
			PlaylistID: playlist.ID,
			SongID:     songs[i].ID,
			Position:   i + 1,
		}
		if err := f.db.Create(&entry).Error; err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

package seed

import (
	"fmt"
	"log"

	"chorus/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArtists  int
	ShouldClean bool
}

// builtinLabels are always present after seeding so the catalog has
// something to group artists by.
var builtinLabels = []string{
	"Blue Harbor Records",
	"Night Owl Music",
	"Paper Lantern",
	"Static Bloom",
	"Golden Hour Collective",
}

// Seed populates the database with demo data. Roughly NumArtists of the
// NumUsers accounts get an artist profile with albums and songs; the rest
// stay plain listeners with playlists.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumArtists <= 0 || opts.NumArtists > opts.NumUsers {
		opts.NumArtists = opts.NumUsers / 2
	}

	log.Printf("Seeding database with %d users (%d artists)...", opts.NumUsers, opts.NumArtists)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Printf("warning: could not clear all existing data: %v", err)
		}
	}

	f := NewFactory(db)

	labels := make([]*models.Label, 0, len(builtinLabels))
	for _, name := range builtinLabels {
		label, err := f.CreateLabel(name)
		if err != nil {
			return fmt.Errorf("failed to create label %q: %w", name, err)
		}
		labels = append(labels, label)
	}
	log.Printf("%d labels available", len(labels))

	var allSongs []models.Song
	listeners := make([]*models.User, 0, opts.NumUsers-opts.NumArtists)

	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if i >= opts.NumArtists {
			listeners = append(listeners, user)
			continue
		}

		artist, err := f.CreateArtist(user)
		if err != nil {
			return fmt.Errorf("failed to create artist: %w", err)
		}

		label := labels[f.rng.Intn(len(labels))]
		if err := db.Model(artist).Association("Labels").Append(label); err != nil {
			return fmt.Errorf("failed to attach label: %w", err)
		}

		albums := 1 + f.rng.Intn(3)
		for a := 0; a < albums; a++ {
			album, err := f.CreateAlbum(artist)
			if err != nil {
				return fmt.Errorf("failed to create album: %w", err)
			}
			tracks := 3 + f.rng.Intn(6)
			for s := 0; s < tracks; s++ {
				song, err := f.CreateSong(album)
				if err != nil {
					return fmt.Errorf("failed to create song: %w", err)
				}
				if song.Visibility {
					allSongs = append(allSongs, *song)
				}
			}
		}
	}
	log.Printf("%d published songs created", len(allSongs))

	for _, listener := range listeners {
		if len(allSongs) == 0 {
			break
		}
		count := 2 + f.rng.Intn(6)
		if count > len(allSongs) {
			count = len(allSongs)
		}
		picked := make([]models.Song, 0, count)
		seen := map[uint]bool{}
		for len(picked) < count {
			s := allSongs[f.rng.Intn(len(allSongs))]
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			picked = append(picked, s)
		}
		if _, err := f.CreatePlaylist(listener, picked); err != nil {
			return fmt.Errorf("failed to create playlist: %w", err)
		}
	}

	log.Printf("Seeding complete. Every account logs in with %q", DefaultPassword)
	return nil
}

// Labels ensures the built-in labels exist without touching anything else.
// Safe to run on every startup.
func Labels(db *gorm.DB) error {
	f := NewFactory(db)
	for _, name := range builtinLabels {
		if _, err := f.CreateLabel(name); err != nil {
			return fmt.Errorf("failed to ensure label %q: %w", name, err)
		}
	}
	return nil
}

// clearData removes previously seeded rows. Join tables go first so foreign
// keys never block the deletes.
func clearData(db *gorm.DB) error {
	tables := []string{
		"playlist_songs",
		"playlists",
		"song_featurings",
		"songs",
		"albums",
		"artist_followers",
		"artist_labels",
		"artists",
		"labels",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

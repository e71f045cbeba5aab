package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"chorus/internal/config"
	"chorus/internal/middleware"
	"chorus/internal/models"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Media kinds map to subdirectories of the media root.
const (
	MediaKindCover  = "covers"
	MediaKindAudio  = "songs"
	MediaKindAvatar = "avatars"
)

const (
	MinUploadBytes = 1 << 20     // 1 MiB
	MaxUploadBytes = 7 * 1 << 20 // 7 MiB
	MaxImageSize   = 2048
	JPEGQuality    = 82
)

type MediaService struct {
	baseDir string
}

func NewMediaService(cfg *config.Config) *MediaService {
	dir := "/tmp/chorus/media"
	if cfg != nil && cfg.MediaDir != "" {
		dir = cfg.MediaDir
	}
	return &MediaService{baseDir: dir}
}

// Store validates a base64 data URL payload and persists it under the kind's
// directory. The stored filename is a fresh UUID with an extension derived
// from the sniffed content type, never from anything the client sent.
// It returns the path relative to the media root.
func (s *MediaService) Store(kind, dataURL string) (string, error) {
	content, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	return s.StoreBytes(kind, content)
}

// StoreBytes runs the size and content-type checks on raw bytes and persists them.
func (s *MediaService) StoreBytes(kind string, content []byte) (string, error) {
	if len(content) < MinUploadBytes {
		middleware.MediaUploadRejections.WithLabelValues("too_small").Inc()
		return "", models.NewUploadError("File too small (min 1MB)")
	}
	if len(content) > MaxUploadBytes {
		middleware.MediaUploadRejections.WithLabelValues("too_large").Inc()
		return "", models.NewUploadError("File too large (max 7MB)")
	}

	mimeType := sniffContentType(content)
	ext, ok := allowedExtension(kind, mimeType)
	if !ok {
		middleware.MediaUploadRejections.WithLabelValues("mime").Inc()
		return "", models.NewUploadError(fmt.Sprintf("Unsupported file type %q", mimeType))
	}

	if kind == MediaKindCover || kind == MediaKindAvatar {
		content, err := normalizeImage(content, mimeType)
		if err != nil {
			middleware.MediaUploadRejections.WithLabelValues("decode").Inc()
			return "", err
		}
		return s.persist(kind, content, ext)
	}

	return s.persist(kind, content, ext)
}

// Replace stores the new payload first and removes the previous file only
// once the new one is durably in place.
func (s *MediaService) Replace(kind, dataURL, oldRel string) (string, error) {
	rel, err := s.Store(kind, dataURL)
	if err != nil {
		return "", err
	}
	if oldRel != "" {
		s.Remove(oldRel)
	}
	return rel, nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *MediaService) Remove(rel string) {
	if rel == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.baseDir, filepath.Clean(rel)))
}

// Path resolves a stored relative path to its absolute location.
func (s *MediaService) Path(rel string) string {
	return filepath.Join(s.baseDir, filepath.Clean(rel))
}

func (s *MediaService) persist(kind string, content []byte, ext string) (string, error) {
	name := uuid.NewString() + ext
	rel := filepath.ToSlash(filepath.Join(kind, name))
	abs := filepath.Join(s.baseDir, kind, name)

	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", models.NewInternalError(err)
	}

	// Write to a temp file then rename so readers never observe partial writes.
	tmp, err := os.CreateTemp(filepath.Dir(abs), ".upload-*")
	if err != nil {
		return "", models.NewInternalError(err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", models.NewInternalError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", models.NewInternalError(err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		os.Remove(tmpName)
		return "", models.NewInternalError(err)
	}

	middleware.MediaUploadBytes.WithLabelValues(kind).Observe(float64(len(content)))
	return rel, nil
}

func decodeDataURL(dataURL string) ([]byte, error) {
	segments := strings.Split(dataURL, ",")
	if len(segments) != 2 {
		middleware.MediaUploadRejections.WithLabelValues("data_url").Inc()
		return nil, models.NewUploadError("Invalid data URL")
	}
	if !strings.HasPrefix(segments[0], "data:") {
		middleware.MediaUploadRejections.WithLabelValues("data_url").Inc()
		return nil, models.NewUploadError("Invalid data URL")
	}

	content, err := base64.StdEncoding.DecodeString(segments[1])
	if err != nil {
		middleware.MediaUploadRejections.WithLabelValues("base64").Inc()
		return nil, models.NewUploadError("Invalid base64 encoding")
	}
	return content, nil
}

// sniffContentType determines the MIME type from leading bytes. The stdlib
// sniffer covers images and common audio containers; bare MPEG frame streams
// without an ID3 tag need a manual check.
func sniffContentType(content []byte) string {
	detected := http.DetectContentType(content)
	if detected != "application/octet-stream" {
		return detected
	}
	if len(content) >= 2 && content[0] == 0xFF && content[1]&0xE0 == 0xE0 {
		return "audio/mpeg"
	}
	return detected
}

func allowedExtension(kind, mimeType string) (string, bool) {
	switch kind {
	case MediaKindCover, MediaKindAvatar:
		switch mimeType {
		case "image/jpeg":
			return ".jpg", true
		case "image/png":
			return ".png", true
		}
	case MediaKindAudio:
		switch mimeType {
		case "audio/mpeg":
			return ".mp3", true
		case "audio/wave", "audio/wav", "audio/x-wav":
			return ".wav", true
		}
	}
	return "", false
}

// normalizeImage decodes the payload and downscales anything larger than
// MaxImageSize, re-encoding in the original format.
func normalizeImage(content []byte, mimeType string) ([]byte, error) {
	decoded, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, models.NewUploadError("Invalid image file")
	}

	b := decoded.Bounds()
	if b.Dx() <= MaxImageSize && b.Dy() <= MaxImageSize {
		return content, nil
	}

	resized := resizeToFit(decoded, MaxImageSize, MaxImageSize)
	buf := bytes.NewBuffer(nil)
	switch mimeType {
	case "image/png":
		err = png.Encode(buf, resized)
	default:
		err = jpeg.Encode(buf, resized, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return buf.Bytes(), nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

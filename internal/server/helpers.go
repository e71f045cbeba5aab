package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"chorus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/limit query parameters.
type Pagination struct {
	Page  int
	Limit int
}

const (
	defaultPaginationLimit = 5
	maxPaginationLimit     = 100
)

// Offset converts the page number into a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePagination extracts page and limit query parameters. Absent parameters
// take defaults; present but non-numeric or sub-1 values are rejected. On
// failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) parsePagination(c *fiber.Ctx) (Pagination, error) {
	p := Pagination{Page: 1, Limit: defaultPaginationLimit}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			_ = models.RespondWithError(c,
				models.NewValidationError("Invalid pagination parameters"))
			return Pagination{}, errResponseWritten
		}
		p.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			_ = models.RespondWithError(c,
				models.NewValidationError("Invalid pagination parameters"))
			return Pagination{}, errResponseWritten
		}
		if limit > maxPaginationLimit {
			limit = maxPaginationLimit
		}
		p.Limit = limit
	}

	return p, nil
}

// paginatedResponse renders a list payload with its pagination metadata.
// totalPages is ceil(total/limit); out-of-range pages keep accurate metadata
// around an empty list.
func paginatedResponse(c *fiber.Ctx, key string, items any, total int64, p Pagination) error {
	totalPages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		totalPages++
	}
	return c.JSON(fiber.Map{
		"error":       false,
		key:           items,
		"total":       total,
		"total_pages": totalPages,
		"page":        p.Page,
		"limit":       p.Limit,
	})
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "songId" -> "song ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// parseStrictBody decodes the JSON request body into dest, rejecting any key
// the target struct does not declare. On failure it writes a 400 JSON
// response and returns errResponseWritten.
func (s *Server) parseStrictBody(c *fiber.Ctx, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		msg := "Invalid request body"
		if strings.Contains(err.Error(), "unknown field") {
			msg = "Unexpected field in request body"
		}
		_ = models.RespondWithError(c, models.NewValidationError(msg))
		return errResponseWritten
	}
	return nil
}

// currentUserID returns the authenticated user ID placed in locals by
// AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

package server

import (
	"chorus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLabels handles GET /api/labels
// @Summary List labels
// @Tags labels
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{labels=[]models.Label,total=int,total_pages=int,page=int,limit=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /labels [get]
func (s *Server) GetLabels(c *fiber.Ctx) error {
	p, err := s.parsePagination(c)
	if err != nil {
		return nil
	}

	labels, total, err := s.labelService.List(c.Context(), p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return paginatedResponse(c, "labels", labels, total, p)
}

// GetLabel handles GET /api/labels/:id
// @Summary Get a label with its active artists
// @Tags labels
// @Produce json
// @Param id path int true "Label ID"
// @Success 200 {object} object{label=models.Label}
// @Failure 404 {object} models.ErrorResponse
// @Router /labels/{id} [get]
func (s *Server) GetLabel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	label, err := s.labelService.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"error": false,
		"label": label,
	})
}

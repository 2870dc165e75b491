package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/Zamiel01/vitaebot/internal/model"
	"github.com/Zamiel01/vitaebot/internal/usecase"
)

// CVStore is the slice of the repository the handlers need.
type CVStore interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Record, error)
	Save(ctx context.Context, userID uuid.UUID, rec model.Record) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Handler struct {
	store      CVStore
	exporter   *usecase.Exporter
	renderer   *usecase.TemplateRenderer
	schemaPath string
}

func NewHandler(store CVStore, exporter *usecase.Exporter, renderer *usecase.TemplateRenderer, schemaPath string) *Handler {
	return &Handler{store: store, exporter: exporter, renderer: renderer, schemaPath: schemaPath}
}

// GetCV returns the user's stored record; a user without one gets the
// empty record, never a 404.
func (h *Handler) GetCV(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	rec, err := h.store.Get(c.Context(), uid)
	if err != nil {
		log.Error().Err(err).Str("user", uid.String()).Msg("failed to load cv")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load cv"})
	}
	return c.JSON(rec)
}

type saveReq struct {
	CVData           model.Document `json:"cvData"`
	SelectedTemplate string         `json:"selectedTemplate"`
}

// SaveCV upserts the whole record. The body is checked against the record
// schema before anything is written, so a failed save never leaves a
// partially applied document behind.
func (h *Handler) SaveCV(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(c.Body(), &asMap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateRecordMap(h.schemaPath, asMap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req saveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	rec := model.Record{
		CVData:           req.CVData,
		SelectedTemplate: model.NormalizeTemplate(req.SelectedTemplate),
	}
	if err := h.store.Save(c.Context(), uid, rec); err != nil {
		log.Error().Err(err).Str("user", uid.String()).Msg("failed to save cv")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save cv"})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// DeleteCV removes the stored record, resetting the user to the empty
// document on their next load.
func (h *Handler) DeleteCV(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	if err := h.store.Delete(c.Context(), uid); err != nil {
		log.Error().Err(err).Str("user", uid.String()).Msg("failed to delete cv")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete cv"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

type exportReq struct {
	CVData           model.Document `json:"cvData"`
	SelectedTemplate string         `json:"selectedTemplate"`
}

// ExportPDF renders, rasterizes and paginates the posted document. A
// failure anywhere is terminal for the export; no partial file is sent.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	pdf, err := h.exporter.ExportPDF(c.Context(), req.CVData, req.SelectedTemplate)
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.ExportFilename+`"`)
	return c.Send(pdf)
}

// Preview returns the rendered HTML for the live preview pane.
func (h *Handler) Preview(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	html, err := h.renderer.RenderHTML(req.CVData, req.SelectedTemplate)
	if err != nil {
		log.Error().Err(err).Msg("preview render failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "preview render failed"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Templates lists the supported template identifiers.
func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": model.TemplateIDs(), "default": model.DefaultTemplate})
}

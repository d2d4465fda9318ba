package builder

import (
	"bytes"
	"errors"

	"modlist-builder/core/logger"
	"modlist-builder/core/modlist"
	"modlist-builder/feature/preset"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for modlist builds.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the modlist routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/modlist", h.HandleBuild)
}

// HandleBuild builds the lists for the preset HTML sent as the request body.
// Entries that are not installed terminate the build with 409 unless
// allow_unmatched=true is set.
// @Summary Build Modlist
// @Description Matches the preset HTML in the request body against the launcher's Steam.json and returns the ordered name and id lists. Nothing is written on the server.
// @Tags modlist
// @Accept html
// @Produce json
// @Param preset body string true "Launcher preset HTML"
// @Param family query string false "Override preset family detection" Enums(arma, dayz)
// @Param allow_unmatched query boolean false "Continue without entries that are not installed"
// @Success 200 {object} builder.Outcome "Built modlist"
// @Failure 400 {object} map[string]string "Unknown family"
// @Failure 404 {object} map[string]string "Steam.json not found"
// @Failure 409 {object} map[string]interface{} "Preset entries are not installed"
// @Failure 422 {object} map[string]string "Preset or manifest cannot be used"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modlist [post]
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var opts preset.Options
	if raw := c.Query("family"); raw != "" {
		family, err := modlist.ParseFamily(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		opts.Family = family
	}

	confirmer := DeclineUnmatched
	if c.QueryBool("allow_unmatched", false) {
		confirmer = AcceptUnmatched
	}

	doc, err := preset.Parse(bytes.NewReader(c.Body()), opts)
	if err != nil {
		l.Warn("Preset rejected", zap.Error(err))
		return h.fail(c, err)
	}

	outcome, err := h.service.Assemble(c.Context(), doc, confirmer)
	if err != nil {
		l.Warn("Build failed", zap.Error(err))
		return h.fail(c, err)
	}

	return c.JSON(outcome)
}

// fail maps pipeline errors to responses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var (
		notFound  *modlist.DirectoryNotFoundError
		parseErr  *modlist.ParseError
		separator *modlist.NameContainsSeparatorError
		unmatched *modlist.UnmatchedEntriesError
	)

	switch {
	case errors.Is(err, modlist.ErrTerminated) && errors.As(err, &unmatched):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     "preset entries are not installed",
			"unmatched": unmatched.Entries,
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &parseErr), errors.As(err, &separator), errors.Is(err, modlist.ErrUnknownFamily):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/komekomeaaa/tarot/internal/app"
	"github.com/komekomeaaa/tarot/internal/domain"
)

const (
	maxGoalLen      = 500
	maxSituationLen = 1000
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	svc    *app.ReadingService
	checks []HealthCheck
}

func NewHandler(svc *app.ReadingService, checks ...HealthCheck) *Handler {
	return &Handler{svc: svc, checks: checks}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/v1")
	v1.GET("/spreads", h.Spreads)
	v1.GET("/sigil/questions", h.Questions)
	v1.POST("/sigil/classify", h.Classify)
	v1.POST("/readings", h.CreateReading)
	v1.POST("/sessions/:id/context", h.SaveContext)
	v1.POST("/sessions/:id/draw", h.Draw)
	v1.POST("/sessions/:id/reading", h.Generate)
	v1.POST("/usage", h.Usage)
}

func (h *Handler) Healthz(c echo.Context) error {
	for _, check := range h.checks {
		if err := check(c.Request().Context()); err != nil {
			slog.Warn("health check failed", "error", err)
			return c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
		}
	}
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Spreads(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Spreads())
}

func (h *Handler) Questions(c echo.Context) error {
	q, err := h.svc.Questions(c.QueryParam("mode"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) Classify(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	res, err := h.svc.Classify(app.ClassifyRequest{
		Mode:   req.Mode,
		Binary: req.binary(),
		Likert: req.likert(),
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateReading(c echo.Context) error {
	var req ReadingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if msg := checkContext(req.Context); msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	if req.Spread == "" {
		req.Spread = domain.SpreadThreeCard
	}

	resp, err := h.svc.ReadSpread(c.Request().Context(), app.ReadSpreadRequest{
		UserID:    c.Request().Header.Get(headerUserID),
		SessionID: req.SessionID,
		Spread:    req.Spread,
		User:      req.Context,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, ReadingResponse{
		Reading: resp.Reading,
		Cards:   h.cards(c.Request().Context(), resp.Draw.Cards),
		Meta:    MetaResp{RequestID: requestID(c), LatencyMS: resp.LatencyMS},
	})
}

func (h *Handler) SaveContext(c echo.Context) error {
	var uc domain.UserContext
	if err := c.Bind(&uc); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if msg := checkContext(uc); msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	if err := h.svc.SaveContext(c.Request().Context(), c.Param("id"), uc); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	draw, err := h.svc.Draw(c.Request().Context(), c.Param("id"), req.Spread)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, draw)
}

func (h *Handler) Generate(c echo.Context) error {
	reading, err := h.svc.Generate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ReadingResponse{
		Reading: reading,
		Meta:    MetaResp{RequestID: requestID(c)},
	})
}

func (h *Handler) Usage(c echo.Context) error {
	userID := c.Request().Header.Get(headerUserID)
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: headerUserID + " header is required"})
	}
	var req UsageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	st, err := h.svc.Usage(c.Request().Context(), userID, req.Action, req.SigilType)
	if errors.Is(err, domain.ErrMonthlyLimit) {
		return c.JSON(http.StatusForbidden, st)
	}
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) cards(ctx context.Context, drawn []domain.DrawnCard) []CardResponse {
	catalog, err := h.svc.Catalog(ctx)
	if err != nil {
		return nil
	}
	out := make([]CardResponse, len(drawn))
	for i, dc := range drawn {
		card, _ := catalog.Lookup(dc.CardID)
		out[i] = CardResponse{
			PositionID:  dc.PositionID,
			ID:          dc.CardID,
			Name:        card.Name,
			Orientation: dc.Orientation,
			Keywords:    card.Keywords(dc.Orientation),
		}
	}
	return out
}

func checkContext(uc domain.UserContext) string {
	switch {
	case utf8.RuneCountInString(uc.Goal) > maxGoalLen:
		return "goal must be at most 500 characters"
	case utf8.RuneCountInString(uc.Situation) > maxSituationLen:
		return "situation must be at most 1000 characters"
	case uc.Urgency < 0 || uc.Urgency > 5:
		return "urgency must be between 1 and 5"
	}
	return ""
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSessionPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrMonthlyLimit):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidN), errors.Is(err, domain.ErrNExceedsDeck),
		errors.Is(err, domain.ErrUnknownSpread), errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidSigil), errors.Is(err, domain.ErrInvalidAnswer),
		errors.Is(err, domain.ErrInvalidMode), errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrSigilRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}


package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/api/metrics"
	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

const recommendCount = 3

// AIHandler serves the assistant endpoints.
type AIHandler struct {
	menu    ports.MenuService
	chat    ports.ChatService
	signals ports.SignalRecorder
	log     zerolog.Logger
}

func NewAIHandler(menu ports.MenuService, chat ports.ChatService, signals ports.SignalRecorder, log zerolog.Logger) *AIHandler {
	return &AIHandler{menu: menu, chat: chat, signals: signals, log: log}
}

// Recommend returns the first few catalog items.
//
// @Summary      Recommended dishes
// @Tags         ai
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  errorResponse
// @Router       /api/ai/recommend [get]
func (h *AIHandler) Recommend(c echo.Context) error {
	items, err := h.menu.Recommend(c.Request().Context(), recommendCount)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Learn acknowledges an interaction hint. It succeeds for every
// authenticated caller, even when the signal has to be dropped.
//
// @Summary      Record a learning signal
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      learnRequest  false  "Signal"
// @Success      200   {object}  successResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/ai/learn [post]
func (h *AIHandler) Learn(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req learnRequest
	if err := c.Bind(&req); err != nil {
		h.log.Debug().Err(err).Msg("learn: unreadable body, acknowledging anyway")
	}

	signal := domain.LearnSignal{UserID: claims.UserID, Category: req.Category, Name: req.Name}
	if err := h.signals.Record(c.Request().Context(), signal); err != nil {
		metrics.LearnSignalsTotal.WithLabelValues("dropped").Inc()
		h.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("learn: signal dropped")
	} else {
		metrics.LearnSignalsTotal.WithLabelValues("accepted").Inc()
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Chat answers a customer question using the menu. Generation failures are
// reported in the reply text, never as an error status.
//
// @Summary      Ask the assistant
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Customer message"
// @Success      200   {object}  chatResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		h.log.Debug().Err(err).Msg("chat: unreadable body, treating as empty message")
		req = chatRequest{}
	}

	res := h.chat.Reply(c.Request().Context(), ports.ChatInput{UserID: claims.UserID, Message: req.Message})

	metrics.ChatRepliesTotal.WithLabelValues(string(res.Outcome)).Inc()
	if res.FailureKind != "" {
		metrics.GenerationFailuresTotal.WithLabelValues(string(res.FailureKind)).Inc()
	}

	return c.JSON(http.StatusOK, chatResponse{Reply: res.Reply})
}

package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

const (
	GreetingReply = "Hi! I'm your restaurant AI assistant. Ask me about our menu, prices, or recommendations!"
	FallbackReply = "Sorry, due to a system error, the AI assistant is currently unavailable. Please contact our attendance staff for assistance."

	// maxMenuBytes bounds the rendered menu handed to the generator.
	maxMenuBytes      = 6000
	uncategorized     = "Other"
	menuTruncatedLine = "(menu truncated)\n"
)

// ChatService answers customer questions using the menu as context. It
// never returns an error: every failure collapses into FallbackReply.
type ChatService struct {
	menu    ports.MenuReader
	gen     ports.TextGenerator
	timeout time.Duration
	logger  zerolog.Logger
}

// NewChatService builds the pipeline. gen may be nil when no generation
// credential is configured; every non-empty message then gets the fallback.
func NewChatService(menu ports.MenuReader, gen ports.TextGenerator, timeout time.Duration, logger zerolog.Logger) *ChatService {
	return &ChatService{menu: menu, gen: gen, timeout: timeout, logger: logger}
}

func (s *ChatService) Reply(ctx context.Context, input ports.ChatInput) ports.ChatResult {
	log := s.logger.With().Str("user_id", input.UserID).Logger()

	if input.Message == "" {
		log.Info().Msg("chat: empty message, greeting")
		return ports.ChatResult{Reply: GreetingReply, Outcome: ports.ChatGreeting}
	}

	if s.gen == nil {
		log.Warn().Msg("chat: generation not configured, fallback")
		return fallback("")
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("chat: menu retrieval failed, fallback")
		return fallback("")
	}

	prompt := buildPrompt(renderMenu(items), input.Message)
	log.Debug().Str("prompt_prefix", prefix(prompt, 200)).Msg("chat: sending prompt")

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.gen.Complete(callCtx, prompt)
	if err != nil {
		kind := domain.GenerationErrorKindOf(err)
		log.Warn().Err(err).Str("kind", string(kind)).Msg("chat: generation failed, fallback")
		return fallback(kind)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		log.Warn().Str("kind", string(domain.GenerationMalformed)).Msg("chat: blank reply, fallback")
		return fallback(domain.GenerationMalformed)
	}

	log.Info().Msg("chat: reply generated")
	return ports.ChatResult{Reply: reply, Outcome: ports.ChatGenerated}
}

func fallback(kind domain.GenerationErrorKind) ports.ChatResult {
	return ports.ChatResult{Reply: FallbackReply, Outcome: ports.ChatFallback, FailureKind: kind}
}

// renderMenu groups items by category in first-seen order and writes one
// "- name: $price" line per item. Output stops at maxMenuBytes.
func renderMenu(items []domain.MenuItem) string {
	var order []string
	groups := make(map[string][]domain.MenuItem)
	for _, it := range items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			cat = uncategorized
		}
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], it)
	}

	var b strings.Builder
	b.WriteString("Restaurant Menu:\n\n")
	budget := maxMenuBytes - len(menuTruncatedLine)

	write := func(line string) bool {
		if b.Len()+len(line) > budget {
			b.WriteString(menuTruncatedLine)
			return false
		}
		b.WriteString(line)
		return true
	}

	for _, cat := range order {
		if !write(cat + ":\n") {
			return b.String()
		}
		for _, it := range groups[cat] {
			if !write(fmt.Sprintf("- %s: $%.2f\n", it.Name, displayPrice(it.Price))) {
				return b.String()
			}
		}
		if !write("\n") {
			return b.String()
		}
	}
	return b.String()
}

func displayPrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}

// buildPrompt embeds the customer message verbatim. It is not sanitized
// against instructions hidden in the message.
func buildPrompt(menuText, message string) string {
	return fmt.Sprintf(`You are a helpful restaurant assistant. Here is our current menu:

%s

Customer: "%s"

Please answer the customer's question. If it's about menu items, prices, or recommendations, use the menu data above. For other questions, feel free to provide helpful responses.

Your answer:`, menuText, message)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/intent"
	"github.com/sant0-9/concierge/internal/responder"
)

type chatRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type chatResponse struct {
	Answer   string `json:"answer"`
	Intent   string `json:"intent"`
	Fallback string `json:"fallback"`
	Language string `json:"language"`
}

type intentInfo struct {
	ID       string              `json:"id"`
	Icon     string              `json:"icon"`
	Keywords map[string][]string `json:"keywords"`
}

type handlers struct {
	chat *chat.Service
	log  *zap.Logger
}

func (h *handlers) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *handlers) ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), chat.Request{Query: req.Query, Locale: req.Language})
	if err != nil {
		status, code := classify(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("chat request failed", zap.Error(err))
		}
		respondError(c, status, code, err)
		return
	}

	respondOK(c, chatResponse{
		Answer:   reply.Text,
		Intent:   string(reply.Intent),
		Fallback: string(reply.Fallback),
		Language: string(reply.Locale),
	})
}

func (h *handlers) intents(c *gin.Context) {
	defs := intent.Definitions()
	out := make([]intentInfo, 0, len(defs))
	for _, d := range defs {
		kw := make(map[string][]string, len(content.Locales))
		for _, l := range content.Locales {
			kw[string(l)] = d.Keywords[l]
		}
		out = append(out, intentInfo{ID: string(d.ID), Icon: responder.Icon(d.ID), Keywords: kw})
	}
	respondOK(c, gin.H{"intents": out})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery):
		return http.StatusBadRequest, "empty_query"
	case errors.Is(err, chat.ErrQueryTooLong):
		return http.StatusBadRequest, "query_too_long"
	case errors.Is(err, content.ErrUnsupportedLocale):
		return http.StatusBadRequest, "unsupported_language"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "cancelled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

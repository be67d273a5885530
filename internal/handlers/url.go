package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortly-go/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler adapts the mapping service to the HTTP surface.
type URLHandler struct {
	service *shortener.Service
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(service *shortener.Service, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		logger:  logger,
	}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	shortURL, err := h.service.Shorten(ctx, req.Body.URL)
	if err != nil {
		var exhausted *shortener.CodeSpaceExhaustedError
		if errors.As(err, &exhausted) {
			h.logger.Error("code space exhausted",
				zap.Int("attempts", exhausted.Attempts),
			)

			return nil, huma.Error500InternalServerError("could not allocate a unique short code")
		}

		h.logger.Error("failed to shorten url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to shorten url")
	}

	resp := &ShortenResponse{}
	resp.Body.ShortURL = shortURL

	return resp, nil
}

func (h *URLHandler) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResponse, error) {
	code := ExtractCode(req.Body.ShortURL)

	longURL, err := h.service.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve code", zap.String("code", code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve url")
	}

	resp := &ResolveResponse{}
	resp.Body.LongURL = longURL

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	longURL, err := h.service.Resolve(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve code", zap.String("code", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve url")
	}

	resp := &RedirectResponse{
		Status: http.StatusMovedPermanently,
	}
	resp.Headers.Location = longURL

	return resp, nil
}

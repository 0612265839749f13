package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sagarc03/textstore"
)

// DefaultAllowedMethods is used when CORSConfig.AllowedMethods is empty.
var DefaultAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

type Service interface {
	Append(ctx context.Context, text string) (textstore.AppendResult, error)
	Read(ctx context.Context, filename string) (textstore.ReadResult, error)
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
	AllowedMethods []string `mapstructure:"allowed_methods" validate:"min=1"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age" validate:"min=0"`
}

type HandlerConfig struct {
	// BasePath is prepended to every route. Empty or "/prefix" without a trailing slash.
	BasePath string
	CORS     CORSConfig
}

// Handler provides HTTP handlers for the append and read endpoints.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler serving <base>/writeFile and <base>/readFile/*
// for any method. OPTIONS on any path is answered by the CORS middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     h.config.CORS.AllowedOrigins,
		AllowedMethods:     h.config.CORS.AllowedMethods,
		AllowedHeaders:     h.config.CORS.AllowedHeaders,
		MaxAge:             h.config.CORS.MaxAge,
		OptionsPassthrough: true,
	}))
	r.Use(CORSHeaders(h.config.CORS))

	base := h.config.BasePath
	r.HandleFunc(base+"/writeFile", h.handleWrite)
	r.HandleFunc(base+"/writeFile/", h.handleWrite)
	r.HandleFunc(base+"/readFile/*", h.handleRead)
	r.NotFound(h.handleNotFound)
	// chi only routes its standard method set; anything else lands here.
	r.MethodNotAllowed(h.handleAnyMethod)

	return r
}

// handleAnyMethod dispatches by path alone, mirroring the registered routes.
func (h *Handler) handleAnyMethod(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}

	base := h.config.BasePath
	readPrefix := base + "/readFile/"

	switch {
	case path == base+"/writeFile" || path == base+"/writeFile/":
		h.handleWrite(w, r)
	case strings.HasPrefix(path, readPrefix):
		h.serveRead(w, r, strings.TrimPrefix(path, readPrefix))
	default:
		h.handleNotFound(w, r)
	}
}

func (h *Handler) handleWrite(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		WriteError(w, http.StatusBadRequest, MsgMissingText)
		return
	}

	res, err := h.service.Append(r.Context(), text)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteAppended(w, res.Text)
}

func (h *Handler) handleRead(w http.ResponseWriter, r *http.Request) {
	h.serveRead(w, r, chi.URLParam(r, "*"))
}

// serveRead answers a read for the raw path suffix after /readFile/.
func (h *Handler) serveRead(w http.ResponseWriter, r *http.Request, filename string) {
	// chi routes on RawPath when it is set, leaving the wildcard escaped.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(filename)
		if err != nil {
			WriteError(w, http.StatusBadRequest, MsgInvalidFilename)
			return
		}
		filename = unescaped
	}

	filename = textstore.NormalizeFilename(filename)
	if filename == "" {
		WriteError(w, http.StatusBadRequest, MsgMissingFilename)
		return
	}

	res, err := h.service.Read(r.Context(), filename)
	if err != nil {
		HandleError(w, err)
		return
	}

	if !res.Found {
		WriteNotFound(w, filename)
		return
	}

	_ = WriteContent(w, http.StatusOK, ContentTypeText, res.Content)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	base := h.config.BasePath
	WriteError(w, http.StatusNotFound, fmt.Sprintf(
		"Not found. Use %s/writeFile/?text=<value> or %s/readFile/<filename>", base, base))
}

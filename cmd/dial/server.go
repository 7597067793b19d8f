package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/canvas"
	"github.com/gogpu/dial/internal/store"
)

const maxPropsBytes = 4 << 20

// server is the HTTP host of the dial.
type server struct {
	log    zerolog.Logger
	assets canvas.AssetLoader
	// assetSource names where assets come from. It is part of the cache
	// key, so images drawn from other artwork are never served.
	assetSource string
	cache       store.Cache
	origins     []string
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := s.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Dial-Value"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/schema", s.handleSchema)
	r.Post("/render", s.handleRender)
	return r
}

// requestLogger logs one line per request through zerolog.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dial.ControlPanel())
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPropsBytes))
	dec.UseNumber()
	var props dial.ChartProps
	if err := dec.Decode(&props); err != nil {
		writeError(w, http.StatusBadRequest, "invalid chart props: "+err.Error())
		return
	}
	if !(props.Width > 0) || !(props.Height > 0) {
		writeError(w, http.StatusBadRequest, "width and height must be positive")
		return
	}

	res, err := dial.Transform(props)
	switch {
	case errors.Is(err, dial.ErrDataShape):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, dial.ErrConfiguration):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	key := s.cacheKey(props)
	if img, ok := s.cached(r, key); ok {
		w.Header().Set("X-Dial-Cache", "hit")
		writePNGBytes(w, img, res.Value)
		return
	}

	var buf bytes.Buffer
	renderer := &canvas.Renderer{Assets: s.assets}
	if err := renderer.EncodePNG(&buf, res.Scene()); err != nil {
		s.log.Error().Err(err).Msg("render failed")
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	if key != "" {
		if err := s.cache.Put(r.Context(), key, buf.Bytes()); err != nil {
			s.log.Warn().Err(err).Msg("cache put failed")
		}
	}
	writePNGBytes(w, buf.Bytes(), res.Value)
}

func (s *server) cacheKey(props dial.ChartProps) string {
	if s.cache == nil {
		return ""
	}
	key, err := store.Key(struct {
		Assets string
		Props  dial.ChartProps
	}{s.assetSource, props})
	if err != nil {
		s.log.Warn().Err(err).Msg("cache key failed")
		return ""
	}
	return key
}

func (s *server) cached(r *http.Request, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}
	img, ok, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.log.Warn().Err(err).Msg("cache get failed")
		return nil, false
	}
	return img, ok
}

func writePNGBytes(w http.ResponseWriter, img []byte, value float64) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Dial-Value", strconv.FormatFloat(value, 'g', -1, 64))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

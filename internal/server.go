package internal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/penwern/curate-museum-crosswalk/pkg/crosswalk"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/penwern/curate-museum-crosswalk/pkg/metadata"
	"github.com/penwern/curate-museum-crosswalk/pkg/utils"
	"github.com/segmentio/encoding/json"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type formatInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Extensions  []string `json:"extensions"`
}

// Handler routes the conversion API.
func Handler(svc *Service, maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /convert", convertHandler(svc, maxBodyBytes))
	mux.HandleFunc("GET /formats", formatsHandler(svc))
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

func convertHandler(svc *Service, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		data, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, err, "TooLarge")
				return
			}
			writeError(w, http.StatusBadRequest, err, "BadRequest")
			return
		}

		results, err := svc.ConvertBytes(data, r.URL.Query().Get("format"))
		if err != nil {
			if errors.Is(err, crosswalk.ErrUnknownFormat) {
				writeError(w, http.StatusBadRequest, err, "UnknownFormat")
				return
			}
			logger.Warn("convert error: %s", utils.TruncateError(err.Error(), 300))
			writeError(w, http.StatusUnprocessableEntity, err, metadata.ErrorKind(err))
			return
		}

		artworks := make([]*metadata.Artwork, 0, len(results))
		var firstErr error
		for _, res := range results {
			if res.Err != nil {
				if firstErr == nil {
					firstErr = res.Err
				}
				continue
			}
			artworks = append(artworks, res.Artwork)
		}
		if len(artworks) == 0 && firstErr != nil {
			writeError(w, http.StatusUnprocessableEntity, firstErr, metadata.ErrorKind(firstErr))
			return
		}
		if skipped := len(results) - len(artworks); skipped > 0 {
			w.Header().Set("X-Skipped-Records", strconv.Itoa(skipped))
		}
		writeJSON(w, http.StatusOK, artworks)
	}
}

func formatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var formats []formatInfo
		for _, f := range svc.Formats() {
			formats = append(formats, formatInfo{Name: f.Name(), Description: f.Description(), Extensions: f.Extensions()})
		}
		writeJSON(w, http.StatusOK, formats)
	}
}

func writeError(w http.ResponseWriter, status int, err error, kind string) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("error writing response: %v", err)
	}
}

// Serve blocks serving the API on addr until ctx is done.
func Serve(ctx context.Context, svc *Service, addr string, maxBodyBytes int64) error {
	srv := &http.Server{Addr: addr, Handler: Handler(svc, maxBodyBytes)}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down HTTP server: %v", err)
		}
	}()

	logger.Info("Listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
)

type Clock interface {
	Now(ctx context.Context) (time.Time, error)
}

type dbCheckResponse struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type SystemHandler struct {
	db Clock
}

func NewSystemHandler(db Clock) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Backend API is running!"))
	}
}

func (h *SystemHandler) Hello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Message(w, "Hello from the storefront backend!")
	}
}

func (h *SystemHandler) TestDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		now, err := h.db.Now(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Database check failed", slog.Any("error", err))
			response.Error(w, appErrors.DatabaseError("Database connection failed").WithError(err))
			return
		}

		response.Success(w, http.StatusOK, dbCheckResponse{Message: "DB connected!", Time: now})
	}
}

// StaticFiles serves the storefront assets under dir.
func StaticFiles(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

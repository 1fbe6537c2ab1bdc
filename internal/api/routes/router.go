package routes

import (
	"net/http"

	"github.com/evelinastr/trainingclub/internal/api/handlers"
	"github.com/evelinastr/trainingclub/internal/api/middleware"
	"github.com/evelinastr/trainingclub/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler     *handlers.UserHandler
	exerciseHandler *handlers.ExerciseHandler
	commentHandler  *handlers.CommentHandler
	sessionHandler  *handlers.SessionHandler
	bookingHandler  *handlers.BookingHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	exerciseHandler *handlers.ExerciseHandler,
	commentHandler *handlers.CommentHandler,
	sessionHandler *handlers.SessionHandler,
	bookingHandler *handlers.BookingHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		userHandler:     userHandler,
		exerciseHandler: exerciseHandler,
		commentHandler:  commentHandler,
		sessionHandler:  sessionHandler,
		bookingHandler:  bookingHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Account endpoints
	r.mux.HandleFunc("POST /api/users/register", r.userHandler.Register)
	r.mux.HandleFunc("POST /api/users/login", r.userHandler.Login)

	// Exercise endpoints
	r.mux.HandleFunc("GET /api/exercises", r.exerciseHandler.ListExercises)
	r.mux.HandleFunc("POST /api/exercises", r.exerciseHandler.CreateExercise)
	r.mux.HandleFunc("GET /api/exercises/{id}", r.exerciseHandler.GetExercise)

	// Comment endpoints
	r.mux.HandleFunc("GET /api/exercises/{id}/comments", r.commentHandler.ListComments)
	r.mux.HandleFunc("POST /api/exercises/{id}/comments", r.commentHandler.AppendComment)
	r.mux.HandleFunc("DELETE /api/exercises/{exerciseId}/comments/{commentId}", r.commentHandler.DeleteComment)

	// Session endpoints
	r.mux.HandleFunc("GET /api/sessions", r.sessionHandler.ListSessions)
	r.mux.HandleFunc("POST /api/sessions", r.sessionHandler.CreateSession)

	// Booking endpoint
	r.mux.HandleFunc("POST /api/bookings", r.bookingHandler.CreateBooking)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}

package middleware

import (
	"fmt"
	"net/http"
	"taskboard/config"
	"taskboard/infras/otel"
	"taskboard/shared/cache"
	"taskboard/shared/constant"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing() func(http.Handler) http.Handler
	RequestID() func(http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.method":     r.Method,
				"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			scope.SetAttributes(map[string]any{
				"http.status_code": rec.status,
			})
		})
	}
}

// RequestID tags every request with a fresh id, unless the caller already
// supplied one, and echoes it back on the response.
func (a *appMiddleware) RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constant.RequestHeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(constant.RequestHeaderRequestID, requestID)
			}

			w.Header().Set(constant.RequestHeaderRequestID, requestID)

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsConfig := a.config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})
}

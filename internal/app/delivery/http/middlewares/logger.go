package middlewares

import (
	"net/http"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		m.Log.Info("request completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, ww.Status()),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	})
}

func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)

			tz, err := time.LoadLocation(appConfig.Timezone)
			if err != nil {
				tz = time.UTC
			}

			log.Printf("%s | %s | %s ==> %s | %s", time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
		})
	}
}

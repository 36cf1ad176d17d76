package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

func New() (*zap.SugaredLogger, error) {
	lg, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return lg.Sugar(), nil
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// LoggingMiddleware - logs every request with its final status, duration and
// response size.
func LoggingMiddleware(lg *zap.SugaredLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &loggingResponseWriter{
				ResponseWriter: w,
				responseData: &responseData{
					status: http.StatusOK,
					size:   0,
				},
			}

			next.ServeHTTP(rw, r)

			lg.Infof("request-> uri: %s, method: %s, status: %d, duration: %s, size: %d",
				r.RequestURI,
				r.Method,
				rw.responseData.status,
				time.Since(start),
				rw.responseData.size,
			)
		})
	}
}

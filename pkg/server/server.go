// Package server exposes queue diagnostics over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-syncqueue/pkg/common/http/handler"
	"github.com/huynhanx03/go-syncqueue/pkg/datastructs/queue"
)

const shutdownTimeout = 5 * time.Second

// StatsSource is anything that can report queue counters.
type StatsSource interface {
	Stats() queue.Stats
}

// NewRouter builds the diagnostics router:
//
//	GET /stats    queue counters
//	GET /healthz  liveness
func NewRouter(src StatsSource, mode string, log *zap.Logger) *gin.Engine {
	gin.SetMode(mode)

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(log))

	r.GET("/stats", handler.Wrap[queue.Stats](func(context.Context) (queue.Stats, error) {
		return src.Stats(), nil
	}))
	r.GET("/healthz", handler.Wrap[string](func(context.Context) (string, error) {
		return "ok", nil
	}))

	return r
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("diagnostics server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "failed to serve on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down diagnostics server")
	}
	<-errc // http.ErrServerClosed
	log.Info("diagnostics server stopped")
	return nil
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

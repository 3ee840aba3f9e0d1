package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request after the handler returns.
// Each entry carries the request id set by RequestID and, when the caller
// identifies a record session, the session id, so all requests of one
// session can be pulled from the logs with a single filter. Handler errors
// raise the entry to error level.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			rid, _ := c.Get("request_id").(string)
			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			// A session id may arrive on the request or be minted by the
			// handler and echoed on the response; prefer the latter.
			sid := c.Response().Header().Get("X-Session-ID")
			if sid == "" {
				sid = req.Header.Get("X-Session-ID")
			}
			if sid != "" {
				evt = evt.Str("session_id", sid)
			}

			evt.Msg("request")
			return err
		}
	}
}

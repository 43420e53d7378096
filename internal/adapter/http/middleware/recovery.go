package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aaplitrip/trip-catalog/internal/adapter/http/response"
)

// RecoveryConfig controls what the recovery middleware logs.
type RecoveryConfig struct {
	// DisableStackAll limits the logged stack to the panicking goroutine
	DisableStackAll bool

	// DisablePrintStack omits the stack trace from the log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisableStackAll:   false,
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					reqID := GetRequestID(c)

					var panicMsg string
					if e, ok := r.(error); ok {
						panicMsg = e.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", reqID).
						Str("method", c.Request().Method).
						Str("path", c.Request().URL.Path).
						Str("panic", panicMsg)

					if !config.DisablePrintStack {
						event = event.Str("stack", stackTrace(config.DisableStackAll))
					}

					event.Msg("Panic recovered")

					// Generic body so internal details never leak
					if !c.Response().Committed {
						err = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}

// stackTrace returns the current goroutine's stack, trimmed to the first frames when short is set.
func stackTrace(short bool) string {
	stack := debug.Stack()
	if short && len(stack) > 4<<10 {
		stack = stack[:4<<10]
	}
	return string(stack)
}

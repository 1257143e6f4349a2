package echoutil

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/opst/knitsocial/pkg/access"
)

// LogHandlerFunc logs each request and its response.
//
// Responses are logged with the actor found after the inner handlers run,
// at warn level for 5xx and at info level for others.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		reqId := c.Response().Header().Get(echo.HeaderXRequestID)
		begin := time.Now()
		c.Logger().Infof("< request [%s] %s %s", reqId, req.Method, req.URL)

		err := next(c)

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
			status = he.Code
		}
		logf := c.Logger().Infof
		if http.StatusInternalServerError <= status {
			logf = c.Logger().Warnf
		}
		logf(
			"> response [%s] %s %s by %s: status = %d in %v / error = %v",
			reqId, req.Method, req.URL, actorName(c), status, time.Since(begin), err,
		)
		return err
	}
}

func actorName(c echo.Context) string {
	id, ok := access.ActorFrom(c.Request().Context()).Id()
	if !ok {
		return "anonymous"
	}
	return fmt.Sprintf("user:%d", id)
}

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// SetLevel sets log level of e by name: debug, info, warn, error or off.
//
// Empty or unknown name is warn.
func SetLevel(e *echo.Echo, loglevel string) {
	if loglevel == "" {
		loglevel = "warn"
	}
	lvl, ok := levels[strings.ToLower(loglevel)]
	if !ok {
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
		return
	}
	e.Logger.SetLevel(lvl)
}

package sentiment

import (
	"fmt"
	"path"

	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/pkg/config"
	"github.com/hueshift-cloud/hueshift/pkg/controller"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

const AppKey = "App"

type App interface {
	Start() error
}

// The prediction routes are mounted at the root rather than under /api so
// that deployment health checks can probe /health directly.
type app struct {
	Controllers []axon.Instance `inject:"Controllers"`
	Config      *config.Config  `inject:"Config"`
}

func (a *app) Start() error {
	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	if log.GetLevel() >= log.DebugLevel {
		e.Use(middleware.Logger(), middleware.Recover())
	}

	e.Use(middleware.CORS())
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = predictionErrorHandler(e.DefaultHTTPErrorHandler)

	for _, v := range a.Controllers {
		c := v.GetStructPtr().(controller.Controller)

		for _, r := range c.Routes() {
			e.Add(r.Method, path.Join("/", c.Group(), r.Path), r.Handler)
		}
	}

	log.WithField("port", a.Config.Server.Port).Info("Started prediction server")
	return e.Start(fmt.Sprintf(":%d", a.Config.Server.Port))
}

func predictionErrorHandler(defaultHandler echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, context echo.Context) {
		status := except.ToHttpStatus(err)
		if v, ok := err.(*echo.HTTPError); ok {
			defaultHandler(v, context)
		} else {
			defaultHandler(echo.NewHTTPError(status, err.Error()), context)
		}
		log.WithField("code", status).WithError(err).Trace("An error occurred")
	}
}

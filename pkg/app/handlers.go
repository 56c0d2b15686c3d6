package app

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/labstack/echo/v4"
	"github.com/vmkteam/appkit"
)

// runHTTPServer is a function that starts http listener using labstack/echo.
func (a *App) runHTTPServer(ctx context.Context, host string, port int) error {
	listenAddress := fmt.Sprintf("%s:%d", host, port)
	addr := "http://" + listenAddress
	a.Print(ctx, "starting http listener", "url", addr)

	return a.echo.Start(listenAddress)
}

// registerHandlers register echo handlers.
func (a *App) registerHandlers() {
	a.echo.POST("/whatsapp", a.bot.HandleMessage)
	a.echo.POST("/whatsapp/status", a.bot.HandleStatusCallback)

	// liveness string for uptime checks
	a.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Tariq Halal WhatsApp bot is running")
	})

	// reports whether the external credentials are configured, not whether
	// the services are reachable
	a.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{
			"twilio_configured": a.cfg.Twilio.AuthToken != "",
			"openai_configured": a.cfg.OpenAI.Token != "",
		})
	})
}

// registerDebugHandlers adds /debug/pprof handlers into a.echo instance.
func (a *App) registerDebugHandlers() {
	dbg := a.echo.Group("/debug")

	// add pprof integration
	dbg.Any("/pprof/*", appkit.PprofHandler)

	// add healthcheck
	a.echo.GET("/status", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// show all routes in devel mode
	if a.cfg.Server.IsDevel {
		a.echo.GET("/debug/routes", appkit.RenderRoutes(a.appName, a.echo))
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jman2424/tariq-hala-bot/pkg/order"
	"github.com/jman2424/tariq-hala-bot/pkg/services"
	"github.com/jman2424/tariq-hala-bot/pkg/session"
	"github.com/jman2424/tariq-hala-bot/pkg/shop"
	"github.com/jman2424/tariq-hala-bot/pkg/whatsapp"

	"github.com/labstack/echo/v4"
	"github.com/vmkteam/appkit"
	"github.com/vmkteam/embedlog"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		IsDevel bool   `yaml:"isDevel"`
	} `yaml:"server"`
	Twilio struct {
		AuthToken string `yaml:"authToken"`
		Debug     bool   `yaml:"debug"`
	} `yaml:"twilio"`
	OpenAI struct {
		Token string `yaml:"token"`
		Model string `yaml:"model"`
	} `yaml:"openai"`
	Session struct {
		TTL          string `yaml:"ttl"` // Go duration string, e.g. "24h"
		HistoryDepth int    `yaml:"historyDepth"`
		RedisURL     string `yaml:"redisURL"` // empty = in-memory store
	} `yaml:"session"`
}

type App struct {
	embedlog.Logger
	appName  string
	cfg      Config
	echo     *echo.Echo
	bot      *whatsapp.Bot
	sessions session.Store
}

func New(ctx context.Context, appName string, sl embedlog.Logger, cfg Config) (*App, error) {
	a := &App{
		appName: appName,
		cfg:     cfg,
		echo:    appkit.NewEcho(),
		Logger:  sl,
	}

	catalog := shop.DefaultCatalog()
	info := shop.DefaultStoreInfo()
	resolver := shop.NewResolver(catalog, info)
	flow := order.NewFlow(resolver)

	ttl := 24 * time.Hour
	if cfg.Session.TTL != "" {
		var err error
		if ttl, err = time.ParseDuration(cfg.Session.TTL); err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
	}

	if cfg.Session.RedisURL != "" {
		store, err := session.NewRedis(cfg.Session.RedisURL, ttl)
		if err != nil {
			return nil, err
		}
		a.sessions = store
	} else {
		a.sessions = session.NewMemory(ttl)
	}

	var llm services.LLM
	if cfg.OpenAI.Token != "" {
		llm = shop.NewAssist(cfg.OpenAI.Token, cfg.OpenAI.Model, catalog, info)
	} else {
		sl.Print(ctx, "openai token not set, using mock llm")
		llm = services.NewMockLLM(sl)
	}

	a.bot = whatsapp.New(whatsapp.Config{
		AuthToken:    cfg.Twilio.AuthToken,
		Debug:        cfg.Twilio.Debug,
		HistoryDepth: cfg.Session.HistoryDepth,
	}, resolver, flow, a.sessions, llm, sl)

	return a, nil
}

// Run is a function that runs application.
func (a *App) Run(ctx context.Context) error {
	a.registerMetrics()
	a.registerHandlers()
	a.registerDebugHandlers()
	a.registerMetadata()

	return a.runHTTPServer(ctx, a.cfg.Server.Host, a.cfg.Server.Port)
}

// Shutdown is a function that gracefully stops HTTP server.
func (a *App) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if r, ok := a.sessions.(*session.Redis); ok {
		if err := r.Close(); err != nil {
			a.Error(ctx, "failed to close redis store", "err", err)
		}
	}

	return a.echo.Shutdown(ctx)
}

// registerMetadata is a function that registers meta info from service.
func (a *App) registerMetadata() {
	opts := appkit.MetadataOpts{
		HasPublicAPI:  true, // Twilio webhook + health endpoints
		HasPrivateAPI: false,
	}

	md := appkit.NewMetadataManager(opts)
	md.RegisterMetrics()

	a.echo.GET("/debug/metadata", md.Handler)
}

package main

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/golang-migrate/migrate/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/acme/autocert"

	"screamer/db"
	"screamer/handler"
	"screamer/identity"
	"screamer/store"
)

const DEV_ENV = "dev"
const PRO_ENV = "pro"

type config struct {
	Env           string `env:"ENV" envDefault:"pro"`
	AddressListen string `env:"ADDRESS_LISTEN"`
	JWTSecret     string `env:"JWT_SECRET"`
	DBURL         string `env:"DB_URL"`
	WhitelistHost string `env:"WHITELIST_HOST"`
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("parsing configuration")
	}

	logger.Info().Msg("running database schema migrations")
	conn, err := db.Open(dataSourceName(cfg))
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info().Msg("database schema already in latest version")
		} else {
			logger.Fatal().Err(err).Msg("database schema migration failed")
		}
	}

	secret, err := fetchSecret(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("startup failed")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))

	h := handler.Handler{
		Store:    store.NewSQLite(conn),
		Identity: identity.NewLocal(conn, secret),
		Logger:   logger,
	}

	e.GET("/screams", h.GetScreams)
	e.POST("/scream", h.NewScream)
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	addr := cfg.AddressListen
	if cfg.Env == DEV_ENV && addr == "" {
		addr = ":8080"
	}

	if addr != "" {
		e.Logger.Fatal(e.Start(addr))
	} else {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		e.AutoTLSManager.Cache = autocert.DirCache("/var/www/.cache")
		if cfg.WhitelistHost != "" {
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
		}
		e.Pre(middleware.HTTPSRedirect())
		e.Logger.Fatal(e.StartAutoTLS(":443"))
	}
}

func fetchSecret(cfg config) (string, error) {
	secret := cfg.JWTSecret
	if secret == "" && cfg.Env == DEV_ENV {
		secret = "unsecure"
	}
	if secret == "" {
		return "", errors.New("no secret defined")
	}
	return secret, nil
}

func dataSourceName(cfg config) string {
	if cfg.DBURL != "" {
		return cfg.DBURL
	}
	return "./screamer.db?_pragma=foreign_keys(1)"
}

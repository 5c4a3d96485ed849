package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/ovees/eleganza-backend/api/responses"
	"github.com/ovees/eleganza-backend/pkg/config"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
)

const envHeader = "X-Ovees-Env"

const readyCheckTimeout = 2 * time.Second

// Pinger is the connectivity probe each dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the database and cache. All failures are aggregated so a
// single check reports everything that is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		var errs error
		checks := map[string]string{}

		probe := func(name string, p Pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				errs = multierr.Append(errs, err)
				return
			}
			checks[name] = "up"
		}

		probe("database", db)
		probe("cache", cache)

		if errs != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "readiness check failed").
					WithDetails(checks))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

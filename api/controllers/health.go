package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/pkg/config"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Salesboard-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once redis answers a ping. A nil pinger skips the check.
func HealthReady(cfg *config.Config, logg *logger.Logger, pinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Salesboard-Env", cfg.App.Env)

		checks := map[string]string{"dataset": "ok"}
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable").
						WithDetails(map[string]string{"redis": "unreachable"}))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

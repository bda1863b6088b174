package memcache_fx

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

const purgeInterval = time.Minute

var Module = fx.Options(
	fx.Provide(provideSessionStore, provideCityCache),
	fx.Invoke(startSessionJanitor))

func provideSessionStore() mem.Store[*services.PlannerSession] {
	return mem.NewTTLStore[*services.PlannerSession]()
}

func provideCityCache() mem.Store[map[string]services.Coordinate] {
	return mem.NewTTLStore[map[string]services.Coordinate]()
}

// startSessionJanitor purges expired planner sessions once a minute.
func startSessionJanitor(lc fx.Lifecycle, sessions mem.Store[*services.PlannerSession], log *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := sessions.Purge(); n > 0 {
							log.Debug("expired sessions purged", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

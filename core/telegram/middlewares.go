package telegram

import (
	"strings"
	"time"

	coreconfig "github.com/m3rciful/dongibot/core/config"
	"github.com/m3rciful/dongibot/core/telegram/middleware"
)

// DefaultMiddlewares builds the shared global middleware chain.
// An optional block checker prepends the silent blocklist gate.
func DefaultMiddlewares(cfg *coreconfig.Config, blocked middleware.BlockChecker) []Middleware {
	mws := []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
	}

	if cfg != nil {
		interval := time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond
		if interval > 0 {
			ex := make(map[string]struct{}, len(cfg.RateLimit.ExcludeUpdates))
			for _, t := range cfg.RateLimit.ExcludeUpdates {
				ex[strings.ToLower(t)] = struct{}{}
			}
			mws = append(mws, Middleware{
				Name: "rate_limit",
				Use: middleware.RateLimitMiddleware(middleware.RateLimitOptions{
					Interval: interval,
					Exclude:  ex,
				}),
			})
		}
	}

	mws = append(mws,
		Middleware{Name: "logger", Use: middleware.LoggerMiddleware},
	)

	if blocked != nil {
		mws = append(mws, Middleware{
			Name: "blocklist",
			Use:  middleware.BlocklistMiddleware(blocked),
		})
	}

	mws = append(mws,
		Middleware{Name: "metrics", Use: middleware.MessageMetricsMiddleware},
	)

	return mws
}

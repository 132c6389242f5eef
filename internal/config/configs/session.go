package configs

import "time"

// Session configures session lifetime. Idle sessions older than TTL are
// removed whenever SweepCron fires. A zero TTL keeps sessions forever.
type Session struct {
	TTL       time.Duration `env:"TTL" envDefault:"30m"`
	SweepCron string        `env:"SWEEP_CRON" envDefault:"*/5 * * * *"`
}

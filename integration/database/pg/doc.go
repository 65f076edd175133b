// Package pg connects to PostgreSQL and loads translation bundles stored as
// jsonb rows.
//
// Connect creates a pgx connection pool, applies pool limits from Config and
// verifies connectivity with exponential retry. Healthcheck wraps a ping for
// readiness probes.
//
// # Configuration
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//		BundleTable       string        `env:"L10N_PG_BUNDLE_TABLE" envDefault:"l10n_bundles"`
//	}
//
// # Usage Example
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if _, err := pool.Exec(ctx, pg.Schema); err != nil {
//		return err
//	}
//
//	ldr, err := pg.NewLoader(pool, cfg.BundleTable)
//	if err != nil {
//		return err
//	}
//	chain := loader.MustNewChain(loader.WithLoader(loader.Any(), ldr, loader.Options{}))
//
// Rows are keyed by (origin, base_name, locale); the root locale is the empty
// string. pgx.ErrNoRows becomes loader.ErrNotFound. A loaded bundle is cached
// for every caller, so the loader reads committed rows through the pool only.
package pg

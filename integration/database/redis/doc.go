// Package redis connects to Redis and loads translation bundles stored in it.
//
// Connect creates a go-redis client with URL validation and exponential
// retry, and verifies connectivity with a ping before returning. Healthcheck
// wraps a ping for readiness probes.
//
// # Configuration
//
// Config maps to environment variables and is filled with config.Load:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		KeyPrefix      string        `env:"L10N_REDIS_KEY_PREFIX" envDefault:"l10n"`
//	}
//
// # Loading Bundles
//
// Each bundle is one string key holding the whole document in the
// registration's format:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ldr, err := redis.NewLoader(client, cfg.KeyPrefix)
//	if err != nil {
//		return err
//	}
//	chain := loader.MustNewChain(loader.WithLoader(loader.Origins("cms"), ldr, loader.Options{}))
//
//	// SET "l10n:Page.fr.json" '{"title":"Accueil"}'
//
// A missing key (redis.Nil) is loader.ErrNotFound; other errors are failures
// the loader chain logs before trying the next candidate.
//
// # Error Handling
//
//   - ErrFailedToParseRedisConnString: the connection URL is malformed
//   - ErrRedisNotReady: Redis did not answer within the retry budget
//   - ErrEmptyConnectionURL: no connection URL was provided
//   - ErrHealthcheckFailed: the health check ping failed
//   - ErrNilClient: NewLoader was given a nil client
package redis

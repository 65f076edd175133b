// Package health provides net/http handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Dependency checks follow the func(context.Context) error signature, which
// the redis and pg integrations' Healthcheck functions return. Bundle turns a
// translation bundle into such a check, so a service can stay unready until
// its critical strings load.
//
//	mux.HandleFunc("GET /health/live", health.Liveness)
//	mux.Handle("GET /health/ready", health.Readiness(logger,
//		redis.Healthcheck(client),
//		health.Bundle(localizer, resource.MustNew("common", "app"), language.English),
//	))
package health

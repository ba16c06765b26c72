// Package resilience groups the fault tolerance helpers used around the
// upstream content API.
//
//   - circuitbreaker: stops calling the API while it keeps failing
//   - retry: exponential backoff with jitter for idempotent reads
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.UpstreamConfig())
//	err := retry.Do(ctx, retry.UpstreamReadConfig(), func(int) error {
//	    return cb.Run(func() error { return fetch(ctx) })
//	})
package resilience

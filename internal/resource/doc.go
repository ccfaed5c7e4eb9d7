// Package resource governs the resources consumed by Cayley table builds.
//
// A Controller manages three resource types:
//
//   - Memory: bytes held by built tables (non-blocking, fail-fast)
//   - Builders: concurrent table builds (blocking, context-aware)
//   - IO: token-bucket throttling of snapshot reads and writes
//
// # Memory
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 256 << 20,
//	})
//	if err := rc.AcquireMemory(tableBytes); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(tableBytes)
//
// # Builders
//
//	if err := rc.AcquireBuilder(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseBuilder()
//
// # IO
//
//	w := resource.NewRateLimitedWriter(ctx, file, rc)
//	r := resource.NewRateLimitedReader(ctx, file, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource

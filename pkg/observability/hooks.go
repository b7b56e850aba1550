// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about plan generation and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlanHooks(&myPlanHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Plan().OnRenderStart(ctx, period, cells)
//	// ... draw ...
//	observability.Plan().OnRenderComplete(ctx, period, path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Plan Hooks
// =============================================================================

// PlanHooks receives events from plan generation.
type PlanHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, period string)
	OnLayoutComplete(ctx context.Context, period string, cells int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, period string, cells int)
	OnRenderComplete(ctx context.Context, period, path string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from in-memory caches. Caches are used from
// synchronous draw calls, so these hooks take no context.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(name string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(name string)

	// OnCacheSet records a cache write.
	OnCacheSet(name string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlanHooks is a no-op implementation of PlanHooks.
type NoopPlanHooks struct{}

func (NoopPlanHooks) OnLayoutStart(context.Context, string)                                  {}
func (NoopPlanHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error)    {}
func (NoopPlanHooks) OnRenderStart(context.Context, string, int)                             {}
func (NoopPlanHooks) OnRenderComplete(context.Context, string, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)      {}
func (NoopCacheHooks) OnCacheMiss(string)     {}
func (NoopCacheHooks) OnCacheSet(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	planHooks  PlanHooks  = NoopPlanHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetPlanHooks registers custom plan hooks.
// This should be called once at application startup before any plan is generated.
func SetPlanHooks(h PlanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		planHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Plan returns the registered plan hooks.
func Plan() PlanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return planHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	planHooks = NoopPlanHooks{}
	cacheHooks = NoopCacheHooks{}
}

package services

import (
	"law_console_go/store"
	"time"
)

// Read-model keys. Parameterized models append their parameter so each
// parameterization caches independently.
const (
	ReadModelDashboardStats = "dashboard-stats"
	ReadModelByStatus       = "processos-by-status"
	ReadModelByArea         = "processos-by-area"
	ReadModelRecent         = "processos-recentes"
	readModelByPeriod       = "processos-by-period"
)

// PeriodKey builds the cache key for one parameterization of the
// period-windowed read-model
func PeriodKey(p Period) string {
	return readModelByPeriod + ":" + string(p)
}

// QueryService is the single entry point views use to read derived state.
// It registers every read-model against the shared cache, reacts to both
// bus channels, and runs the 1-second backstop refresh of the dashboard
// stats. Views never read the collection store directly.
type QueryService struct {
	store *store.Store
	cache *Cache

	unsubscribes []func()
	stopRefresh  func()
}

// NewQueryService registers all read-models and subscribes to the bus
func NewQueryService(st *store.Store, bus *store.Bus) *QueryService {
	qs := &QueryService{store: st, cache: NewCache()}

	qs.cache.Register(ReadModelDashboardStats, func() (any, error) {
		return ComputeDashboardStats(st.LoadCases()), nil
	})
	qs.cache.Register(ReadModelByStatus, func() (any, error) {
		return ComputeStatusBreakdown(st.LoadCases()), nil
	})
	qs.cache.Register(ReadModelByArea, func() (any, error) {
		return ComputeAreaBreakdown(st.LoadCases()), nil
	})
	qs.cache.Register(ReadModelRecent, func() (any, error) {
		return RecentCases(st.LoadCases(), RecentLimit), nil
	})
	for _, p := range AllPeriods {
		period := p
		qs.cache.Register(PeriodKey(period), func() (any, error) {
			return ComputePeriodStats(st.LoadCases(), time.Now(), period), nil
		})
	}

	// A local write refetches everything synchronously: once a mutation in
	// this process completes, no reader here may observe a stale cache.
	qs.unsubscribes = append(qs.unsubscribes,
		bus.Subscribe(store.EventLocalChange, func() {
			qs.cache.RefetchAll()
		}))

	// A write in another process only invalidates; models recompute lazily
	// on the next read or backstop tick.
	qs.unsubscribes = append(qs.unsubscribes,
		bus.Subscribe(store.EventStorageChange, func() {
			qs.cache.InvalidateAll()
		}))

	return qs
}

// StartBackgroundRefresh begins the fixed-interval backstop refresh of the
// dashboard stats, skipping ticks where the case slot revision is unchanged
func (qs *QueryService) StartBackgroundRefresh(interval time.Duration) {
	lastRev := qs.store.Revision(store.SlotCases)
	qs.stopRefresh = qs.cache.StartBackgroundRefresh(ReadModelDashboardStats, interval, func() bool {
		rev := qs.store.Revision(store.SlotCases)
		if rev == lastRev {
			return false
		}
		lastRev = rev
		return true
	})
}

// DashboardStats returns the cached dashboard aggregates
func (qs *QueryService) DashboardStats() QueryResult {
	return qs.cache.Get(ReadModelDashboardStats)
}

// StatusBreakdown returns the cached status breakdown
func (qs *QueryService) StatusBreakdown() QueryResult {
	return qs.cache.Get(ReadModelByStatus)
}

// AreaBreakdown returns the cached area breakdown
func (qs *QueryService) AreaBreakdown() QueryResult {
	return qs.cache.Get(ReadModelByArea)
}

// Recent returns the cached recency list
func (qs *QueryService) Recent() QueryResult {
	return qs.cache.Get(ReadModelRecent)
}

// ByPeriod returns the cached period-windowed breakdown for one selector
func (qs *QueryService) ByPeriod(p Period) QueryResult {
	return qs.cache.Get(PeriodKey(p))
}

// Refetch forces a blocking recomputation of one read-model
func (qs *QueryService) Refetch(key string) error {
	return qs.cache.Refetch(key)
}

// Invalidate marks one read-model stale
func (qs *QueryService) Invalidate(key string) {
	qs.cache.Invalidate(key)
}

// Close unsubscribes from the bus and stops the backstop refresh
func (qs *QueryService) Close() {
	for _, unsubscribe := range qs.unsubscribes {
		unsubscribe()
	}
	if qs.stopRefresh != nil {
		qs.stopRefresh()
	}
}

package rules

import "sync"

// Watcher observes match events and accumulates whatever it tracks.
type Watcher interface {
	// Watch is called for every published event.
	Watch(event Event)

	// GetKey returns a unique key for this watcher instance.
	GetKey() string
}

// BaseWatcher provides the key bookkeeping shared by concrete watchers.
type BaseWatcher struct {
	key string
}

// NewBaseWatcher creates a base watcher with the given key.
func NewBaseWatcher(key string) *BaseWatcher {
	return &BaseWatcher{key: key}
}

// GetKey returns the unique key for this watcher.
func (bw *BaseWatcher) GetKey() string {
	return bw.key
}

// WatcherRegistry manages the watchers of a match.
type WatcherRegistry struct {
	mu       sync.RWMutex
	watchers []Watcher // registration order
}

// NewWatcherRegistry creates a new watcher registry.
func NewWatcherRegistry() *WatcherRegistry {
	return &WatcherRegistry{}
}

// AddWatcher adds a watcher to the registry, replacing any watcher with the
// same key in its original position.
func (wr *WatcherRegistry) AddWatcher(watcher Watcher) {
	if watcher == nil {
		return
	}

	wr.mu.Lock()
	defer wr.mu.Unlock()

	key := watcher.GetKey()
	for i, existing := range wr.watchers {
		if existing.GetKey() == key {
			// Copy on replace so a notify in progress keeps its snapshot.
			replaced := append([]Watcher(nil), wr.watchers...)
			replaced[i] = watcher
			wr.watchers = replaced
			return
		}
	}
	wr.watchers = append(wr.watchers, watcher)
}

// NotifyWatchers notifies all watchers of an event in registration order.
func (wr *WatcherRegistry) NotifyWatchers(event Event) {
	wr.mu.RLock()
	watchers := wr.watchers
	wr.mu.RUnlock()

	for _, watcher := range watchers {
		watcher.Watch(event)
	}
}

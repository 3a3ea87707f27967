// Package watch reports serial endpoints appearing and disappearing.
//
// Each check is an independent discovery snapshot compared with the previous
// one. fsnotify events on /dev trigger an early check; the polling interval
// covers platforms or sandboxes where /dev cannot be watched.
package watch

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	discovery "github.com/allbin/zwave-ports"
)

// EventType identifies what happened to an endpoint
type EventType string

const (
	EventAdded   EventType = "added"
	EventRemoved EventType = "removed"
)

// Event is one endpoint change
type Event struct {
	Type     EventType          `json:"type" yaml:"type"`
	Endpoint discovery.Endpoint `json:"endpoint" yaml:"endpoint"`
	Time     time.Time          `json:"time" yaml:"time"`
}

// Lister takes a discovery snapshot
type Lister interface {
	List() []discovery.Endpoint
}

// Handler receives events in the order they are detected
type Handler func(Event)

// Watcher diffs successive snapshots
type Watcher struct {
	lister   Lister
	devDir   string
	interval time.Duration
	debounce time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// New creates a Watcher. devDir may be empty to disable fsnotify.
func New(lister Lister, devDir string, interval, debounce time.Duration, logger *zap.Logger) *Watcher {
	return &Watcher{
		lister:   lister,
		devDir:   devDir,
		interval: interval,
		debounce: debounce,
		log:      logger.With(zap.String("component", "watch")),
		now:      time.Now,
	}
}

// Snapshot returns the current endpoint list
func (w *Watcher) Snapshot() []discovery.Endpoint {
	return w.lister.List()
}

// Run reports changes relative to initial until ctx is cancelled
func (w *Watcher) Run(ctx context.Context, initial []discovery.Endpoint, handle Handler) error {
	prev := initial

	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error
	if w.devDir != "" {
		fw, err := fsnotify.NewWatcher()
		if err != nil {
			w.log.Warn("fsnotify unavailable, polling only", zap.Error(err))
		} else {
			defer fw.Close()
			if err := fw.Add(w.devDir); err != nil {
				w.log.Warn("Cannot watch device directory, polling only",
					zap.String("path", w.devDir), zap.Error(err))
			} else {
				fsEvents = fw.Events
				fsErrors = fw.Errors
			}
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Armed by fsnotify events so a burst of udev changes results in one
	// check; nil while idle.
	var debounce <-chan time.Time

	check := func() {
		next := w.lister.List()
		added, removed := discovery.Diff(prev, next)
		now := w.now()
		for _, ep := range removed {
			handle(Event{Type: EventRemoved, Endpoint: ep, Time: now})
		}
		for _, ep := range added {
			handle(Event{Type: EventAdded, Endpoint: ep, Time: now})
		}
		prev = next
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			check()
		case ev, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				debounce = time.After(w.debounce)
			}
		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.log.Debug("fsnotify error", zap.Error(err))
		case <-debounce:
			debounce = nil
			check()
		}
	}
}

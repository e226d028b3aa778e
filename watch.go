package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/guiguan/caster"
)

// EventKind enumerates the structural changes a map reports to watchers.
type EventKind int

// Structural change events. Plain inserts and deletes that stay within one
// node do not show up; watchers see the tree reshape, not every mutation.
const (
	EventSplit    EventKind = iota + 1 // an overfull node split in two
	EventGrow                          // a root split added a tree level
	EventBorrow                        // an underfull node borrowed from a sibling
	EventMerge                         // two sibling nodes merged into one
	EventCollapse                      // the root ran empty and a level went away
)

func (k EventKind) String() string {
	switch k {
	case EventSplit:
		return "split"
	case EventGrow:
		return "grow"
	case EventBorrow:
		return "borrow"
	case EventMerge:
		return "merge"
	case EventCollapse:
		return "collapse"
	}
	return "unknown"
}

// Event reports one structural change of a map, together with the map's item
// count and height right after the change.
type Event struct {
	Kind   EventKind
	Length int
	Height int
}

// watchBuffer is the channel capacity handed to subscribers.
const watchBuffer = 32

// Watch subscribes to structural change events. The returned channel closes
// when ctx is canceled or the broadcaster is shut down with Close. Watching
// never stalls mutations: a receiver that lags behind misses events.
func (m *Map[K, V, I]) Watch(ctx context.Context) <-chan Event {
	if m.cast == nil {
		m.cast = caster.New(nil) // we will broadcast structural changes
	}
	src, ok := m.cast.Sub(ctx, watchBuffer)
	out := make(chan Event, watchBuffer)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range src {
			ev, isEvent := msg.(Event)
			if !isEvent {
				continue
			}
			select {
			case out <- ev:
			default:
			}
		}
	}()
	return out
}

// Close shuts down the map's event broadcaster; all watching channels get
// closed. The map itself stays usable, and a later Watch starts a fresh
// broadcaster.
func (m *Map[K, V, I]) Close() {
	if m.cast != nil {
		m.cast.Close()
		m.cast = nil
	}
}

// publish broadcasts a structural change to all watchers, dropping the event
// for subscribers with a full buffer. Maps nobody watches skip the whole
// machinery.
func (m *Map[K, V, I]) publish(kind EventKind) {
	if m.cast == nil {
		return
	}
	m.cast.TryPub(Event{Kind: kind, Length: m.length, Height: m.height})
}

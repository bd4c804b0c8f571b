package kdtree

import (
	"context"

	"github.com/guiguan/caster"
)

// RebuildEvent describes one scapegoat-style subtree rebuild performed by
// a RelaxedTree, for callers that want to observe rebalancing traffic
// (metrics, logging, tuning alpha).
type RebuildEvent struct {
	// Size is the number of elements in the rebuilt subtree.
	Size int
	// Depth is the depth of the rebuilt subtree's root before the rebuild.
	Depth int
}

// rebuildNotifier lazily owns a broadcaster; a RelaxedTree that nobody
// subscribes to never allocates one.
type rebuildNotifier[V any] struct {
	cast *caster.Caster
}

func (n *rebuildNotifier[V]) publish(ev RebuildEvent) {
	if n.cast != nil {
		n.cast.Pub(ev)
	}
}

func (n *rebuildNotifier[V]) close() {
	if n.cast != nil {
		n.cast.Close()
	}
}

// Rebuilds subscribes to this tree's scapegoat rebuild events. The
// returned channel receives a RebuildEvent each time EraseNode or Insert
// triggers a subtree rebuild; the returned func unsubscribes and must be
// called to release the subscription's goroutine.
func (t *RelaxedTree[K, V]) Rebuilds(ctx context.Context) (<-chan RebuildEvent, func(), error) {
	if t.notify.cast == nil {
		t.notify.cast = caster.New(nil)
	}
	raw, ok := t.notify.cast.Sub(ctx, 1)
	if !ok {
		return nil, nil, ErrNotifierClosed
	}
	out := make(chan RebuildEvent, 1)
	done := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-raw:
				if !ok {
					return
				}
				if ev, ok := msg.(RebuildEvent); ok {
					select {
					case out <- ev:
					case <-done:
						return
					}
				}
			case <-done:
				return
			}
		}
	}()
	unsubscribe := func() { close(done) }
	return out, unsubscribe, nil
}

func (t *RelaxedTree[K, V]) emitRebuild(size, depth int) {
	t.notify.publish(RebuildEvent{Size: size, Depth: depth})
}

// Close releases the broadcaster backing Rebuilds subscriptions. Safe to
// call on a tree that was never subscribed to.
func (t *RelaxedTree[K, V]) Close() {
	t.notify.close()
}

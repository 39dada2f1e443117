package layout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/logging"
)

// DefaultPoolCapacity is the number of idle split containers kept per
// orientation.
const DefaultPoolCapacity = 8

// PoolStats reports container pool activity.
type PoolStats struct {
	Hits      int // Acquire served from the free list
	Misses    int // Acquire had to create a container
	Released  int // Containers handed back
	Discarded int // Released containers dropped because the pool was full
	Idle      int // Containers currently pooled
}

// ContainerPool is a bounded free list of split containers keyed by
// orientation. Only the view synchronizer mutates it; the composition root
// owns it.
type ContainerPool struct {
	factory  WidgetFactory
	capacity int
	free     map[Orientation][]*SplitView
	stats    PoolStats
	logger   zerolog.Logger
}

// NewContainerPool creates a pool keeping at most capacity idle containers per
// orientation. A capacity of zero or less disables pooling.
func NewContainerPool(ctx context.Context, factory WidgetFactory, capacity int) *ContainerPool {
	if capacity < 0 {
		capacity = 0
	}
	return &ContainerPool{
		factory:  factory,
		capacity: capacity,
		free:     make(map[Orientation][]*SplitView),
		logger:   logging.Component(ctx, "container-pool"),
	}
}

// Acquire returns an empty split container, reusing a pooled one when
// available.
func (p *ContainerPool) Acquire(orientation Orientation) *SplitView {
	list := p.free[orientation]
	if n := len(list); n > 0 {
		sv := list[n-1]
		list[n-1] = nil
		p.free[orientation] = list[:n-1]
		p.stats.Hits++
		p.stats.Idle--
		return sv
	}
	p.stats.Misses++
	return NewSplitView(p.factory, orientation)
}

// Release detaches the container from its parent, strips its children and
// handlers, and pools it. When the pool is full the container is dropped.
func (p *ContainerPool) Release(sv *SplitView) {
	if sv == nil {
		return
	}
	sv.Detach()
	if w := sv.Widget(); w.HasParent() {
		w.Unparent()
	}
	p.stats.Released++

	o := sv.Orientation()
	if len(p.free[o]) >= p.capacity {
		p.stats.Discarded++
		p.logger.Trace().Str("orientation", o.String()).Msg("pool full, discarding container")
		return
	}
	p.free[o] = append(p.free[o], sv)
	p.stats.Idle++
}

// IdleCount returns the number of pooled containers for an orientation.
func (p *ContainerPool) IdleCount(orientation Orientation) int {
	return len(p.free[orientation])
}

// Capacity returns the per-orientation capacity.
func (p *ContainerPool) Capacity() int { return p.capacity }

// Stats returns a snapshot of pool activity.
func (p *ContainerPool) Stats() PoolStats { return p.stats }

// Clear drops every pooled container.
func (p *ContainerPool) Clear() {
	clear(p.free)
	p.stats.Idle = 0
}

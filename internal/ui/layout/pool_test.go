package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
)

func TestContainerPool_ReusesReleasedContainers(t *testing.T) {
	factory := layouttest.NewFactory()
	pool := layout.NewContainerPool(context.Background(), factory, 2)

	first := pool.Acquire(layout.OrientationHorizontal)
	pool.Release(first)
	again := pool.Acquire(layout.OrientationHorizontal)

	assert.Same(t, first, again)
	assert.Len(t, factory.Paneds, 1)
	assert.Equal(t, layout.PoolStats{Hits: 1, Misses: 1, Released: 1}, pool.Stats())
}

func TestContainerPool_KeyedByOrientation(t *testing.T) {
	factory := layouttest.NewFactory()
	pool := layout.NewContainerPool(context.Background(), factory, 2)

	h := pool.Acquire(layout.OrientationHorizontal)
	pool.Release(h)
	v := pool.Acquire(layout.OrientationVertical)

	assert.NotSame(t, h, v)
	assert.Equal(t, layout.OrientationVertical, v.Orientation())
	assert.Equal(t, 1, pool.IdleCount(layout.OrientationHorizontal))
}

func TestContainerPool_BoundedCapacity(t *testing.T) {
	pool := layout.NewContainerPool(context.Background(), layouttest.NewFactory(), 1)

	a := pool.Acquire(layout.OrientationVertical)
	b := pool.Acquire(layout.OrientationVertical)
	pool.Release(a)
	pool.Release(b)

	stats := pool.Stats()
	assert.Equal(t, 1, pool.IdleCount(layout.OrientationVertical))
	assert.Equal(t, 1, stats.Discarded)
	assert.Equal(t, 1, stats.Idle)
}

func TestContainerPool_ZeroCapacityDisablesPooling(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		pool := layout.NewContainerPool(context.Background(), layouttest.NewFactory(), capacity)

		pool.Release(pool.Acquire(layout.OrientationHorizontal))

		assert.Zero(t, pool.IdleCount(layout.OrientationHorizontal), "capacity %d", capacity)
		assert.Equal(t, 1, pool.Stats().Discarded, "capacity %d", capacity)
	}
}

func TestContainerPool_ReleaseDetachesEverything(t *testing.T) {
	// Arrange
	factory := layouttest.NewFactory()
	pool := layout.NewContainerPool(context.Background(), factory, 4)
	root := layouttest.NewRoot()
	start := layouttest.NewWidget("start")
	end := layouttest.NewWidget("end")

	sv := pool.Acquire(layout.OrientationHorizontal)
	sv.Attach(start, end, 0.4)
	sv.SetOnRatioChanged(func(float64) { t.Fatal("released container must not report") })
	root.SetRootWidget(sv.Widget())
	paned := factory.Paneds[0]
	require.Equal(t, 2, paned.HandlerCount())

	// Act
	pool.Release(sv)

	// Assert
	assert.False(t, paned.HasParent())
	assert.Nil(t, root.Child())
	assert.Nil(t, paned.GetStartChild())
	assert.Nil(t, paned.GetEndChild())
	assert.False(t, start.HasParent())
	assert.False(t, end.HasParent())
	assert.Equal(t, 0, paned.HandlerCount())
	paned.DragTo(100)
}

package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/paysurface/internal/domain/entity"
)

func TestEmitter_DeliversThroughPost(t *testing.T) {
	var q queuedPost
	e := newEmitter(q.post)
	var rec recorder
	e.subscribe(rec.handle)

	e.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: "https://a"})
	assert.Empty(t, rec.kinds(), "nothing delivered before the loop runs")

	assert.Equal(t, 1, q.drain())
	assert.Equal(t, []entity.SurfaceEventKind{entity.SurfacePageLoaded}, rec.kinds())
}

func TestEmitter_UnsubscribeBeforeDelivery(t *testing.T) {
	var q queuedPost
	e := newEmitter(q.post)
	var rec recorder
	unsubscribe := e.subscribe(rec.handle)

	e.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
	unsubscribe()
	unsubscribe()
	q.drain()

	assert.Empty(t, rec.kinds())
}

func TestEmitter_OrderAndClose(t *testing.T) {
	e := newEmitter(nil)
	var order []int
	e.subscribe(func(entity.SurfaceEvent) { order = append(order, 1) })
	e.subscribe(func(entity.SurfaceEvent) { order = append(order, 2) })

	e.emit(entity.SurfaceEvent{})
	assert.Equal(t, []int{1, 2}, order)

	e.close()
	e.emit(entity.SurfaceEvent{})
	assert.Equal(t, []int{1, 2}, order)

	// subscribing after close is a no-op
	e.subscribe(func(entity.SurfaceEvent) { order = append(order, 3) })
	e.emit(entity.SurfaceEvent{})
	assert.Equal(t, []int{1, 2}, order)
}

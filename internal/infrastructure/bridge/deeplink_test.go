package bridge

import (
	"testing"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDeepLinks_Match(t *testing.T) {
	links := DeepLinks{
		Complete: []string{"myapp://checkout/success", "https://shop.example.com/thanks"},
		Error:    []string{"myapp://checkout/failure"},
	}

	ev, ok := links.Match("myapp://checkout/success?session=cs_1")
	assert.True(t, ok)
	assert.Equal(t, entity.SurfacePaymentComplete, ev.Kind)
	assert.Equal(t, "myapp://checkout/success?session=cs_1", ev.Payload)

	ev, ok = links.Match("HTTPS://shop.example.com/thanks")
	assert.True(t, ok)
	assert.Equal(t, entity.SurfacePaymentComplete, ev.Kind)

	ev, ok = links.Match("myapp://checkout/failure?message=card+declined")
	assert.True(t, ok)
	assert.Equal(t, entity.SurfaceError, ev.Kind)
	assert.Equal(t, "card declined", ev.Message)

	ev, ok = links.Match("myapp://checkout/failure")
	assert.True(t, ok)
	assert.Equal(t, "myapp://checkout/failure", ev.Message)

	_, ok = links.Match("https://pay.example.com/checkout")
	assert.False(t, ok)

	_, ok = links.Match("")
	assert.False(t, ok)
}

func TestDeepLinks_Empty(t *testing.T) {
	assert.True(t, DeepLinks{}.Empty())
	assert.True(t, DeepLinks{Complete: nil, Error: []string{}}.Empty())
	assert.False(t, DeepLinks{Error: []string{"x://"}}.Empty())
}

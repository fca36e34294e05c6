package bridge

import (
	"testing"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entity.SurfaceEvent
	}{
		{
			name: "complete with string payload",
			raw:  `{"type":"complete","payload":"pi_123"}`,
			want: entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete, Payload: "pi_123"},
		},
		{
			name: "complete with object payload",
			raw:  `{"type":"complete","payload":{ "id": "pi_123", "amount": 42 }}`,
			want: entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete, Payload: `{"id":"pi_123","amount":42}`},
		},
		{
			name: "complete without payload",
			raw:  `{"type":"complete","payload":null}`,
			want: entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete},
		},
		{
			name: "error with message",
			raw:  `{"type":"error","message":"card declined"}`,
			want: entity.SurfaceEvent{Kind: entity.SurfaceError, Message: "card declined"},
		},
		{
			name: "error without message",
			raw:  `{"type":"payment_error"}`,
			want: entity.SurfaceEvent{Kind: entity.SurfaceError, Message: "payment failed"},
		},
		{
			name: "close",
			raw:  `{"type":"Close"}`,
			want: entity.SurfaceEvent{Kind: entity.SurfaceCloseRequested},
		},
		{
			name: "loaded",
			raw:  `{"type":"loaded","url":"https://pay.example.com/"}`,
			want: entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: "https://pay.example.com/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(`not json`)
	require.Error(t, err)

	_, err = Decode(`{"type":"teleport"}`)
	require.ErrorIs(t, err, ErrUnknownMessage)
}

func TestEncode_DecodeAgrees(t *testing.T) {
	raw := Encode(Message{Type: TypeError, Message: "expired"})

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.SurfaceError, got.Kind)
	assert.Equal(t, "expired", got.Message)
}

package bridge

import (
	"net/url"
	"strings"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// DeepLinks recognizes navigations that end the checkout, the way OAuth
// popups are closed once the provider redirects to the callback.
type DeepLinks struct {
	Complete []string // URL prefixes meaning success; the full URL is the payload
	Error    []string // URL prefixes meaning failure
}

// Match returns the terminal event for a navigation, if any.
func (d DeepLinks) Match(rawURL string) (entity.SurfaceEvent, bool) {
	if rawURL == "" {
		return entity.SurfaceEvent{}, false
	}
	lower := strings.ToLower(rawURL)

	for _, prefix := range d.Error {
		if prefix != "" && strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return entity.SurfaceEvent{Kind: entity.SurfaceError, Message: errorMessage(rawURL)}, true
		}
	}
	for _, prefix := range d.Complete {
		if prefix != "" && strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete, Payload: rawURL}, true
		}
	}
	return entity.SurfaceEvent{}, false
}

// Empty reports whether no prefixes are configured.
func (d DeepLinks) Empty() bool {
	return len(d.Complete) == 0 && len(d.Error) == 0
}

func errorMessage(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for _, key := range []string{"message", "error_description", "error"} {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	return rawURL
}

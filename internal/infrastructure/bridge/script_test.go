package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapScript_InstallsNamedGlobal(t *testing.T) {
	script := BootstrapScript("checkout", BindingTransport("__checkout_binding"))

	assert.Contains(t, script, `window["checkout"]`)
	assert.Contains(t, script, `window["__checkout_binding"](s)`)
	for _, fn := range []string{"complete:", "fail:", "close:"} {
		assert.Contains(t, script, fn)
	}
	assert.Contains(t, script, `"complete"`)
	assert.Contains(t, script, `"error"`)
	assert.Contains(t, script, `"close"`)
}

func TestBootstrapScript_DefaultName(t *testing.T) {
	script := BootstrapScript("", OpenerTransport())

	assert.Contains(t, script, `window["paysurface"]`)
	assert.Contains(t, script, "window.opener")
}

func TestTransports(t *testing.T) {
	assert.True(t, strings.HasPrefix(string(WebKitTransport("pay")), "function (s)"))
	assert.Contains(t, string(WebKitTransport("pay")), `messageHandlers["pay"]`)
	assert.Contains(t, string(AndroidTransport("PayNative")), `window["PayNative"].postMessage(s)`)
}

func TestNativeTransport_CoversBothPlatforms(t *testing.T) {
	transport := string(NativeTransport("PayNative"))

	assert.Contains(t, transport, `window.webkit.messageHandlers["PayNative"]`)
	assert.Contains(t, transport, `window["PayNative"].postMessage(s)`)
}

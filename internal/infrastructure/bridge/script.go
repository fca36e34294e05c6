package bridge

import "fmt"

// Transport is a JavaScript function expression taking one JSON string.
// Each backend supplies the expression matching its native channel.
type Transport string

// BindingTransport calls a function installed on window, as CDP bindings do.
func BindingTransport(binding string) Transport {
	return Transport(fmt.Sprintf(`function (s) { window[%q](s); }`, binding))
}

// WebKitTransport posts to a WebKit script message handler.
func WebKitTransport(handler string) Transport {
	return Transport(fmt.Sprintf(`function (s) { window.webkit.messageHandlers[%q].postMessage(s); }`, handler))
}

// AndroidTransport calls an object registered with addJavascriptInterface.
func AndroidTransport(object string) Transport {
	return Transport(fmt.Sprintf(`function (s) { window[%q].postMessage(s); }`, object))
}

// OpenerTransport posts to the window that opened a popup.
func OpenerTransport() Transport {
	return Transport(`function (s) { window.opener && window.opener.postMessage({paysurface: s}, "*"); }`)
}

// BootstrapScript returns the script that installs window[name] with
// complete(payload), fail(message) and close(). Running it twice is harmless.
func BootstrapScript(name string, transport Transport) string {
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf(`(function () {
  if (window[%[1]q] && window[%[1]q].__paysurface) { return; }
  var transport = %[2]s;
  var send = function (msg) {
    try { transport(JSON.stringify(msg)); } catch (e) { console.warn("paysurface bridge:", e); }
  };
  window[%[1]q] = {
    __paysurface: true,
    complete: function (payload) { send({type: %[3]q, payload: payload === undefined ? null : payload}); },
    fail: function (message) { send({type: %[4]q, message: String(message)}); },
    close: function () { send({type: %[5]q}); }
  };
})();`, name, string(transport), TypeComplete, TypeError, TypeClose)
}

// NativeTransport posts through a WebKit message handler when present and an
// Android JavaScript interface otherwise, both registered under handler.
func NativeTransport(handler string) Transport {
	return Transport(fmt.Sprintf(`function (s) {
    var mh = window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers[%[1]q];
    if (mh) { mh.postMessage(s); } else { window[%[1]q].postMessage(s); }
  }`, handler))
}

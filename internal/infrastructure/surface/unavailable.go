package surface

// Unavailable is the fallback surface for platforms without a backend.
// It accepts every call and reports an init failure on Load.
type Unavailable struct {
	*base
	reason string
}

// NewUnavailable returns a fallback surface that fails with reason.
func NewUnavailable(opts Options, reason string) *Unavailable {
	if reason == "" {
		reason = "no surface backend available on this platform"
	}
	return &Unavailable{base: newBase(BackendNone, opts), reason: reason}
}

// Reason returns the init failure message.
func (u *Unavailable) Reason() string { return u.reason }

func (u *Unavailable) Load(url string) {
	if u.isDisposed() {
		return
	}
	u.logger.Warn().Str("url", url).Str("reason", u.reason).Msg("surface unavailable")
	u.emit(initFailed(u.reason))
}

func (u *Unavailable) ExecuteScript(string) {
	u.canRunScript(false)
}

func (u *Unavailable) SetSize(w, h int)     { u.recordSize(w, h) }
func (u *Unavailable) SetPosition(x, y int) { u.recordPosition(x, y) }
func (u *Unavailable) Show()                { u.recordVisible(true) }
func (u *Unavailable) Hide()                { u.recordVisible(false) }
func (u *Unavailable) Dispose()             { u.markDisposed() }

package entity

// ModalState is the lifecycle state of the checkout overlay.
type ModalState int32

const (
	ModalClosed ModalState = iota
	ModalOpening
	ModalOpen
	ModalClosing
)

// String returns a human-readable representation of the state.
func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalOpening:
		return "opening"
	case ModalOpen:
		return "open"
	case ModalClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Live reports whether a session exists in this state.
func (s ModalState) Live() bool {
	return s != ModalClosed
}

// CloseReason records why a modal session ended.
type CloseReason string

const (
	CloseUser       CloseReason = "user"
	CloseCompleted  CloseReason = "completed"
	CloseFailed     CloseReason = "error"
	CloseInitFailed CloseReason = "init_failed"
	CloseBackend    CloseReason = "backend"
	CloseForced     CloseReason = "forced"
	CloseSuperseded CloseReason = "superseded"
	CloseShutdown   CloseReason = "shutdown"
)

// Notifies reports whether callers hear about this close through on_closed.
// A superseded session is replaced in place, so nothing is announced.
func (r CloseReason) Notifies() bool {
	return r != CloseSuperseded
}

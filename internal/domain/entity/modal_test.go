package entity

import "testing"

func TestModalState_String(t *testing.T) {
	tests := []struct {
		state ModalState
		want  string
		live  bool
	}{
		{ModalClosed, "closed", false},
		{ModalOpening, "opening", true},
		{ModalOpen, "open", true},
		{ModalClosing, "closing", true},
		{ModalState(42), "unknown", true},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.state.Live(); got != tt.live {
			t.Errorf("%s Live() = %v, want %v", tt.want, got, tt.live)
		}
	}
}

func TestCloseReason_Notifies(t *testing.T) {
	for _, r := range []CloseReason{CloseUser, CloseCompleted, CloseFailed, CloseInitFailed, CloseBackend, CloseForced, CloseShutdown} {
		if !r.Notifies() {
			t.Errorf("%s should notify", r)
		}
	}
	if CloseSuperseded.Notifies() {
		t.Error("superseded sessions must not notify")
	}
}

func TestSurfaceEvent_Terminal(t *testing.T) {
	if (SurfaceEvent{Kind: SurfacePageLoaded}).Terminal() {
		t.Error("page loaded is not terminal")
	}
	for _, k := range []SurfaceEventKind{SurfacePaymentComplete, SurfaceError, SurfaceInitFailed, SurfaceClosed, SurfaceCloseRequested} {
		if !(SurfaceEvent{Kind: k}).Terminal() {
			t.Errorf("%s should be terminal", k)
		}
	}
	if SurfaceEventKind(99).String() != "unknown" {
		t.Error("unexpected kind name")
	}
}

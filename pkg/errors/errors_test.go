package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// captureHandler records everything reported to it.
type captureHandler struct {
	errs   []*FolioError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *FolioError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReport_StampsTimestampAndDelivers(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	cause := stderrors.New("write failed")
	Report(&FolioError{Op: "engine.commit", Kind: KindDisplay, Err: cause})

	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	err := handler.errs[0]
	if err.Timestamp.IsZero() {
		t.Error("expected the timestamp to be stamped")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the cause to unwrap")
	}
	if got := err.Error(); !strings.Contains(got, "engine.commit") || !strings.Contains(got, "display") {
		t.Errorf("Error() = %q", got)
	}
}

func TestReport_NilIsIgnored(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	if len(handler.errs) != 0 || len(handler.panics) != 0 {
		t.Fatal("expected nil reports to be dropped")
	}
}

func TestRecover_CapturesPanicValueAndStack(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("dispatch.handle")
		panic("boom")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "dispatch.handle" {
		t.Errorf("Op = %q", p.Op)
	}
	if p.Value != "boom" {
		t.Errorf("Value = %v", p.Value)
	}
	if p.StackTrace == "" {
		t.Error("expected a stack trace")
	}
	if got := p.Error(); !strings.Contains(got, "dispatch.handle") {
		t.Errorf("Error() = %q", got)
	}
}

func TestRecover_NoPanicIsQuiet(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("calm")
	}()

	if len(handler.panics) != 0 {
		t.Fatal("expected nothing recovered")
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindSensor:   "sensor",
		KindDisplay:  "display",
		KindSettings: "settings",
		KindDispatch: "dispatch",
		KindInit:     "init",
		KindPanic:    "panic",
		KindUnknown:  "unknown",
		Kind(99):     "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", int(kind), got, want)
		}
	}
}

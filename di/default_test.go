package di

import (
	"testing"

	dierrors "github.com/kbukum/dikit/errors"
)

// resetDefault clears the process-wide slot between tests. The library itself
// deliberately offers no reset other than re-designation.
func resetDefault() {
	defaultMu.Lock()
	defaultContainer = nil
	defaultMu.Unlock()
}

func TestDefaultBeforeSet(t *testing.T) {
	resetDefault()
	defer resetDefault()

	_, err := Default()
	if err == nil {
		t.Fatal("expected error before any SetDefault call")
	}
	if !dierrors.HasCode(err, dierrors.ErrCodeNoDefaultContainer) {
		t.Errorf("expected NO_DEFAULT_CONTAINER, got %v", err)
	}
}

func TestSetDefaultLastWriteWins(t *testing.T) {
	resetDefault()
	defer resetDefault()

	first := NewContainer()
	second := NewContainer()

	SetDefault(first)
	got, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if got != first {
		t.Error("expected the designated container back")
	}

	SetDefault(second)
	got, _ = Default()
	if got != second {
		t.Error("expected re-designation to replace the slot")
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := New(CodeParamValueInvalid, "param size: invalid value")
	if !stderrors.Is(err, ErrValidation) {
		t.Fatal("expected validation sentinel to match")
	}
	if stderrors.Is(err, ErrDeclaration) {
		t.Fatal("unexpected declaration match")
	}

	wrapped := fmt.Errorf("set params: %w", err)
	if !stderrors.Is(wrapped, ErrValidation) {
		t.Fatal("expected match through fmt wrapping")
	}
	if CodeOf(wrapped) != CodeParamValueInvalid {
		t.Fatalf("CodeOf = %s", CodeOf(wrapped))
	}
}

func TestWrapMessage(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeAdapterFailed, "init params", cause)
	if err.Error() != "init params: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if CodeOf(cause) != CodeUnknown {
		t.Fatal("plain errors should have unknown code")
	}
}

func TestFatalCodes(t *testing.T) {
	if !CodeParamTypeUnknown.Fatal() || CodeParamValueInvalid.Fatal() {
		t.Fatal("unexpected fatal classification")
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_New(t *testing.T) {
	err := New(ErrCodeInvalidFactory, "bad shape")
	if err.Code != ErrCodeInvalidFactory {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidFactory, err.Code)
	}
	if err.Message != "bad shape" {
		t.Errorf("expected message 'bad shape', got %q", err.Message)
	}
}

func TestError_ProviderNotFound(t *testing.T) {
	err := ProviderNotFound("database")
	if err.Code != ErrCodeProviderNotFound {
		t.Errorf("expected PROVIDER_NOT_FOUND, got %s", err.Code)
	}
	if err.Details["key"] != "database" {
		t.Errorf("expected key=database, got %v", err.Details["key"])
	}
	if !strings.Contains(err.Error(), "database") {
		t.Errorf("expected error message to carry the key, got %q", err.Error())
	}
}

func TestError_ProviderNotFoundForType(t *testing.T) {
	err := ProviderNotFoundForType("*service.Repo")
	if err.Details["type"] != "*service.Repo" {
		t.Errorf("expected type detail, got %v", err.Details["type"])
	}
	if !strings.Contains(err.Error(), "*service.Repo") {
		t.Errorf("expected error message to carry the type name, got %q", err.Error())
	}
}

func TestError_NoDefaultContainer(t *testing.T) {
	err := NoDefaultContainer()
	if err.Code != ErrCodeNoDefaultContainer {
		t.Errorf("expected NO_DEFAULT_CONTAINER, got %s", err.Code)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := InvalidFactory("construction failed").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected error string to include cause, got %q", err.Error())
	}
}

func TestError_WithDetail(t *testing.T) {
	err := InvalidTarget("not a function").WithDetail("kind", "int")
	if err.Details["kind"] != "int" {
		t.Errorf("expected kind=int, got %v", err.Details["kind"])
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("resolving: %w", ProviderNotFound("cache"))
	if !HasCode(err, ErrCodeProviderNotFound) {
		t.Error("expected HasCode to match through wrapping")
	}
	if HasCode(err, ErrCodeInvalidFactory) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(fmt.Errorf("plain"), ErrCodeProviderNotFound) {
		t.Error("expected HasCode to reject a plain error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ProviderNotFound("x")) {
		t.Error("expected IsNotFound for ProviderNotFound")
	}
	if IsNotFound(NoDefaultContainer()) {
		t.Error("expected IsNotFound to be false for configuration errors")
	}
}

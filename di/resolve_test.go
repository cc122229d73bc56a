package di

import (
	"context"
	"strings"
	"testing"
)

func newTestContainer(t *testing.T) Container {
	t.Helper()
	c := NewContainer()
	if err := c.RegisterCached("service", func() *service {
		return &service{name: "typed"}
	}); err != nil {
		t.Fatalf("RegisterCached failed: %v", err)
	}
	return c
}

func TestResolveTyped(t *testing.T) {
	c := newTestContainer(t)

	svc, err := Resolve[*service](c, "service")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if svc.name != "typed" {
		t.Errorf("unexpected value: %v", svc)
	}
}

func TestResolveTypedWrongType(t *testing.T) {
	c := newTestContainer(t)

	_, err := Resolve[*repo](c, "service")
	if err == nil {
		t.Fatal("expected error for mismatched type parameter")
	}
	if !strings.Contains(err.Error(), "expected") {
		t.Errorf("expected a type mismatch message, got %q", err.Error())
	}
}

func TestMustResolvePanicsOnMissing(t *testing.T) {
	c := newTestContainer(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a missing key")
		}
	}()
	MustResolve[*service](c, "absent")
}

func TestTryResolve(t *testing.T) {
	c := newTestContainer(t)

	if _, ok := TryResolve[*service](c, "absent"); ok {
		t.Error("expected false for a missing key")
	}
	if _, ok := TryResolve[*repo](c, "service"); ok {
		t.Error("expected false for a mismatched type")
	}
	svc, ok := TryResolve[*service](c, "service")
	if !ok || svc.name != "typed" {
		t.Errorf("expected the bound value, got %v/%v", svc, ok)
	}
}

func TestResolveAs(t *testing.T) {
	c := newTestContainer(t)

	svc, err := ResolveAs[*service](c)
	if err != nil {
		t.Fatalf("ResolveAs failed: %v", err)
	}
	if svc.name != "typed" {
		t.Errorf("unexpected value: %v", svc)
	}

	svcCtx, err := ResolveAsContext[*service](context.Background(), c)
	if err != nil {
		t.Fatalf("ResolveAsContext failed: %v", err)
	}
	if svcCtx != svc {
		t.Error("expected the same cached instance across conventions")
	}
}

func TestResolveAsValueType(t *testing.T) {
	c := NewContainer()
	if err := c.RegisterCached("greeter", func() greeter {
		return greeter{msg: "hi"}
	}); err != nil {
		t.Fatalf("RegisterCached failed: %v", err)
	}

	g, err := ResolveAs[greeter](c)
	if err != nil {
		t.Fatalf("ResolveAs failed: %v", err)
	}
	if g.msg != "hi" {
		t.Errorf("unexpected value: %v", g)
	}
}

type greeter struct {
	msg string
}

package di

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/dikit/errors"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
	anyType = reflect.TypeOf((*any)(nil)).Elem()
)

// invocable is a factory normalized to a single calling shape. The shape of
// the user's function is inspected exactly once, at registration time.
type invocable struct {
	fn reflect.Value
	// takesCtx marks a context-aware factory. Blocking resolution invokes it
	// with context.Background.
	takesCtx bool
	// returnsErr marks a (T, error) factory.
	returnsErr bool
	// out is the declared result type, or nil when the factory returns the
	// empty interface and the type must be inferred from a produced value.
	out reflect.Type
}

// newInvocable validates and normalizes a factory function. Accepted shapes:
//
//	func() T
//	func() (T, error)
//	func(context.Context) T
//	func(context.Context) (T, error)
func newInvocable(factory any) (*invocable, error) {
	fv := reflect.ValueOf(factory)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, errors.InvalidFactory(fmt.Sprintf("expected a function, got %T", factory))
	}
	ft := fv.Type()

	inv := &invocable{fn: fv}

	switch ft.NumIn() {
	case 0:
	case 1:
		if ft.In(0) != ctxType {
			return nil, errors.InvalidFactory("single parameter must be context.Context")
		}
		inv.takesCtx = true
	default:
		return nil, errors.InvalidFactory("factories take no arguments beyond an optional context.Context")
	}

	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errType {
			return nil, errors.InvalidFactory("factory must produce a value, not only an error")
		}
	case 2:
		if ft.Out(1) != errType {
			return nil, errors.InvalidFactory("second result must be error")
		}
		inv.returnsErr = true
	default:
		return nil, errors.InvalidFactory("factory must return T or (T, error)")
	}

	if out := ft.Out(0); out != anyType {
		inv.out = out
	}

	return inv, nil
}

// call invokes the factory. Errors returned by the factory propagate
// unchanged; the invocable never wraps them.
func (inv *invocable) call(ctx context.Context) (any, error) {
	var in []reflect.Value
	if inv.takesCtx {
		in = []reflect.Value{reflect.ValueOf(ctx)}
	}
	results := inv.fn.Call(in)
	if inv.returnsErr {
		if errVal := results[1].Interface(); errVal != nil {
			return nil, errVal.(error)
		}
	}
	return results[0].Interface(), nil
}

// resultType returns the factory's declared result type, falling back to one
// eager invocation when the declaration is the empty interface. The fallback
// constructs an instance during registration, not lazily.
func (inv *invocable) resultType(ctx context.Context) (reflect.Type, error) {
	if inv.out != nil {
		return inv.out, nil
	}
	v, err := inv.call(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.InvalidFactory("cannot infer type from a nil value")
	}
	return reflect.TypeOf(v), nil
}

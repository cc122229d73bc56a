package inject

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/dikit/di"
	"github.com/kbukum/dikit/errors"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Arg is a by-name argument for a wrapped call. Binding by name requires the
// parameter names to have been declared with WithParamNames.
type Arg struct {
	Name  string
	Value any
}

// Named builds a by-name argument.
func Named(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Option configures wrapping.
type Option func(*options)

type options struct {
	container di.Container
	names     []string
}

// WithContainer sets the container dependencies are resolved from. If not
// set, the process-wide default container is captured at wrap time.
func WithContainer(c di.Container) Option {
	return func(o *options) {
		o.container = c
	}
}

// WithParamNames declares the target's parameter names, excluding a leading
// context.Context. Go reflection does not expose parameter names, so by-name
// arguments only work when names are declared here.
func WithParamNames(names ...string) Option {
	return func(o *options) {
		o.names = names
	}
}

// Func is a wrapped callable. The parameter list and calling convention are
// fixed at wrap time; each call binds the supplied arguments and resolves
// the rest from the container by type.
type Func struct {
	fn        reflect.Value
	container di.Container
	takesCtx  bool
	params    []reflect.Type
	names     map[string]int
	splitErr  bool
}

// Wrap inspects fn and returns a wrapped callable around it.
func Wrap(fn any, opts ...Option) (*Func, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, errors.InvalidTarget(fmt.Sprintf("expected a function, got %T", fn))
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, errors.InvalidTarget("variadic functions are not supported")
	}

	container := o.container
	if container == nil {
		var err error
		container, err = di.Default()
		if err != nil {
			return nil, err
		}
	}

	f := &Func{
		fn:        fv,
		container: container,
	}

	start := 0
	if ft.NumIn() > 0 && ft.In(0) == ctxType {
		f.takesCtx = true
		start = 1
	}
	for i := start; i < ft.NumIn(); i++ {
		f.params = append(f.params, ft.In(i))
	}

	if o.names != nil {
		if len(o.names) != len(f.params) {
			return nil, errors.InvalidTarget(fmt.Sprintf(
				"declared %d parameter names for %d parameters", len(o.names), len(f.params)))
		}
		f.names = make(map[string]int, len(o.names))
		for i, name := range o.names {
			if _, dup := f.names[name]; dup {
				return nil, errors.InvalidTarget(fmt.Sprintf("duplicate parameter name %q", name))
			}
			f.names[name] = i
		}
	}

	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errType {
		f.splitErr = true
	}

	return f, nil
}

// Call invokes the target in the blocking convention. Missing parameters
// resolve through the container's blocking path; a context-aware target
// receives context.Background.
func (f *Func) Call(args ...any) ([]any, error) {
	return f.invoke(context.Background(), false, args)
}

// CallContext invokes the target under ctx. Missing parameters resolve
// through the container's context-aware path; a context-aware target
// receives ctx.
func (f *Func) CallContext(ctx context.Context, args ...any) ([]any, error) {
	return f.invoke(ctx, true, args)
}

func (f *Func) invoke(ctx context.Context, ctxResolution bool, args []any) ([]any, error) {
	bound := make([]reflect.Value, len(f.params))
	filled := make([]bool, len(f.params))

	// Bind caller-supplied arguments: positional in declaration order,
	// by-name through the declared name table.
	pos := 0
	for _, arg := range args {
		if named, ok := arg.(Arg); ok {
			if f.names == nil {
				return nil, errors.InvalidTarget("by-name arguments require WithParamNames")
			}
			idx, ok := f.names[named.Name]
			if !ok {
				return nil, errors.InvalidTarget(fmt.Sprintf("unknown parameter name %q", named.Name))
			}
			if filled[idx] {
				return nil, errors.InvalidTarget(fmt.Sprintf("parameter %q supplied twice", named.Name))
			}
			v, err := conform(f.params[idx], named.Value)
			if err != nil {
				return nil, err
			}
			bound[idx], filled[idx] = v, true
			continue
		}

		if pos >= len(f.params) {
			return nil, errors.InvalidTarget(fmt.Sprintf(
				"too many positional arguments, target takes %d", len(f.params)))
		}
		if filled[pos] {
			return nil, errors.InvalidTarget(fmt.Sprintf("parameter %d supplied twice", pos))
		}
		v, err := conform(f.params[pos], arg)
		if err != nil {
			return nil, err
		}
		bound[pos], filled[pos] = v, true
		pos++
	}

	// Resolve every parameter the caller did not supply. A missing binding
	// surfaces as the container's PROVIDER_NOT_FOUND, untouched.
	for i, supplied := range filled {
		if supplied {
			continue
		}
		var (
			raw any
			err error
		)
		if ctxResolution {
			raw, err = f.container.ResolveTypeContext(ctx, f.params[i])
		} else {
			raw, err = f.container.ResolveType(f.params[i])
		}
		if err != nil {
			return nil, err
		}
		v, err := conform(f.params[i], raw)
		if err != nil {
			return nil, err
		}
		bound[i] = v
	}

	in := make([]reflect.Value, 0, len(bound)+1)
	if f.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	in = append(in, bound...)

	results := f.fn.Call(in)

	if f.splitErr {
		last := results[len(results)-1]
		results = results[:len(results)-1]
		if errVal := last.Interface(); errVal != nil {
			return nil, errVal.(error)
		}
	}

	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}
	return out, nil
}

// conform turns a raw argument into a reflect.Value assignable to t.
func conform(t reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, errors.InvalidTarget(fmt.Sprintf("nil is not assignable to %s", t))
		}
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.InvalidTarget(fmt.Sprintf("%s is not assignable to %s", rv.Type(), t))
	}
	return rv, nil
}

package di

import (
	"context"
	"fmt"
	"reflect"
)

// Resolve resolves a component by key with type safety, returns error on failure.
//
// Example:
//
//	repo, err := di.Resolve[*BotRepository](c, "bot_repository")
func Resolve[T any](c Container, key string) (T, error) {
	var zero T
	instance, err := c.Resolve(key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: component %s is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// MustResolve resolves a component by key with type safety, panics on error.
//
// Example:
//
//	log := di.MustResolve[*logger.Logger](c, "logger")
func MustResolve[T any](c Container, key string) T {
	result, err := Resolve[T](c, key)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", key, err))
	}
	return result
}

// TryResolve resolves a component by key, returns zero value and false if it
// is missing or has a different type. Use this when a dependency is optional.
func TryResolve[T any](c Container, key string) (T, bool) {
	result, err := Resolve[T](c, key)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// TypeOf returns the reflect.Type the container indexes for T. It is the type
// a factory declared as func() T (or func() (T, error)) registers under.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ResolveAs resolves a component by its registered type in the blocking
// convention.
//
// Example:
//
//	repo, err := di.ResolveAs[*BotRepository](c)
func ResolveAs[T any](c Container) (T, error) {
	var zero T
	instance, err := c.ResolveType(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: component for type %T is %T", zero, instance)
	}
	return result, nil
}

// ResolveAsContext resolves a component by its registered type under the
// caller's context.
func ResolveAsContext[T any](ctx context.Context, c Container) (T, error) {
	var zero T
	instance, err := c.ResolveTypeContext(ctx, TypeOf[T]())
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: component for type %T is %T", zero, instance)
	}
	return result, nil
}

package convert

import (
	"reflect"
	"strings"
)

// Annotated pairs a value with free-form annotation strings. On the
// wire it is transparent: conversion forwards to the inner value, and
// the annotations never travel.
type Annotated[T any] struct {
	Value       T
	Annotations []string
}

var annotatedPkgPath = reflect.TypeFor[Annotated[string]]().PkgPath()

func isAnnotated(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == annotatedPkgPath &&
		strings.HasPrefix(t.Name(), "Annotated[")
}

func structureAnnotated(c *Converter, v any, target reflect.Type) (any, error) {
	inner, err := c.Structure(v, target.Field(0).Type)
	if err != nil {
		return nil, err
	}
	out := reflect.New(target).Elem()
	if inner != nil {
		out.Field(0).Set(reflect.ValueOf(inner))
	}
	return out.Interface(), nil
}

func unstructureAnnotated(c *Converter, v any) (any, error) {
	rv := reflect.ValueOf(v)
	return c.Unstructure(rv.Field(0).Interface())
}

// RegisterAnnotatedHooks registers the transparent passthrough for
// Annotated wrappers. Must come after the record hooks; Annotated is
// itself a struct and the later registration has to win.
func RegisterAnnotatedHooks(c *Converter) {
	c.RegisterStructureHookFunc(isAnnotated, structureAnnotated)
	c.RegisterUnstructureHookFunc(isAnnotated, unstructureAnnotated)
}

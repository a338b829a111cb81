// Package cache implements the process-lived, write-once-per-key caches the
// core relies on for speed: the per-call-site field inline cache and the
// single-character string cache. Neither is ever invalidated — the program
// graph they index into is immutable after load.
package cache

import (
	"zimvm/diag"
	"zimvm/value"
)

// FieldSite is one call site's field inline cache: monomorphic in field
// name (fixed at construction), polymorphic across the objects it is
// applied to. Objects with equal slot layouts for name return the same
// slot; objects with a different layout tolerate a stale hint because
// Object.GetField re-resolves on a miss and overwrites it.
type FieldSite struct {
	name string
	slot int
}

// NewFieldSite constructs a cache fixed to one field name, with the slot
// hint initially zero.
func NewFieldSite(name string) *FieldSite {
	return &FieldSite{name: name}
}

// Get resolves the field on o, using and updating the slot hint.
func (c *FieldSite) Get(o *value.Object) (value.Value, bool) {
	return o.GetField(c.name, &c.slot)
}

// Name returns the field name this cache is fixed to.
func (c *FieldSite) Name() string {
	return c.name
}

// GetInt64 is Get plus a tag assertion.
func (c *FieldSite) GetInt64(o *value.Object) (value.Int64, error) {
	v, ok := c.Get(o)
	if !ok {
		return 0, missing(c.name)
	}
	i, ok := v.(value.Int64)
	if !ok {
		return 0, diag.Errorf("field %s expects int64 value", c.name)
	}
	return i, nil
}

// GetStr is Get plus a tag assertion.
func (c *FieldSite) GetStr(o *value.Object) (*value.String, error) {
	v, ok := c.Get(o)
	if !ok {
		return nil, missing(c.name)
	}
	s, ok := v.(*value.String)
	if !ok {
		return nil, diag.Errorf("field %s expects string value", c.name)
	}
	return s, nil
}

// GetObj is Get plus a tag assertion.
func (c *FieldSite) GetObj(o *value.Object) (*value.Object, error) {
	v, ok := c.Get(o)
	if !ok {
		return nil, missing(c.name)
	}
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, diag.Errorf("field %s expects object value", c.name)
	}
	return obj, nil
}

// GetArr is Get plus a tag assertion.
func (c *FieldSite) GetArr(o *value.Object) (*value.Array, error) {
	v, ok := c.Get(o)
	if !ok {
		return nil, missing(c.name)
	}
	arr, ok := v.(*value.Array)
	if !ok {
		return nil, diag.Errorf("field %s expects array value", c.name)
	}
	return arr, nil
}

func missing(name string) error {
	return diag.Errorf("missing field %s", name)
}

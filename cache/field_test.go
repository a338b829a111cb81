package cache

import (
	"testing"

	"zimvm/value"
)

func TestFieldSiteGet(t *testing.T) {
	o := value.NewObject(1)
	o.SetField("idx", value.Int64(7))
	site := NewFieldSite("idx")

	v, ok := site.Get(o)
	if !ok || v != value.Int64(7) {
		t.Fatalf("Get() = (%v, %v), want (7, true)", v, ok)
	}
}

func TestFieldSiteTypedAccessors(t *testing.T) {
	o := value.NewObject(4)
	o.SetField("n", value.Int64(5))
	o.SetField("s", value.NewString("hi"))
	o.SetField("obj", value.NewObject(0))
	o.SetField("arr", value.NewArray(0))

	if v, err := NewFieldSite("n").GetInt64(o); err != nil || v != 5 {
		t.Errorf("GetInt64 = (%v, %v), want (5, nil)", v, err)
	}
	if v, err := NewFieldSite("s").GetStr(o); err != nil || v.String() != "hi" {
		t.Errorf("GetStr = (%v, %v), want (hi, nil)", v, err)
	}
	if v, err := NewFieldSite("obj").GetObj(o); err != nil || v == nil {
		t.Errorf("GetObj = (%v, %v), want (non-nil, nil)", v, err)
	}
	if v, err := NewFieldSite("arr").GetArr(o); err != nil || v == nil {
		t.Errorf("GetArr = (%v, %v), want (non-nil, nil)", v, err)
	}
}

func TestFieldSiteMissingField(t *testing.T) {
	o := value.NewObject(0)
	if _, err := NewFieldSite("nope").GetInt64(o); err == nil {
		t.Error("GetInt64 on a missing field should error")
	}
}

func TestFieldSiteWrongType(t *testing.T) {
	o := value.NewObject(1)
	o.SetField("n", value.NewString("not an int"))
	if _, err := NewFieldSite("n").GetInt64(o); err == nil {
		t.Error("GetInt64 on a string-valued field should error")
	}
}

func TestFieldSitePolymorphicAcrossShapes(t *testing.T) {
	// A single FieldSite, monomorphic in name, must still return correct
	// results across objects with different field layouts (the slot hint
	// self-corrects rather than silently aliasing).
	a := value.NewObject(2)
	a.SetField("x", value.Int64(1))
	a.SetField("val", value.Int64(10))

	b := value.NewObject(2)
	b.SetField("val", value.Int64(20))
	b.SetField("y", value.Int64(2))

	site := NewFieldSite("val")
	va, err := site.GetInt64(a)
	if err != nil || va != 10 {
		t.Fatalf("GetInt64(a) = (%v, %v), want (10, nil)", va, err)
	}
	vb, err := site.GetInt64(b)
	if err != nil || vb != 20 {
		t.Fatalf("GetInt64(b) = (%v, %v), want (20, nil)", vb, err)
	}
}

func TestFieldSiteName(t *testing.T) {
	site := NewFieldSite("op")
	if site.Name() != "op" {
		t.Errorf("Name() = %q, want %q", site.Name(), "op")
	}
}

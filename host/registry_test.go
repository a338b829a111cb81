package host

import (
	"errors"
	"testing"

	"zimvm/value"
)

func TestRegistryGetRegistered(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("crypt_bcrypt"); !ok {
		t.Error("NewRegistry should preregister crypt_bcrypt")
	}
	if _, ok := r.Get("not_registered"); ok {
		t.Error("Get should report !ok for an unregistered name")
	}
}

func TestRegistryImportReturnsHostFunction(t *testing.T) {
	r := NewRegistry()
	v, err := r.Import("hash_ripemd160")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(value.HostFn); !ok {
		t.Errorf("Import of a registered host function should return a value.HostFn, got %T", v)
	}
}

func TestRegistryImportNoLoaderConfigured(t *testing.T) {
	r := &Registry{funcs: map[string]value.HostFn{}, imported: map[string]value.Value{}}
	if _, err := r.Import("somepkg"); err == nil {
		t.Error("Import with no loader and no registered function should error")
	}
}

func TestRegistryImportCachesLoaderResult(t *testing.T) {
	r := &Registry{funcs: map[string]value.HostFn{}, imported: map[string]value.Value{}}
	calls := 0
	r.SetLoader(func(name string) (*value.Object, error) {
		calls++
		return value.NewObject(0), nil
	})

	first, err := r.Import("pkg")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Import("pkg")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1 (cached after first import)", calls)
	}
	if first != second {
		t.Error("repeated imports of the same name should return the identical cached value")
	}
}

func TestRegistryImportPropagatesLoaderError(t *testing.T) {
	r := &Registry{funcs: map[string]value.HostFn{}, imported: map[string]value.Value{}}
	r.SetLoader(func(name string) (*value.Object, error) {
		return nil, errors.New("load failed")
	})
	if _, err := r.Import("pkg"); err == nil {
		t.Error("Import should propagate a loader error")
	}
}

func TestRegistryRegisterOverridesExisting(t *testing.T) {
	r := NewRegistry()
	replacement := New("crypt_bcrypt", 0, func(args []value.Value) (value.Value, error) {
		return value.Int64(1), nil
	})
	r.Register("crypt_bcrypt", replacement)
	fn, _ := r.Get("crypt_bcrypt")
	if fn.NumParams() != 0 {
		t.Error("Register should replace an existing entry, not add a second one")
	}
}

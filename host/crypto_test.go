package host

import (
	"strings"
	"testing"

	"zimvm/value"
)

func TestCryptBcryptRoundTrip(t *testing.T) {
	hashed, err := cryptBcryptHash([]value.Value{value.NewString("s3cret"), value.Int64(4)})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := cryptBcryptVerify([]value.Value{value.NewString("s3cret"), hashed})
	if err != nil {
		t.Fatal(err)
	}
	if ok != value.Bool(true) {
		t.Error("verifying the correct password against its own hash should succeed")
	}
}

func TestCryptBcryptVerifyRejectsWrongPassword(t *testing.T) {
	hashed, err := cryptBcryptHash([]value.Value{value.NewString("right"), value.Int64(4)})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := cryptBcryptVerify([]value.Value{value.NewString("wrong"), hashed})
	if err != nil {
		t.Fatal(err)
	}
	if ok != value.Bool(false) {
		t.Error("verifying the wrong password should fail, not error")
	}
}

func TestCryptArgon2ProducesSaltAndKey(t *testing.T) {
	got, err := cryptArgon2([]value.Value{value.NewString("pw"), value.Int64(32)})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := got.(*value.String)
	if !ok {
		t.Fatalf("cryptArgon2 returned %T, want *value.String", got)
	}
	parts := strings.Split(s.String(), ":")
	if len(parts) != 2 {
		t.Fatalf("result %q should be salt:key", s.String())
	}
	if len(parts[1]) != 64 {
		t.Errorf("key hex length = %d, want 64 (32 bytes hex-encoded)", len(parts[1]))
	}
}

func TestHashRipemd160(t *testing.T) {
	got, err := hashRipemd160([]value.Value{value.NewString("")})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := got.(*value.String)
	if !ok {
		t.Fatalf("hashRipemd160 returned %T, want *value.String", got)
	}
	// RIPEMD-160 always produces a 20-byte digest, 40 hex characters.
	if len(s.String()) != 40 {
		t.Errorf("digest hex length = %d, want 40", len(s.String()))
	}
}

func TestCryptDESRoundTrip(t *testing.T) {
	hashed, err := cryptDES([]value.Value{value.NewString("password"), value.NewString("ab")})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := hashed.(*value.String)
	if !ok || s.String() == "" {
		t.Errorf("cryptDES should return a non-empty hash string, got %v", hashed)
	}
}

func TestRegisterCryptoWiresAllFunctions(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"crypt_des", "crypt_bcrypt", "crypt_bcrypt_verify", "crypt_argon2", "hash_ripemd160"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("registerCrypto should have registered %q", name)
		}
	}
}

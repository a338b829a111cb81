package value

import "testing"

func TestStringEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *String
		want bool
	}{
		{"equal content", NewString("hello"), NewString("hello"), true},
		{"different content", NewString("hello"), NewString("world"), false},
		{"different length", NewString("hi"), NewString("hiya"), false},
		{"both empty", NewString(""), NewString(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringEqualRejectsOtherTags(t *testing.T) {
	s := NewString("hi")
	if s.Equal(Int64(0)) {
		t.Error("string should never equal a non-string value")
	}
}

func TestConcat(t *testing.T) {
	got := Concat(NewString("foo"), NewString("bar"))
	if got.String() != "foobar" {
		t.Errorf("Concat() = %q, want %q", got.String(), "foobar")
	}
}

func TestConcatPreservesOperandOrder(t *testing.T) {
	// Testable invariant: concat(a, b) must equal a's bytes followed by
	// b's bytes, not the reverse.
	a, b := NewString("A"), NewString("B")
	if got := Concat(a, b).String(); got != "AB" {
		t.Errorf("Concat(A, B) = %q, want %q", got, "AB")
	}
}

func TestStringLength(t *testing.T) {
	if got := NewString("hello").Length(); got != 5 {
		t.Errorf("Length() = %d, want 5", got)
	}
	if got := NewString("").Length(); got != 0 {
		t.Errorf("Length() = %d, want 0", got)
	}
}

func TestByteAt(t *testing.T) {
	s := NewString("abc")
	tests := []struct {
		idx     int64
		wantB   byte
		wantOK  bool
	}{
		{0, 'a', true},
		{2, 'c', true},
		{3, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		b, ok := s.ByteAt(tt.idx)
		if ok != tt.wantOK || (ok && b != tt.wantB) {
			t.Errorf("ByteAt(%d) = (%v, %v), want (%v, %v)", tt.idx, b, ok, tt.wantB, tt.wantOK)
		}
	}
}

func TestNewStringCopies(t *testing.T) {
	b := []byte("mutate me")
	s := NewString(string(b))
	b[0] = 'X'
	if s.String() != "mutate me" {
		t.Errorf("NewString should copy its input, got %q", s.String())
	}
}

package value

// String is an immutable byte sequence. GET_CHAR treats one byte as one
// character, so indexing is by byte, not by rune.
type String struct {
	bytes []byte
}

// NewString copies s into a fresh immutable String.
func NewString(s string) *String {
	b := make([]byte, len(s))
	copy(b, s)
	return &String{bytes: b}
}

// NewStringBytes takes ownership of b without copying; callers must not
// mutate b afterwards.
func NewStringBytes(b []byte) *String {
	return &String{bytes: b}
}

// Concat returns a new String holding a's bytes followed by b's bytes.
func Concat(a, b *String) *String {
	out := make([]byte, len(a.bytes)+len(b.bytes))
	n := copy(out, a.bytes)
	copy(out[n:], b.bytes)
	return &String{bytes: out}
}

func (s *String) Tag() Tag     { return STRING }
func (s *String) String() string { return string(s.bytes) }

func (s *String) Equal(o Value) bool {
	os, ok := o.(*String)
	if !ok {
		return false
	}
	if len(s.bytes) != len(os.bytes) {
		return false
	}
	for i := range s.bytes {
		if s.bytes[i] != os.bytes[i] {
			return false
		}
	}
	return true
}

// Length returns the byte length of the string.
func (s *String) Length() int64 {
	return int64(len(s.bytes))
}

// ByteAt returns the byte at index i (0-based) and whether i was in range.
func (s *String) ByteAt(i int64) (byte, bool) {
	if i < 0 || i >= int64(len(s.bytes)) {
		return 0, false
	}
	return s.bytes[i], true
}

package value

// Tag is the runtime type discriminator every Value carries.
type Tag int

const (
	UNDEF Tag = iota
	BOOL
	INT64
	STRING
	ARRAY
	OBJECT
	HOSTFN
	RETADDR
)

// String returns the tag's canonical lowercase spelling, as used by
// HAS_TAG / GET_TAG and in diagnostic messages.
func (t Tag) String() string {
	switch t {
	case UNDEF:
		return "undef"
	case BOOL:
		return "bool"
	case INT64:
		return "int64"
	case STRING:
		return "string"
	case ARRAY:
		return "array"
	case OBJECT:
		return "object"
	case HOSTFN:
		return "hostfn"
	case RETADDR:
		return "retaddr"
	default:
		return "unknown"
	}
}

// TagFromName maps a HAS_TAG operand (one of the six surface tag names) to
// its Tag. HOSTFN and RETADDR are not surface-visible and never match.
func TagFromName(name string) (Tag, bool) {
	switch name {
	case "undef":
		return UNDEF, true
	case "bool":
		return BOOL, true
	case "int64":
		return INT64, true
	case "string":
		return STRING, true
	case "array":
		return ARRAY, true
	case "object":
		return OBJECT, true
	default:
		return UNDEF, false
	}
}

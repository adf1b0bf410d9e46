// Package wire implements the primitive field codecs of the game-packet
// stream: fixed-width little- and big-endian integers, IEEE-754 floats,
// base-128 varints and zig-zag varints, length-prefixed UTF-8 strings and
// byte blobs, and embedded NBT compounds.
//
// The central abstraction is the IO interface, implemented by both Reader
// and Writer. Every field method takes a pointer: a Reader fills the pointee
// from the wire, a Writer emits the pointee to the wire. A packet shape
// therefore declares its field layout exactly once, in a single Marshal
// method, and encode and decode stay in lockstep by construction:
//
//	func (pk *MovePlayer) Marshal(io wire.IO) {
//	    pk.PlayerRuntimeID.Marshal(io)
//	    pk.Position.Marshal(io)
//	    io.Float32(&pk.Pitch)
//	    // ...
//	}
//
// Both implementations record the first failure and turn every later call
// into a no-op, so shape code needs no per-field error checks; the frame
// layer inspects Err once per packet.
package wire

// IO is the bidirectional field codec interface shared by Reader and Writer.
//
// Fixed-width integers and floats are little-endian unless the method name
// carries a BE prefix; the big-endian forms exist for the few
// session-boundary fields that use network byte order.
type IO interface {
	Uint8(v *uint8)
	Int8(v *int8)
	Bool(v *bool)
	Uint16(v *uint16)
	Int16(v *int16)
	Uint32(v *uint32)
	Int32(v *int32)
	Uint64(v *uint64)
	Int64(v *int64)
	BEInt32(v *int32)
	Float32(v *float32)
	Float64(v *float64)

	Varuint16(v *uint16)
	Varuint32(v *uint32)
	Varuint64(v *uint64)
	Varint32(v *int32)
	Varint64(v *int64)

	String(v *string)
	ByteSlice(v *[]byte)
	RemainingBytes(v *[]byte)
	CompoundTag(v *map[string]any)

	// Reading reports whether this IO decodes from the wire. Shape code
	// uses it when a gating bit must be derived from decoded fields rather
	// than mirrored from in-memory state.
	Reading() bool

	// Err returns the first error recorded on this IO, or nil.
	Err() error

	// Fail records err as the IO's sticky error if none is recorded yet.
	// Shape and composite codecs use it to surface variant and range
	// failures through the same channel as field failures.
	Fail(err error)
}

// Marshaler is implemented by composite value types that serialize
// themselves as the concatenation of their fields in declaration order.
type Marshaler interface {
	Marshal(io IO)
}

// Slice codecs a varuint32-count-prefixed slice whose elements are handled
// by f. On decode the element count is bounded by the bytes remaining in
// the frame, so a hostile length prefix cannot force a huge allocation.
func Slice[T any](io IO, xs *[]T, f func(IO, *T)) {
	count := uint32(len(*xs))
	io.Varuint32(&count)

	if io.Reading() {
		if !boundSliceCount(io, count) {
			return
		}
		*xs = make([]T, count)
	}

	for i := range *xs {
		f(io, &(*xs)[i])
	}
}

// MarshalerSlice is Slice specialized for element types implementing
// Marshaler, saving a closure at most call sites.
func MarshalerSlice[T any, PT interface {
	*T
	Marshaler
}](io IO, xs *[]T) {
	Slice(io, xs, func(io IO, v *T) {
		PT(v).Marshal(io)
	})
}

// Optional codecs a value preceded by a one-byte presence flag. A nil
// pointer encodes as absent; an absent wire value decodes to nil.
func Optional[T any](io IO, v **T, f func(IO, *T)) {
	present := *v != nil
	io.Bool(&present)

	if !present {
		if io.Reading() {
			*v = nil
		}
		return
	}

	if io.Reading() {
		*v = new(T)
	}
	f(io, *v)
}

// boundSliceCount rejects decode-side element counts that exceed the bytes
// left in the frame. Every element occupies at least one wire byte.
func boundSliceCount(io IO, count uint32) bool {
	r, ok := io.(*Reader)
	if !ok {
		return true
	}

	if int64(count) > int64(r.Remaining()) {
		r.failTruncated(int(count), r.Remaining())
		return false
	}

	return true
}

// Package password provides a growable, exclusively owned byte container
// for secret text such as credentials. Every operation that changes the
// length allocates a fresh exact-size buffer and zeroes the old one before
// it is released, so no stale allocation ever outlives the content it once
// held. The buffer always carries a single zero byte one past the logical
// content for interoperability with NUL-terminated representations.
//
// A Password is a single-owner value: it is not safe for concurrent use
// and holds no internal locking. Callers that share one across goroutines
// must synchronize externally.
//
// This is not a cryptographic primitive. It does not hash, encrypt, or
// compare in constant time, and it cannot stop the operating system from
// paging the buffer to disk or including it in a core dump.
package password

import "math"

// MaxLen is the largest logical length a Password can hold. One byte of
// the representable range is reserved so the terminator index never
// overflows.
const MaxLen = math.MaxInt - 1

// Password owns a byte buffer of exactly Len()+1 bytes; the final byte is
// always zero. The zero value is an empty password ready for use.
type Password struct {
	data []byte
	size int
}

// New returns an empty password owning a one-byte buffer holding the
// terminator.
func New() *Password {
	return &Password{data: alloc(0)}
}

// FromBytes copies b into a new password. Zero bytes in b are content, not
// terminators.
func FromBytes(b []byte) *Password {
	p := &Password{data: alloc(len(b)), size: len(b)}
	copy(p.data, b)
	return p
}

// FromString copies s into a new password. The argument string itself
// cannot be wiped afterwards; prefer FromBytes with a caller-wiped slice
// when the source is sensitive.
func FromString(s string) *Password {
	p := &Password{data: alloc(len(s)), size: len(s)}
	copy(p.data, s)
	return p
}

// FromByteString copies b up to but not including its first zero byte,
// or all of b if it contains none.
func FromByteString(b []byte) *Password {
	for i, c := range b {
		if c == 0 {
			return FromBytes(b[:i])
		}
	}
	return FromBytes(b)
}

// Repeat returns a password holding c repeated count times.
func Repeat(count int, c byte) (*Password, error) {
	if count < 0 || count > MaxLen {
		return nil, tooLong(0, count)
	}
	p := &Password{data: alloc(count), size: count}
	for i := 0; i < count; i++ {
		p.data[i] = c
	}
	return p, nil
}

// Clone returns a deep copy.
func (p *Password) Clone() *Password {
	return FromBytes(p.data[:p.size])
}

// Move transfers the buffer to a new password without copying or wiping
// it. The receiver is left in the valid empty state, owning a fresh
// one-byte buffer.
func (p *Password) Move() *Password {
	moved := &Password{data: p.data, size: p.size}
	if moved.data == nil {
		moved.data = alloc(0)
	}
	p.data = alloc(0)
	p.size = 0
	return moved
}

// Swap exchanges the buffers of p and other. No bytes are copied or wiped.
func (p *Password) Swap(other *Password) {
	p.data, other.data = other.data, p.data
	p.size, other.size = other.size, p.size
}

// Clear wipes and releases the buffer, resetting p to the valid empty
// state.
func (p *Password) Clear() {
	wipe(p.data)
	p.data = alloc(0)
	p.size = 0
}

// assign replaces the content with n bytes produced by fill. The new
// buffer is written before the old one is wiped, so fill may read from the
// password's own buffer.
func (p *Password) assign(n int, fill func(dst []byte)) {
	target := alloc(n)
	if n > 0 {
		fill(target[:n])
	}
	wipe(p.data)
	p.data = target
	p.size = n
}

// Assign replaces the content with a copy of b, wiping the old buffer.
func (p *Password) Assign(b []byte) {
	p.assign(len(b), func(dst []byte) { copy(dst, b) })
}

// AssignString replaces the content with a copy of s, wiping the old
// buffer.
func (p *Password) AssignString(s string) {
	p.assign(len(s), func(dst []byte) { copy(dst, s) })
}

// AssignByte replaces the content with the single byte c.
func (p *Password) AssignByte(c byte) {
	p.assign(1, func(dst []byte) { dst[0] = c })
}

// AssignPassword replaces the content with a copy of other's content.
// Self-assignment is a well-defined (if pointless) operation.
func (p *Password) AssignPassword(other *Password) {
	p.assign(other.size, func(dst []byte) { copy(dst, other.data[:other.size]) })
}

// Len reports the logical length, excluding the terminator.
func (p *Password) Len() int {
	return p.size
}

// Empty reports whether the password holds no content.
func (p *Password) Empty() bool {
	return p.size == 0
}

// At returns the byte at index i.
func (p *Password) At(i int) (byte, error) {
	if i < 0 || i >= p.size {
		return 0, outOfRange(i, p.size)
	}
	return p.data[i], nil
}

// SetAt overwrites the byte at index i in place. The length does not
// change, so no reallocation or wipe occurs.
func (p *Password) SetAt(i int, c byte) error {
	if i < 0 || i >= p.size {
		return outOfRange(i, p.size)
	}
	p.data[i] = c
	return nil
}

// Front returns the first byte.
func (p *Password) Front() (byte, error) {
	return p.At(0)
}

// Back returns the last byte.
func (p *Password) Back() (byte, error) {
	return p.At(p.size - 1)
}

// Bytes returns the live content without the terminator. The slice aliases
// the internal buffer: it is invalidated by any length-changing operation,
// and writing through it mutates the password. Callers must not retain it
// across mutations.
func (p *Password) Bytes() []byte {
	return p.data[:p.size]
}

package password

import (
	"iter"
	"unsafe"
)

// Iterator is a non-owning position into a password's buffer, spanning
// [Begin, End] where End sits one past the last content byte. Any
// length-changing operation reallocates the buffer and invalidates every
// outstanding iterator; the position-accepting methods on Password detect
// stale iterators and return ErrBadIterator.
type Iterator struct {
	buf []byte
	idx int
}

// Next returns the position one element forward.
func (it Iterator) Next() Iterator {
	it.idx++
	return it
}

// Prev returns the position one element backward.
func (it Iterator) Prev() Iterator {
	it.idx--
	return it
}

// Add returns the position n elements forward.
func (it Iterator) Add(n int) Iterator {
	it.idx += n
	return it
}

// Sub returns the position n elements backward.
func (it Iterator) Sub(n int) Iterator {
	it.idx -= n
	return it
}

// Index reports the offset from Begin.
func (it Iterator) Index() int {
	return it.idx
}

// Equal reports whether both iterators reference the same position of the
// same buffer.
func (it Iterator) Equal(other Iterator) bool {
	return unsafe.SliceData(it.buf) == unsafe.SliceData(other.buf) && it.idx == other.idx
}

// Value returns the byte at the position. At End it reads the terminator
// and therefore returns 0.
func (it Iterator) Value() byte {
	return it.buf[it.idx]
}

// Set overwrites the byte at the position. The position must reference a
// content byte, not End.
func (it Iterator) Set(c byte) error {
	if it.idx < 0 || it.idx >= len(it.buf)-1 {
		return outOfRange(it.idx, len(it.buf)-1)
	}
	it.buf[it.idx] = c
	return nil
}

// ReverseIterator walks the content backward. It stores a forward position
// that sits one past the element it yields: dereferencing steps one back
// and reads there, Next moves the stored position toward Begin, and the
// arithmetic operations mirror accordingly. The same type serves mutable
// and immutable traversal.
type ReverseIterator struct {
	fwd Iterator
}

// Base returns the stored forward position, one past the element the
// reverse iterator yields.
func (r ReverseIterator) Base() Iterator {
	return r.fwd
}

// Next returns the position one element further toward Begin.
func (r ReverseIterator) Next() ReverseIterator {
	r.fwd.idx--
	return r
}

// Prev returns the position one element back toward End.
func (r ReverseIterator) Prev() ReverseIterator {
	r.fwd.idx++
	return r
}

// Add returns the position n elements further in reverse order.
func (r ReverseIterator) Add(n int) ReverseIterator {
	r.fwd.idx -= n
	return r
}

// Sub returns the position n elements back in reverse order.
func (r ReverseIterator) Sub(n int) ReverseIterator {
	r.fwd.idx += n
	return r
}

// Index reports the offset of the yielded element from Begin.
func (r ReverseIterator) Index() int {
	return r.fwd.idx - 1
}

// Equal compares the stored forward positions directly.
func (r ReverseIterator) Equal(other ReverseIterator) bool {
	return r.fwd.Equal(other.fwd)
}

// Value returns the byte one position before the stored forward position.
// The iterator must not equal REnd.
func (r ReverseIterator) Value() byte {
	return r.fwd.buf[r.fwd.idx-1]
}

// Set overwrites the yielded byte. The iterator must not equal REnd.
func (r ReverseIterator) Set(c byte) error {
	if r.fwd.idx <= 0 || r.fwd.idx > len(r.fwd.buf)-1 {
		return outOfRange(r.fwd.idx-1, len(r.fwd.buf)-1)
	}
	r.fwd.buf[r.fwd.idx-1] = c
	return nil
}

// Begin returns the position of the first content byte.
func (p *Password) Begin() Iterator {
	return Iterator{buf: p.data, idx: 0}
}

// End returns the position one past the last content byte.
func (p *Password) End() Iterator {
	return Iterator{buf: p.data, idx: p.size}
}

// RBegin returns the reverse position yielding the last content byte.
func (p *Password) RBegin() ReverseIterator {
	return ReverseIterator{fwd: p.End()}
}

// REnd returns the reverse position one past the first content byte in
// reverse order.
func (p *Password) REnd() ReverseIterator {
	return ReverseIterator{fwd: p.Begin()}
}

// holds reports whether it references the current buffer within
// [Begin, End]. The element type is one byte wide, so no alignment check
// is needed on top of the bounds check.
func (p *Password) holds(it Iterator) bool {
	return unsafe.SliceData(it.buf) == unsafe.SliceData(p.data) && it.idx >= 0 && it.idx <= p.size
}

// FromRange copies the bytes spanned by [first, last) into a new password.
// Both iterators must reference the same buffer with first not after last.
func FromRange(first, last Iterator) (*Password, error) {
	if unsafe.SliceData(first.buf) != unsafe.SliceData(last.buf) {
		return nil, badIterator()
	}
	if first.idx < 0 || first.idx > last.idx || last.idx > len(last.buf)-1 {
		return nil, badIterator()
	}
	return FromBytes(first.buf[first.idx:last.idx]), nil
}

// InsertAt places a copy of src at the position and returns an iterator to
// the first inserted byte (or the same position when src is empty).
func (p *Password) InsertAt(pos Iterator, src []byte) (Iterator, error) {
	if !p.holds(pos) {
		return Iterator{}, badIterator()
	}
	if err := p.Insert(pos.idx, src); err != nil {
		return Iterator{}, err
	}
	return Iterator{buf: p.data, idx: pos.idx}, nil
}

// InsertRepeatAt places count copies of c at the position and returns an
// iterator to the first inserted byte.
func (p *Password) InsertRepeatAt(pos Iterator, count int, c byte) (Iterator, error) {
	if !p.holds(pos) {
		return Iterator{}, badIterator()
	}
	if err := p.InsertRepeat(pos.idx, count, c); err != nil {
		return Iterator{}, err
	}
	return Iterator{buf: p.data, idx: pos.idx}, nil
}

// EraseAt removes the byte at the position and returns an iterator to the
// byte that followed it. Erasing at End is a no-op.
func (p *Password) EraseAt(pos Iterator) (Iterator, error) {
	if !p.holds(pos) {
		return Iterator{}, badIterator()
	}
	if err := p.Erase(pos.idx, 1); err != nil {
		return Iterator{}, err
	}
	return Iterator{buf: p.data, idx: pos.idx}, nil
}

// EraseBetween removes the bytes spanned by [first, last) and returns an
// iterator to the byte that followed the removed region.
func (p *Password) EraseBetween(first, last Iterator) (Iterator, error) {
	if !p.holds(first) || !p.holds(last) || first.idx > last.idx {
		return Iterator{}, badIterator()
	}
	if err := p.Erase(first.idx, last.idx-first.idx); err != nil {
		return Iterator{}, err
	}
	return Iterator{buf: p.data, idx: first.idx}, nil
}

// ReplaceBetween substitutes the bytes spanned by [first, last) with a
// copy of src. When the region and src have equal length the bytes are
// overwritten in place without reallocation.
func (p *Password) ReplaceBetween(first, last Iterator, src []byte) error {
	if !p.holds(first) || !p.holds(last) || first.idx > last.idx {
		return badIterator()
	}
	return p.replaceRegion(first.idx, last.idx-first.idx, len(src), func(dst []byte) { copy(dst, src) })
}

// All yields the content forward as index/byte pairs.
func (p *Password) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < p.size; i++ {
			if !yield(i, p.data[i]) {
				return
			}
		}
	}
}

// Backward yields the content in reverse as index/byte pairs.
func (p *Password) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := p.size - 1; i >= 0; i-- {
			if !yield(i, p.data[i]) {
				return
			}
		}
	}
}

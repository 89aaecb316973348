package password

// All length-changing operations share one shape: validate, compute the
// target length with an overflow guard, allocate an exact-size buffer,
// copy the unaffected prefix and suffix around the new middle, swap the
// buffer in, and wipe the old one. A failed operation returns before any
// state is touched; a successful one swaps atomically.

// splice rebuilds the buffer with the region [pos, pos+remove) replaced by
// insert bytes produced by fill. fill runs before the old buffer is wiped,
// so it may read from the password's own (old) buffer.
func (p *Password) splice(pos, remove, insert int, fill func(dst []byte)) {
	target := alloc(p.size - remove + insert)
	copy(target, p.data[:pos])
	if insert > 0 {
		fill(target[pos : pos+insert])
	}
	copy(target[pos+insert:], p.data[pos+remove:p.size])
	wipe(p.data)
	p.data = target
	p.size += insert - remove
}

// Insert places a copy of src at index. index may equal Len, in which case
// the bytes are appended.
func (p *Password) Insert(index int, src []byte) error {
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if p.size > MaxLen-len(src) {
		return tooLong(p.size, len(src))
	}
	if len(src) == 0 {
		return nil
	}
	p.splice(index, 0, len(src), func(dst []byte) { copy(dst, src) })
	return nil
}

// InsertString places a copy of s at index.
func (p *Password) InsertString(index int, s string) error {
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if p.size > MaxLen-len(s) {
		return tooLong(p.size, len(s))
	}
	if len(s) == 0 {
		return nil
	}
	p.splice(index, 0, len(s), func(dst []byte) { copy(dst, s) })
	return nil
}

// InsertRepeat places count copies of c at index.
func (p *Password) InsertRepeat(index, count int, c byte) error {
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if count < 0 || p.size > MaxLen-count {
		return tooLong(p.size, count)
	}
	if count == 0 {
		return nil
	}
	p.splice(index, 0, count, func(dst []byte) {
		for i := range dst {
			dst[i] = c
		}
	})
	return nil
}

// InsertFrom places count bytes of other, starting at otherIndex, at
// index. A negative count means everything from otherIndex to the end;
// larger counts are clamped. other may be p itself.
func (p *Password) InsertFrom(index int, other *Password, otherIndex, count int) error {
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if otherIndex < 0 || otherIndex > other.size {
		return outOfRange(otherIndex, other.size)
	}
	if count < 0 || count > other.size-otherIndex {
		count = other.size - otherIndex
	}
	if p.size > MaxLen-count {
		return tooLong(p.size, count)
	}
	if count == 0 {
		return nil
	}
	src := other.data[otherIndex : otherIndex+count]
	p.splice(index, 0, count, func(dst []byte) { copy(dst, src) })
	return nil
}

// Erase removes count bytes starting at index and closes the gap. A
// negative count means everything from index to the end; larger counts are
// clamped.
func (p *Password) Erase(index, count int) error {
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if count < 0 || count > p.size-index {
		count = p.size - index
	}
	if count == 0 {
		return nil
	}
	p.splice(index, count, 0, nil)
	return nil
}

// replaceRegion implements the shared replace shape: degenerate to insert
// or erase when one side is empty, overwrite in place when the lengths
// match exactly (no reallocation, so no secret-bearing churn), and splice
// otherwise. remove must already be clamped.
func (p *Password) replaceRegion(pos, remove, insert int, fill func(dst []byte)) error {
	if p.size-remove > MaxLen-insert {
		return tooLong(p.size-remove, insert)
	}
	switch {
	case remove == 0:
		if insert > 0 {
			p.splice(pos, 0, insert, fill)
		}
	case insert == 0:
		p.splice(pos, remove, 0, nil)
	case remove == insert:
		fill(p.data[pos : pos+insert])
	default:
		p.splice(pos, remove, insert, fill)
	}
	return nil
}

// Replace removes count bytes at pos and places a copy of repl there.
// count is clamped to the available length; a negative count means to the
// end. pos must reference an existing byte.
func (p *Password) Replace(pos, count int, repl []byte) error {
	if pos < 0 || pos >= p.size {
		return outOfRange(pos, p.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	return p.replaceRegion(pos, count, len(repl), func(dst []byte) { copy(dst, repl) })
}

// ReplaceString removes count bytes at pos and places a copy of s there.
func (p *Password) ReplaceString(pos, count int, s string) error {
	if pos < 0 || pos >= p.size {
		return outOfRange(pos, p.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	return p.replaceRegion(pos, count, len(s), func(dst []byte) { copy(dst, s) })
}

// ReplaceRepeat removes count bytes at pos and places n copies of c there.
func (p *Password) ReplaceRepeat(pos, count, n int, c byte) error {
	if pos < 0 || pos >= p.size {
		return outOfRange(pos, p.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	if n < 0 {
		return tooLong(p.size-count, n)
	}
	return p.replaceRegion(pos, count, n, func(dst []byte) {
		for i := range dst {
			dst[i] = c
		}
	})
}

// ReplaceFrom removes count bytes at pos and places count2 bytes of other,
// starting at pos2, there. Negative counts mean to the end of the
// respective content. other may be p itself.
func (p *Password) ReplaceFrom(pos, count int, other *Password, pos2, count2 int) error {
	if pos < 0 || pos >= p.size {
		return outOfRange(pos, p.size)
	}
	if pos2 < 0 || pos2 >= other.size {
		return outOfRange(pos2, other.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	if count2 < 0 || count2 > other.size-pos2 {
		count2 = other.size - pos2
	}
	src := other.data[pos2 : pos2+count2]
	return p.replaceRegion(pos, count, count2, func(dst []byte) { copy(dst, src) })
}

// Append adds a copy of src at the end.
func (p *Password) Append(src []byte) error {
	return p.Insert(p.size, src)
}

// AppendString adds a copy of s at the end.
func (p *Password) AppendString(s string) error {
	return p.InsertString(p.size, s)
}

// AppendRepeat adds count copies of c at the end.
func (p *Password) AppendRepeat(count int, c byte) error {
	return p.InsertRepeat(p.size, count, c)
}

// AppendPassword adds a copy of other's content at the end.
func (p *Password) AppendPassword(other *Password) error {
	return p.InsertFrom(p.size, other, 0, -1)
}

// Push adds a single byte at the end.
func (p *Password) Push(c byte) error {
	return p.InsertRepeat(p.size, 1, c)
}

// Pop removes the final byte. On an empty password it is a no-op.
func (p *Password) Pop() {
	if p.size == 0 {
		return
	}
	_ = p.Erase(p.size-1, 1)
}

// Resize grows the content to count bytes by appending fill, or truncates
// it to count bytes. When count equals the current length nothing happens.
func (p *Password) Resize(count int, fill byte) error {
	if count < 0 || count > MaxLen {
		return tooLong(p.size, count)
	}
	if count == p.size {
		return nil
	}
	if count < p.size {
		p.splice(count, p.size-count, 0, nil)
		return nil
	}
	p.splice(p.size, 0, count-p.size, func(dst []byte) {
		for i := range dst {
			dst[i] = fill
		}
	})
	return nil
}

// Sub returns a new password holding count bytes starting at pos. A
// negative count means to the end; larger counts are clamped. pos may
// equal Len, yielding an empty password.
func (p *Password) Sub(pos, count int) (*Password, error) {
	if pos < 0 || pos > p.size {
		return nil, outOfRange(pos, p.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	return FromBytes(p.data[pos : pos+count]), nil
}

// CopyTo copies up to count bytes starting at pos into dst and reports how
// many were written. The count is clamped to both the available content
// and the capacity of dst. The caller owns wiping dst.
func (p *Password) CopyTo(dst []byte, count, pos int) (int, error) {
	if pos < 0 || pos > p.size {
		return 0, outOfRange(pos, p.size)
	}
	if count < 0 || count > p.size-pos {
		count = p.size - pos
	}
	return copy(dst, p.data[pos:pos+count]), nil
}

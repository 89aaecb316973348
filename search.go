package password

import "bytes"

// Npos is returned by the search operations when no match exists. A
// negative from position passed to LastIndex or LastIndexByte means
// "search from the end".
const Npos = -1

// Compare three-way compares p against other: bytes compare first, and
// when one content is a prefix of the other the shorter sorts first.
func (p *Password) Compare(other *Password) int {
	return bytes.Compare(p.data[:p.size], other.data[:other.size])
}

// CompareBytes three-way compares the content against b.
func (p *Password) CompareBytes(b []byte) int {
	return bytes.Compare(p.data[:p.size], b)
}

// CompareString three-way compares the content against s.
func (p *Password) CompareString(s string) int {
	return bytes.Compare(p.data[:p.size], []byte(s))
}

// CompareRange three-way compares count1 bytes of p starting at pos1
// against count2 bytes of other starting at pos2. Negative counts mean to
// the end; larger counts are clamped. Both positions must reference an
// existing byte.
func (p *Password) CompareRange(pos1, count1 int, other *Password, pos2, count2 int) (int, error) {
	if pos1 < 0 || pos1 >= p.size {
		return 0, outOfRange(pos1, p.size)
	}
	if pos2 < 0 || pos2 >= other.size {
		return 0, outOfRange(pos2, other.size)
	}
	if count1 < 0 || count1 > p.size-pos1 {
		count1 = p.size - pos1
	}
	if count2 < 0 || count2 > other.size-pos2 {
		count2 = other.size - pos2
	}
	return bytes.Compare(p.data[pos1:pos1+count1], other.data[pos2:pos2+count2]), nil
}

// Equal reports whether p and other hold identical content.
func (p *Password) Equal(other *Password) bool {
	return bytes.Equal(p.data[:p.size], other.data[:other.size])
}

// EqualBytes reports whether the content equals b.
func (p *Password) EqualBytes(b []byte) bool {
	return bytes.Equal(p.data[:p.size], b)
}

// EqualString reports whether the content equals s.
func (p *Password) EqualString(s string) bool {
	return string(p.data[:p.size]) == s
}

// HasPrefix reports whether the content begins with prefix.
func (p *Password) HasPrefix(prefix []byte) bool {
	return bytes.HasPrefix(p.data[:p.size], prefix)
}

// HasPrefixByte reports whether the content begins with c.
func (p *Password) HasPrefixByte(c byte) bool {
	return p.size > 0 && p.data[0] == c
}

// HasSuffix reports whether the content ends with suffix.
func (p *Password) HasSuffix(suffix []byte) bool {
	return bytes.HasSuffix(p.data[:p.size], suffix)
}

// HasSuffixByte reports whether the content ends with c.
func (p *Password) HasSuffixByte(c byte) bool {
	return p.size > 0 && p.data[p.size-1] == c
}

// scanForward returns the first index at or after from where pattern
// matches b. The matcher keeps a running count of matched pattern bytes
// and, on a mismatch, restarts at 1 only when the current subject byte
// equals the pattern's first byte. It carries no failure function, so
// patterns whose interior repeats a non-initial prefix (such as "aab" in
// "aaab") can be missed. Callers rely on this exact behavior.
func scanForward(b, pattern []byte, from int) int {
	pidx := 0
	for i := from; i < len(b); i++ {
		switch {
		case b[i] == pattern[pidx]:
			pidx++
			if pidx == len(pattern) {
				return i + 1 - len(pattern)
			}
		case b[i] == pattern[0]:
			pidx = 1
		default:
			pidx = 0
		}
	}
	return Npos
}

// Contains reports whether the content includes pattern. An empty pattern
// is always contained. See Index for the matcher's limitations.
func (p *Password) Contains(pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	return scanForward(p.data[:p.size], pattern, 0) != Npos
}

// ContainsByte reports whether the content includes c.
func (p *Password) ContainsByte(c byte) bool {
	return bytes.IndexByte(p.data[:p.size], c) >= 0
}

// Index returns the first index at or after from where pattern occurs, or
// Npos. An empty pattern matches at from when from is in range. The
// matcher restarts only on the pattern's first byte (see scanForward), so
// certain repeated-prefix patterns are not found even when present.
func (p *Password) Index(pattern []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= p.size {
		return Npos
	}
	if len(pattern) == 0 {
		return from
	}
	return scanForward(p.data[:p.size], pattern, from)
}

// IndexByte returns the first index at or after from holding c, or Npos.
func (p *Password) IndexByte(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= p.size {
		return Npos
	}
	if i := bytes.IndexByte(p.data[from:p.size], c); i >= 0 {
		return from + i
	}
	return Npos
}

// LastIndex returns the last index at or before from where pattern begins,
// or Npos. A from of Npos (or any out-of-range value) means "from the
// end". An empty pattern matches at from, or at Len when from is out of
// range. The backward scan mirrors Index's matcher, restarting only on the
// pattern's last byte.
func (p *Password) LastIndex(pattern []byte, from int) int {
	if p.size == 0 {
		return Npos
	}
	if len(pattern) == 0 {
		if from >= 0 && from < p.size {
			return from
		}
		return p.size
	}
	if from < 0 || from >= p.size {
		from = p.size - 1
	}
	pidx := 0
	last := len(pattern) - 1
	for i := 0; i <= from; i++ {
		switch {
		case p.data[from-i] == pattern[last-pidx]:
			pidx++
			if pidx == len(pattern) {
				return from - i
			}
		case p.data[from-i] == pattern[last]:
			pidx = 1
		default:
			pidx = 0
		}
	}
	return Npos
}

// LastIndexByte returns the last index at or before from holding c, or
// Npos. A negative or out-of-range from means "from the end".
func (p *Password) LastIndexByte(c byte, from int) int {
	if p.size == 0 {
		return Npos
	}
	if from < 0 || from >= p.size {
		from = p.size - 1
	}
	if i := bytes.LastIndexByte(p.data[:from+1], c); i >= 0 {
		return i
	}
	return Npos
}

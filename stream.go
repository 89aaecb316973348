package password

import "io"

// chunkSize bounds the staging buffers used by the stream collaborators.
// Staged bytes are wiped before the functions return.
const chunkSize = 1024

// WriteTo writes the logical content, without the terminator, to w.
func (p *Password) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.data[:p.size])
	return int64(n), err
}

// ReadFrom drains r in fixed-size chunks, appending each chunk to the
// existing content. Callers that want only the newly read bytes must Clear
// first. The staging buffer is wiped before return.
func (p *Password) ReadFrom(r io.Reader) (int64, error) {
	var buf [chunkSize]byte
	defer wipe(buf[:])

	var total int64
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if aerr := p.Append(buf[:n]); aerr != nil {
				return total, aerr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ReadLine clears p and reads from r until a newline or the source is
// exhausted. The delimiter is consumed but not stored. io.EOF is returned
// only when the source yields no bytes at all.
func ReadLine(r io.Reader, p *Password) error {
	return ReadLineDelim(r, p, '\n')
}

// ReadLineDelim clears p and reads from r until delim is found or the
// source is exhausted, appending bounded chunks without the delimiter. The
// staging buffers are wiped before return.
func ReadLineDelim(r io.Reader, p *Password, delim byte) error {
	p.Clear()

	var buf [chunkSize]byte
	defer wipe(buf[:])
	var one [1]byte
	defer wipe(one[:])

	br, buffered := r.(io.ByteReader)
	fill := 0
	got := false
	for {
		var c byte
		var err error
		if buffered {
			c, err = br.ReadByte()
		} else {
			var n int
			n, err = r.Read(one[:])
			if n > 0 {
				c = one[0]
				// Deliver the byte now; a terminal error resurfaces on
				// the next read.
				err = nil
			} else if err == nil {
				continue
			}
		}
		if err != nil {
			if fill > 0 {
				if aerr := p.Append(buf[:fill]); aerr != nil {
					return aerr
				}
			}
			if err == io.EOF && got {
				return nil
			}
			return err
		}
		got = true
		if c == delim {
			if fill > 0 {
				return p.Append(buf[:fill])
			}
			return nil
		}
		buf[fill] = c
		fill++
		if fill == chunkSize {
			if aerr := p.Append(buf[:fill]); aerr != nil {
				return aerr
			}
			fill = 0
		}
	}
}

//go:build unix

package password

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ReadFile loads the content of a secret file into a new password. The
// file must be a regular file owned by the current user or root, with no
// group or world permission bits; symlinks are not followed. The content
// is read in bounded chunks and the staging buffer is wiped before return.
func ReadFile(path string) (*Password, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}
	if stat.Uid != uint32(os.Getuid()) && stat.Uid != 0 {
		return nil, fmt.Errorf("%s: not owned by the current user", path)
	}
	if stat.Mode&0o077 != 0 {
		return nil, fmt.Errorf("%s: permissions too open (%04o)", path, stat.Mode&0o777)
	}

	p := New()
	var buf [chunkSize]byte
	defer wipe(buf[:])
	for {
		n, err := unix.Read(fd, buf[:])
		if err != nil {
			p.Clear()
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if n == 0 {
			return p, nil
		}
		if aerr := p.Append(buf[:n]); aerr != nil {
			p.Clear()
			return nil, aerr
		}
	}
}

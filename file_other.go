//go:build !unix

package password

import (
	"fmt"
	"os"
)

// ReadFile loads the content of a secret file into a new password. This
// portable variant rejects symlinks and group- or world-readable files but
// cannot perform the unix ownership check.
func ReadFile(path string) (*Password, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}
	if info.Mode().Perm()&0o077 != 0 {
		return nil, fmt.Errorf("%s: permissions too open (%04o)", path, info.Mode().Perm())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p := New()
	if _, err := p.ReadFrom(f); err != nil {
		p.Clear()
		return nil, err
	}
	return p, nil
}

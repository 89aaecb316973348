package password

import (
	"errors"
	"strings"
	"testing"
)

// recordWipes installs a hook that records the size of every wiped buffer
// and fails the test if any byte survives the zeroing.
func recordWipes(t *testing.T) *[]int {
	t.Helper()
	var sizes []int
	wipeHook = func(b []byte) {
		for i, c := range b {
			if c != 0 {
				t.Errorf("byte %d not zeroed after wipe", i)
			}
		}
		sizes = append(sizes, len(b))
	}
	t.Cleanup(func() { wipeHook = nil })
	return &sizes
}

func TestWipeOnMutation(t *testing.T) {
	tests := []struct {
		name string
		run  func(p *Password) error
		// Expected sizes of wiped buffers; each realloc wipes the old
		// storage span, content plus terminator.
		wantSizes []int
	}{
		{
			name:      "insert",
			run:       func(p *Password) error { return p.InsertString(1, "XY") },
			wantSizes: []int{7},
		},
		{
			name:      "erase",
			run:       func(p *Password) error { return p.Erase(1, 2) },
			wantSizes: []int{7},
		},
		{
			name:      "unequal replace",
			run:       func(p *Password) error { return p.ReplaceString(0, 6, "tiny") },
			wantSizes: []int{7},
		},
		{
			name: "equal-length replace does not reallocate",
			run:  func(p *Password) error { return p.ReplaceString(0, 6, "FBGMNT") },
		},
		{
			name:      "resize grow",
			run:       func(p *Password) error { return p.Resize(9, '.') },
			wantSizes: []int{7},
		},
		{
			name: "same-size resize does not reallocate",
			run:  func(p *Password) error { return p.Resize(6, '.') },
		},
		{
			name: "clear",
			run: func(p *Password) error {
				p.Clear()
				return nil
			},
			wantSizes: []int{7},
		},
		{
			name: "assign",
			run: func(p *Password) error {
				p.AssignString("other")
				return nil
			},
			wantSizes: []int{7},
		},
		{
			name: "failed insert does not touch the buffer",
			run: func(p *Password) error {
				if err := p.InsertString(10, "x"); err == nil {
					return errors.New("insert past length unexpectedly succeeded")
				}
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromString("secret") // storage span of 7
			sizes := recordWipes(t)

			if err := tt.run(p); err != nil {
				t.Fatalf("operation failed: %v", err)
			}

			if len(*sizes) != len(tt.wantSizes) {
				t.Fatalf("wipe calls = %d (%v), want %d", len(*sizes), *sizes, len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if (*sizes)[i] != want {
					t.Errorf("wipe %d size = %d, want %d", i, (*sizes)[i], want)
				}
			}
		})
	}
}

func TestTerminatorInvariant(t *testing.T) {
	check := func(t *testing.T, p *Password, stage string) {
		t.Helper()
		if len(p.data) != p.size+1 {
			t.Fatalf("%s: storage span = %d, want %d", stage, len(p.data), p.size+1)
		}
		if p.data[p.size] != 0 {
			t.Errorf("%s: terminator byte = %d", stage, p.data[p.size])
		}
	}

	p := FromString("abc")
	check(t, p, "construct")

	if err := p.InsertString(1, "XY"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	check(t, p, "insert")

	if err := p.Erase(0, 2); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	check(t, p, "erase")

	if err := p.Resize(10, 'f'); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	check(t, p, "resize")

	p.Clear()
	check(t, p, "clear")

	m := p.Move()
	check(t, p, "moved-from")
	check(t, m, "moved-to")
}

func TestMoveDoesNotWipe(t *testing.T) {
	p := FromString("keep-these-bytes")
	sizes := recordWipes(t)

	m := p.Move()
	if got := m.PlainText(); got != "keep-these-bytes" {
		t.Errorf("moved content = %q", got)
	}
	if len(*sizes) != 0 {
		t.Errorf("Move wiped %d buffers; ownership transfer must not copy or wipe", len(*sizes))
	}
}

func TestReadFromWipesStaging(t *testing.T) {
	p := New()
	sizes := recordWipes(t)

	if _, err := p.ReadFrom(strings.NewReader("abcdefgh")); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	// One wipe per append realloc plus the staging chunk.
	found := false
	for _, n := range *sizes {
		if n == chunkSize {
			found = true
		}
	}
	if !found {
		t.Errorf("staging chunk never wiped; wipe sizes = %v", *sizes)
	}
	if got := p.PlainText(); got != "abcdefgh" {
		t.Errorf("content = %q", got)
	}
}

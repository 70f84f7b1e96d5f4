package matcher

import "fmt"

type single struct {
	b byte
}

// Single returns a Matcher that accepts exactly one byte.
func Single(b byte) Matcher {
	return single{b: b}
}

func (m single) Matches(b byte) bool { return b == m.b }

func (m single) AcceptedBytes() []byte { return []byte{m.b} }

func (m single) Len() int { return 1 }

func (m single) String() string { return fmt.Sprintf("[0x%02x]", m.b) }

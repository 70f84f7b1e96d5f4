package matcher

type any256 struct{}

var theAny = any256{}

// Any returns a Matcher that accepts every byte value.
func Any() Matcher { return theAny }

func (any256) Matches(byte) bool { return true }

func (any256) AcceptedBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func (any256) Len() int { return 256 }

func (any256) String() string { return "[any]" }

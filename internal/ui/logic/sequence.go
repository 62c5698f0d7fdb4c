package logic

// Sequencer hands out monotonically increasing tokens. A result tagged with
// a token is applied only while that token is still the latest one issued;
// anything older is stale.
//
// It is owned by the Bubble Tea update loop and is not safe for concurrent use.
type Sequencer struct {
	latest uint64
}

// Next issues a new token, superseding every earlier one
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// Latest returns the most recently issued token, or zero if none was issued
func (s *Sequencer) Latest() uint64 {
	return s.latest
}

// IsCurrent reports whether token is the latest issued token
func (s *Sequencer) IsCurrent(token uint64) bool {
	return token != 0 && token == s.latest
}

package portal

// sequencer orders overlapping requests of one controller. It is guarded
// by the owning controller's mutex.
type sequencer struct {
	issued   uint64
	applied  uint64
	inflight int
}

func (s *sequencer) begin() uint64 {
	s.issued++
	s.inflight++
	return s.issued
}

// end finishes request seq and reports whether its response may be applied.
func (s *sequencer) end(seq uint64, ok bool) bool {
	s.inflight--
	if !ok || seq < s.applied {
		return false
	}
	s.applied = seq
	return true
}

func (s *sequencer) loading() bool {
	return s.inflight > 0
}

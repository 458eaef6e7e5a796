package history

// Op is one reversible edit recorded against the working buffer. The
// inverse of each shape is derivable from its own fields. The set is
// closed: apply, revert, and coalesce logic switch exhaustively over
// the four variants.
type Op interface {
	isOp()
}

// Single records one byte overwritten in place.
type Single struct {
	Offset int
	Old    byte
	New    byte
}

// Range records a run of consecutive bytes overwritten in place.
// Old and New always have equal length.
type Range struct {
	Offset int
	Old    []byte
	New    []byte
}

// Insert records bytes spliced into the buffer at Offset.
type Insert struct {
	Offset int
	Values []byte
}

// Delete records bytes removed from the buffer at Offset.
type Delete struct {
	Offset int
	Values []byte
}

func (Single) isOp() {}
func (Range) isOp()  {}
func (Insert) isOp() {}
func (Delete) isOp() {}

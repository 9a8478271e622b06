package bfvm

// Tape is the cell memory: a row of byte cells unbounded to the right,
// plus the current cell pointer. It starts as a single zero cell and
// never shrinks.
type Tape struct {
	cells []byte
	pos   int
}

func NewTape() *Tape {
	return &Tape{
		cells: make([]byte, 1),
	}
}

// MoveRight advances the pointer, growing the tape by one zero cell
// when the pointer is at the right edge.
func (t *Tape) MoveRight() {
	if t.pos == len(t.cells)-1 {
		t.cells = append(t.cells, 0)
	}
	t.pos++
}

// MoveLeft fails with ErrTapeUnderflow at the leftmost cell. The tape
// never wraps or clamps.
func (t *Tape) MoveLeft() error {
	if t.pos == 0 {
		return ErrTapeUnderflow
	}
	t.pos--
	return nil
}

// Increment and Decrement wrap modulo 256.

func (t *Tape) Increment() {
	t.cells[t.pos]++
}

func (t *Tape) Decrement() {
	t.cells[t.pos]--
}

func (t *Tape) Cell() byte {
	return t.cells[t.pos]
}

func (t *Tape) SetCell(b byte) {
	t.cells[t.pos] = b
}

func (t *Tape) Pos() int {
	return t.pos
}

func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns a copy of the cell row, for diagnostics.
func (t *Tape) Cells() []byte {
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}

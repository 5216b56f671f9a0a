package history

// Cursor walks through records from the most recent to the oldest.
type Cursor struct {
	records []Record
	// Index of the record returned by the last call to Prev. Equal to
	// len(records) before the first call.
	index int
}

// NewCursor creates a Cursor over records, which are ordered oldest first.
func NewCursor(records []Record) *Cursor {
	return &Cursor{records, len(records)}
}

// Prev moves to the previous record and returns its arguments, followed by an
// empty argument ready to receive input. It returns ErrEndOfHistory when all
// records have been visited.
func (c *Cursor) Prev() ([]string, error) {
	if c.index <= 0 {
		c.index = -1
		return nil, ErrEndOfHistory
	}
	c.index--
	args := make([]string, 0, len(c.records[c.index].Argument)+1)
	args = append(args, c.records[c.index].Argument...)
	return append(args, ""), nil
}

// Reset moves the cursor back before the most recent record.
func (c *Cursor) Reset() {
	c.index = len(c.records)
}

// Len returns the number of records.
func (c *Cursor) Len() int { return len(c.records) }

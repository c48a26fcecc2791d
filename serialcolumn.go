package gridview

// NewSerialColumn returns a column rendering the row number
// starting at the offset of the current page plus one.
func NewSerialColumn() *Column {
	return newColumn(SerialKind)
}

// WithOffset returns a copy counting rows after offset.
// The grid sets the offset of the current page.
func (c *Column) WithOffset(offset int) *Column {
	c.mustBe("WithOffset", SerialKind)
	mod := c.clone()
	mod.offset = offset
	return mod
}

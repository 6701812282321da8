package reactive

// IntCell wraps Cell[int] with convenience methods for the integer state
// cells that click modifiers and selectors bind to.
type IntCell struct {
	*Cell[int]
}

// NewIntCell creates a new IntCell with the given initial value.
func NewIntCell(initial int) *IntCell {
	return &IntCell{NewCell(initial)}
}

// Inc increments the value by 1.
func (c *IntCell) Inc() {
	c.Update(func(n int) int { return n + 1 })
}

// Dec decrements the value by 1.
func (c *IntCell) Dec() {
	c.Update(func(n int) int { return n - 1 })
}

// Add adds the given value.
func (c *IntCell) Add(n int) {
	c.Update(func(v int) int { return v + n })
}

// Sub subtracts the given value.
func (c *IntCell) Sub(n int) {
	c.Update(func(v int) int { return v - n })
}

// BoolCell wraps Cell[bool] with convenience methods.
// Stay-active flags are bool cells.
type BoolCell struct {
	*Cell[bool]
}

// NewBoolCell creates a new BoolCell with the given initial value.
func NewBoolCell(initial bool) *BoolCell {
	return &BoolCell{NewCell(initial)}
}

// Toggle flips the value.
func (c *BoolCell) Toggle() {
	c.Update(func(v bool) bool { return !v })
}

// SetTrue sets the value to true.
func (c *BoolCell) SetTrue() {
	c.Set(true)
}

// SetFalse sets the value to false.
func (c *BoolCell) SetFalse() {
	c.Set(false)
}

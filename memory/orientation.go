// SPDX-License-Identifier: MIT

package memory

// Orientation tags a Vector (and, through its members, a Matrix) as a row
// vector or a column vector.
type Orientation uint8

const (
	// Row marks a row vector; a Row matrix stores one vector per row.
	Row Orientation = iota
	// Column marks a column vector; a Column matrix stores one vector per column.
	Column
)

// String returns "ROW" or "COLUMN".
func (o Orientation) String() string {
	if o == Column {
		return "COLUMN"
	}

	return "ROW"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

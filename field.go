package ecs

import "github.com/TheBitDrifter/table"

// Field is one column of a Store: the table element type plus a typed
// accessor for reading rows of it.
type Field[T any] struct {
	table.ElementType
	table.Accessor[T]
}

// At returns a pointer to the column value stored at row of tbl.
func (f Field[T]) At(row int, tbl table.Table) *T {
	return f.Accessor.Get(row, tbl)
}

// In reports whether tbl carries this column.
func (f Field[T]) In(tbl table.Table) bool {
	return f.Accessor.Check(tbl)
}

// Column returns the element type to pass to Factory.NewStore.
func (f Field[T]) Column() table.ElementType {
	return f.ElementType
}

package models

// Table is a fully materialized sheet: column names plus positional row values.
type Table struct {
	// Name is the sheet the table was read from.
	Name string `json:"name"`
	// Columns holds one name per column.
	Columns HeaderSet `json:"columns"`
	// Rows holds the row values in source order.
	Rows [][]any `json:"rows"`
}

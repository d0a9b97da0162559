// Package mapper turns row cursors and named cells into ordered records.
//
// Inputs that do not fit are handled silently:
//   - caller supplied headers longer than the sheet column count are truncated,
//   - rows shorter than the header set yield nil for the missing fields,
//   - form field names that do not resolve, or that resolve to another sheet,
//     are left out of the result.
package mapper

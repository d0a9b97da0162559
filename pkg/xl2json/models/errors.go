package models

import "errors"

// ErrMissingFileName indicates no file name or other file reference was supplied.
var ErrMissingFileName = errors.New("file name not informed")

// ErrMissingFileContent indicates the workbook handle or input stream is absent.
var ErrMissingFileContent = errors.New("file content not informed")

// ErrInvalidColumnCount indicates caller supplied headers are fewer than the sheet columns.
var ErrInvalidColumnCount = errors.New("invalid column amount")

// ErrMismatchedReplacementLength indicates replace-from and replace-to differ in length.
var ErrMismatchedReplacementLength = errors.New("invalid replace values amount")

// ErrUnsupportedFormat indicates the input format cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrInvalidSample indicates the sample used for model generation is not a JSON object
// or an array of objects.
var ErrInvalidSample = errors.New("invalid sample record")

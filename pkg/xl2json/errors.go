package xl2json

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// Errors reported by conversions. Test with errors.Is; decoding failures
// arrive wrapped in a *ConversionError.
var (
	ErrMissingFileName             = models.ErrMissingFileName
	ErrMissingFileContent          = models.ErrMissingFileContent
	ErrInvalidColumnCount          = models.ErrInvalidColumnCount
	ErrMismatchedReplacementLength = models.ErrMismatchedReplacementLength
	ErrUnsupportedFormat           = models.ErrUnsupportedFormat
	ErrInvalidSample               = models.ErrInvalidSample
)

// ErrInvalidOptions indicates options that fail validation.
var ErrInvalidOptions = errors.New("invalid options")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Conversion stages reported in ConversionError.Stage.
const (
	StageOpen    = "open"
	StageDecode  = "decode"
	StageHeaders = "headers"
	StageRows    = "rows"
	StageForm    = "form"
	StageModel   = "model"
)

// ConversionError represents an error during conversion of one input.
type ConversionError struct {
	File  string
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(file, stage string, err error) *ConversionError {
	return &ConversionError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}

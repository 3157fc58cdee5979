package record

import "errors"

// Record domain errors
var (
	// Import errors: these reject the whole file, never a single row
	ErrMissingNameColumn = errors.New("invalid file format: the 'Nome' column is required")
	ErrEmptyWorkbook     = errors.New("the uploaded worksheet has no data rows")
	ErrUnreadableFile    = errors.New("the uploaded file could not be read as a spreadsheet")
)

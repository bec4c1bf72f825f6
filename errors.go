package xlgrid

import "errors"

// ErrInvalidAddress indicates a malformed A1-notation cell address.
var ErrInvalidAddress = errors.New("invalid cell address")

// ErrInvalidRange indicates a malformed A1-notation range.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidArgument indicates an unrecognized option value, such as an
// unknown shift direction or a malformed color.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSheetNotFound indicates a sheet name that does not resolve in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrOverlappingMerge indicates a merge that would overlap an existing
// merged region.
var ErrOverlappingMerge = errors.New("overlapping merged region")

// ErrInvalidFormula indicates a formula that failed syntax validation.
var ErrInvalidFormula = errors.New("invalid formula")

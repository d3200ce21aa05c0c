package encoding

import "errors"

// Common errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrUnknownValue       = errors.New("operand references unknown value id")
	ErrDuplicateID        = errors.New("duplicate value id")
	ErrBadType            = errors.New("malformed type")
	ErrBadAttr            = errors.New("malformed attribute")
	ErrBadRegion          = errors.New("region argument count does not match operand count")
	ErrBadSegments        = errors.New("operand_segment_sizes inconsistent with operand count")
)

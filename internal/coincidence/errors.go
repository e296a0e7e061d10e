package coincidence

import "errors"

var (
	// ErrPairsLength is the panic value when link and coincidence pair
	// vectors handed to CalcRatios are not index-aligned.
	ErrPairsLength = errors.New("coincidence: link and jaccard pairs differ in length")

	// ErrLengthMismatch reports identifier and feature vectors of different length.
	ErrLengthMismatch = errors.New("coincidence: identifier and feature lengths differ")

	ErrUnknownTriangle = errors.New("coincidence: unknown triangle")
)

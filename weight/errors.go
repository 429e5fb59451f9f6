package weight

import "errors"

// ErrInvalidCoefficients indicates a custom-weights string that did not
// parse into exactly seven floats.
var ErrInvalidCoefficients = errors.New("weight: invalid custom coefficients")

package records

import "errors"

var errTrailingData = errors.New("unexpected data after top-level value")

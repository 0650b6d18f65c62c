package satask

import "errors"

var ErrInconsistent = errors.New("inconsistent assumptions")

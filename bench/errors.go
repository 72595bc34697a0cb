// SPDX-License-Identifier: MIT

package bench

import "errors"

// ErrBadInput indicates an unusable size list or step count.
var ErrBadInput = errors.New("bench: invalid benchmark input")

// SPDX-License-Identifier: MIT
package bigrade

import "errors"

// ErrOutOfRange indicates a bigrade coordinate outside an IndexMatrix's
// declared height/width.
var ErrOutOfRange = errors.New("bigrade: index out of range")

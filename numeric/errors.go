// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package numeric

import "errors"

// ErrInvalidInt is returned when the leading digit run is not followed
// immediately by a comma or end of input.
var ErrInvalidInt = errors.New("numeric: invalid integer token")

// ErrInvalidFloat is the float equivalent of ErrInvalidInt.
var ErrInvalidFloat = errors.New("numeric: invalid float token")

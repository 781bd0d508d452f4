// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMissingFile is returned when the multipart form has no "file" part.
var ErrMissingFile = errors.New("multipart field `file` is missing")

package glint

import "github.com/glint-dev/glint/internal"

// NoOwnerError is the panic value raised when a signal, memo, effect or
// cleanup is created outside any owner. Recover it with errors.As against
// *NoOwnerError.
type NoOwnerError = internal.NoOwnerError

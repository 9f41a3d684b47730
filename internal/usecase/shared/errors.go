package shared

import "booking-flow/internal/pkg/errs"

var ErrSessionClosed = errs.New("session closed")

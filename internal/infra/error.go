package infra

import (
	"log/slog"

	"booking-flow/internal/pkg/errs"
)

// RepositoryErrorKind classifies storage failures for the use case layer.
type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	// KindUnavailable is a lock store outage; callers degrade instead of failing.
	KindUnavailable RepositoryErrorKind = "UNAVAILABLE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure at a level matching its kind and wraps it.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("cause", err.Error()))
		err = errs.Wrap(err, msg)
	}

	switch kind {
	case KindNotFound:
		logger.Debug("repository miss: "+msg, attrs...)
	case KindUnavailable, KindDuplicateKey:
		logger.Warn("repository degraded: "+msg, attrs...)
	default:
		logger.Error("repository error: "+msg, attrs...)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// KindOf returns the kind of the first RepositoryError in err's chain, or "".
func KindOf(err error) RepositoryErrorKind {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

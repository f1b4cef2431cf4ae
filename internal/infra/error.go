package infra

import (
	"errors"
	"log/slog"

	"venue-booking/internal/pkg/errs"
)

type ClientErrorKind string

// ClientError classifies failures talking to the external venue API.
type ClientError struct {
	Kind ClientErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e ClientError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ClientError) Unwrap() error {
	return e.err
}

func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Venue API error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ClientError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound  ClientErrorKind = "NOT_FOUND"
	KindRejected  ClientErrorKind = "REJECTED"
	KindUpstream  ClientErrorKind = "UPSTREAM_FAILURE"
	KindTransport ClientErrorKind = "TRANSPORT_FAILURE"
	KindDecode    ClientErrorKind = "DECODE_FAILURE"
)

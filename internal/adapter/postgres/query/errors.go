package query

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
)

// Kind classifies a failed chain.
type Kind string

const (
	// KindConnection covers refused, timed-out and rejected connections,
	// including waiting too long for a pooled connection.
	KindConnection Kind = "connection"
	// KindStatement is an error reported by the server for the statement.
	KindStatement Kind = "statement"
	// KindBuild means the chain could not be turned into SQL.
	KindBuild Kind = "build"
	// KindDecode means rows came back but could not be read.
	KindDecode Kind = "decode"
)

// Error is the error half of every envelope.
type Error struct {
	Kind    Kind
	Code    string // SQLSTATE, statement errors only
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s error (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsUndefinedTable reports a missing relation, which callers may treat as
// an empty result.
func (e *Error) IsUndefinedTable() bool {
	return e != nil && e.Code == postgres.CodeUndefinedTable
}

// IsUniqueViolation reports a unique constraint conflict.
func (e *Error) IsUniqueViolation() bool {
	return e != nil && e.Code == postgres.CodeUniqueViolation
}

func buildError(format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: KindBuild, Message: msg, Err: errors.New(msg)}
}

func decodeError(err error) *Error {
	return &Error{Kind: KindDecode, Message: err.Error(), Err: err}
}

// classify turns a driver error into an Error.
func classify(err error) *Error {
	if err == nil {
		return nil
	}

	var qe *Error
	if errors.As(err, &qe) {
		return qe
	}

	if msg, ok := connectionMessage(err); ok {
		return &Error{Kind: KindConnection, Message: msg, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{Kind: KindStatement, Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}

	return &Error{Kind: KindStatement, Message: err.Error(), Err: err}
}

// classifyScan is classify for failures while reading rows: anything that
// is not a server or connection error is a decode error.
func classifyScan(err error) *Error {
	if _, ok := connectionMessage(err); ok {
		return classify(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classify(err)
	}
	return decodeError(err)
}

func connectionMessage(err error) (string, bool) {
	if errors.Is(err, postgres.ErrPoolExhausted) {
		return "timed out waiting for a free connection", true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "28"):
			return "authentication failed: " + pgErr.Message, true
		case strings.HasPrefix(pgErr.Code, "08"):
			return "connection failure: " + pgErr.Message, true
		case pgErr.Code == "53300":
			return "server has too many connections", true
		case pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03":
			return "server is shutting down or starting up", true
		}
		return "", false
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return "timeout", true
	}
	if errors.Is(err, context.Canceled) {
		return "canceled", true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		if refused(err) {
			return "connection refused", true
		}
		return "cannot connect: " + connectErr.Error(), true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "timeout", true
		}
		return "network error: " + netErr.Error(), true
	}

	return "", false
}

func refused(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Err != nil && strings.Contains(opErr.Err.Error(), "refused")
}

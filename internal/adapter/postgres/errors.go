package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
	CodeInvalidText         = "22P02"
	CodeUndefinedTable      = "42P01"
)

// MapError converts driver and query-layer errors to domain errors.
// Context errors are wrapped but not mapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case CodeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case CodeCheckViolation, CodeNotNullViolation, CodeInvalidText:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

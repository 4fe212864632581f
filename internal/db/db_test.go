package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateObject(t *testing.T) {
	if !isDuplicateObject(&pgconn.PgError{Code: "42710"}) {
		t.Fatalf("duplicate_object not recognized")
	}
	if !isDuplicateObject(fmt.Errorf("alter table: %w", &pgconn.PgError{Code: "42710"})) {
		t.Fatalf("wrapped duplicate_object not recognized")
	}
	if isDuplicateObject(&pgconn.PgError{Code: "42883"}) {
		t.Fatalf("undefined_function must stay fatal, not be swallowed as a duplicate")
	}
	if isDuplicateObject(errors.New("connection refused")) {
		t.Fatalf("plain error misclassified")
	}
}

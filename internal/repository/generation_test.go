package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewGenerationRepository(t *testing.T) {
	repo := NewGenerationRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil GenerationRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestListRecentRejectsNonPositiveLimit(t *testing.T) {
	repo := NewGenerationRepository(nil)

	for _, limit := range []int{0, -1} {
		_, err := repo.ListRecent(context.Background(), limit)
		if !errors.Is(err, ErrNonPositiveLimit) {
			t.Errorf("ListRecent(%d) error = %v, want %v", limit, err, ErrNonPositiveLimit)
		}
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrNonPositiveLimit) {
		t.Fatal("ErrNonPositiveLimit should not be a duplicate entry error")
	}
	if isDuplicateEntryError(errors.New("Error 1062 (23000): Duplicate entry 'abc' for key 'PRIMARY'")) {
		t.Fatal("plain error text should not be treated as a duplicate entry error")
	}
	if isDuplicateEntryError(&mysql.MySQLError{Number: 1146, Message: "Table 'pwgen.generations' doesn't exist"}) {
		t.Fatal("MySQL 1146 error should not be a duplicate entry error")
	}

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'abc' for key 'PRIMARY'"}
	if !isDuplicateEntryError(dup) {
		t.Fatal("MySQL 1062 error should be a duplicate entry error")
	}
	if !isDuplicateEntryError(fmt.Errorf("inserting generation: %w", dup)) {
		t.Fatal("wrapped MySQL 1062 error should be a duplicate entry error")
	}
}

package events

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const listQ = `(?s)^SELECT\s+id,\s*owner_id,\s*image_url\s+FROM\s+events\s+WHERE\s+owner_id\s*=\s*\$1\s*$`

func TestListByOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "image_url"}).
		AddRow("e1", "u1", "https://h/storage/v1/object/public/event-images/u1/cover_512.jpg").
		AddRow("e2", "u1", nil)
	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ImageURL == nil || got[1].ImageURL != nil {
		t.Fatalf("unexpected image urls: %+v %+v", got[0], got[1])
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "image_url"}))

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}

func TestListByOwner_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnError(errors.New("db down"))

	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestListByOwner_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "image_url"}).
		AddRow("e1", "u1", nil).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(rows)

	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected row error")
	}
}

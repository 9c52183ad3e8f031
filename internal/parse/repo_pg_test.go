package parse

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresResultJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	p := Parse{
		ID:         "parse-row-1",
		UserID:     "user-1",
		DocumentID: "doc-1",
		ParseID:    "abcdef123456",
		Method:     "pdf-text-layer",
		Overall:    0.82,
		Result:     ParsedResume{Text: "some resume text"},
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO parses").
		WithArgs(
			p.ID,
			p.UserID,
			sqlmock.AnyArg(), // document_id
			p.ParseID,
			p.Method,
			p.Overall,
			sqlmock.AnyArg(), // result json
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByParseIDRoundTrips(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)
	payload := []byte(`{"text":"some resume text","confidence":{"overall":0.82,"sections":{"contact":0,"experience":0,"education":0,"skills":0,"projects":0,"achievements":0}}}`)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "document_id", "parse_id", "parse_method", "overall_confidence", "result", "created_at",
	}).AddRow("parse-row-1", "user-1", "doc-1", "abcdef123456", "pdf-text-layer", 0.82, payload, created)

	mock.ExpectQuery("SELECT (.+) FROM parses").
		WithArgs("user-1", "abcdef123456").
		WillReturnRows(rows)

	got, err := repo.GetByParseID(context.Background(), "user-1", "abcdef123456")
	if err != nil {
		t.Fatalf("GetByParseID: %v", err)
	}
	if got.Result.Text != "some resume text" {
		t.Fatalf("result text = %q", got.Result.Text)
	}
	if got.Overall != 0.82 || got.DocumentID != "doc-1" {
		t.Fatalf("row mapping wrong: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

package postgres_test

import (
	"context"
	"testing"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSignatureRepository_ExpirePendingBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewSignatureRepository(db)
	ctx := context.Background()

	t.Run("ReturnsAffectedCount", func(t *testing.T) {
		mock.ExpectExec("UPDATE signatures SET status").
			WithArgs(domain.SignatureExpired, domain.SignaturePending, "2025-02-08T00:00:00Z").
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.ExpirePendingBefore(ctx, "2025-02-08T00:00:00Z")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestSignatureRepository_GetByContract(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewSignatureRepository(db)
	ctx := context.Background()

	t.Run("ReturnsLatest", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "contract_id", "payload", "signed_at", "status", "notes", "created_at", "updated_at"}).
			AddRow(5, 11, "data:image/jpeg;base64,aGVsbG8=", "2025-03-05T14:00:00Z", "ASSINADO", "", "2025-03-01T09:00:00Z", "")

		mock.ExpectQuery("SELECT (.+) FROM signatures WHERE contract_id = \\$1 ORDER BY id DESC LIMIT 1").
			WithArgs(int32(11)).
			WillReturnRows(rows)

		sig, err := repo.GetByContract(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, domain.SignatureSigned, sig.Status)
		assert.True(t, domain.HasSignatureContent(sig))
	})
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
	apperrors "github.com/edulearn/cardvault/internal/errors"
)

var envelopeColumns = []string{
	"id", "user_id", "encrypted_card_number", "card_number_iv", "card_number_tag",
	"encrypted_expiry", "expiry_iv", "expiry_tag", "cardholder_name", "last_four_digits",
	"card_brand", "integrity_hash", "created_at", "deleted_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

func testEnvelope() *cardsDomain.CardEnvelope {
	return &cardsDomain.CardEnvelope{
		ID:     uuid.Must(uuid.NewV7()),
		UserID: uuid.Must(uuid.NewV7()),
		EncryptedCardNumber: cryptoDomain.EncryptedField{
			Ciphertext: "bnVtYmVyLWNpcGhlcnRleHQ=",
			IV:         "bnVtYmVyLWl2LTE2Ynl0ZQ==",
			Tag:        "bnVtYmVyLXRhZy0xNmJ5dGU=",
		},
		EncryptedExpiry: cryptoDomain.EncryptedField{
			Ciphertext: "ZXhwaXJ5LWNpcGhlcnRleHQ=",
			IV:         "ZXhwaXJ5LWl2LTE2Ynl0ZQ==",
			Tag:        "ZXhwaXJ5LXRhZy0xNmJ5dGU=",
		},
		CardholderName: "John Doe",
		LastFourDigits: "4242",
		CardBrand:      cardsDomain.BrandVisa,
		IntegrityHash:  "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0",
		CreatedAt:      time.Now().UTC(),
	}
}

func envelopeRow(envelope *cardsDomain.CardEnvelope) *sqlmock.Rows {
	return sqlmock.NewRows(envelopeColumns).AddRow(
		envelope.ID.String(),
		envelope.UserID.String(),
		envelope.EncryptedCardNumber.Ciphertext,
		envelope.EncryptedCardNumber.IV,
		envelope.EncryptedCardNumber.Tag,
		envelope.EncryptedExpiry.Ciphertext,
		envelope.EncryptedExpiry.IV,
		envelope.EncryptedExpiry.Tag,
		envelope.CardholderName,
		envelope.LastFourDigits,
		string(envelope.CardBrand),
		envelope.IntegrityHash,
		envelope.CreatedAt,
		envelope.DeletedAt,
	)
}

func TestPostgreSQLCardRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		envelope := testEnvelope()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO card_envelopes")).
			WithArgs(
				envelope.ID,
				envelope.UserID,
				envelope.EncryptedCardNumber.Ciphertext,
				envelope.EncryptedCardNumber.IV,
				envelope.EncryptedCardNumber.Tag,
				envelope.EncryptedExpiry.Ciphertext,
				envelope.EncryptedExpiry.IV,
				envelope.EncryptedExpiry.Tag,
				envelope.CardholderName,
				envelope.LastFourDigits,
				string(envelope.CardBrand),
				envelope.IntegrityHash,
				envelope.CreatedAt,
				nil,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, envelope))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO card_envelopes")).
			WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, testEnvelope())
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		envelope := testEnvelope()

		mock.ExpectQuery(regexp.QuoteMeta("FROM card_envelopes")).
			WithArgs(envelope.ID).
			WillReturnRows(envelopeRow(envelope))

		got, err := repo.Get(ctx, envelope.ID)
		require.NoError(t, err)
		assert.Equal(t, envelope.ID, got.ID)
		assert.Equal(t, envelope.UserID, got.UserID)
		assert.Equal(t, envelope.EncryptedCardNumber, got.EncryptedCardNumber)
		assert.Equal(t, envelope.EncryptedExpiry, got.EncryptedExpiry)
		assert.Equal(t, envelope.CardholderName, got.CardholderName)
		assert.Equal(t, envelope.LastFourDigits, got.LastFourDigits)
		assert.Equal(t, envelope.CardBrand, got.CardBrand)
		assert.Equal(t, envelope.IntegrityHash, got.IntegrityHash)
		assert.Nil(t, got.DeletedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta("FROM card_envelopes")).
			WithArgs(cardID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, cardID)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)

		first := testEnvelope()
		second := testEnvelope()
		second.UserID = first.UserID

		rows := envelopeRow(first)
		rows.AddRow(
			second.ID.String(), second.UserID.String(),
			second.EncryptedCardNumber.Ciphertext, second.EncryptedCardNumber.IV, second.EncryptedCardNumber.Tag,
			second.EncryptedExpiry.Ciphertext, second.EncryptedExpiry.IV, second.EncryptedExpiry.Tag,
			second.CardholderName, second.LastFourDigits, string(second.CardBrand),
			second.IntegrityHash, second.CreatedAt, second.DeletedAt,
		)

		mock.ExpectQuery(regexp.QuoteMeta("FROM card_envelopes")).
			WithArgs(first.UserID, 0, 50).
			WillReturnRows(rows)

		envelopes, err := repo.ListByUserID(ctx, first.UserID, 0, 50)
		require.NoError(t, err)
		require.Len(t, envelopes, 2)
		assert.Equal(t, first.ID, envelopes[0].ID)
		assert.Equal(t, second.ID, envelopes[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		userID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta("FROM card_envelopes")).
			WithArgs(userID, 0, 50).
			WillReturnRows(sqlmock.NewRows(envelopeColumns))

		envelopes, err := repo.ListByUserID(ctx, userID, 0, 50)
		require.NoError(t, err)
		assert.Empty(t, envelopes)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLCardRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE card_envelopes")).
			WithArgs(sqlmock.AnyArg(), cardID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, cardID))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLCardRepository(db)
		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE card_envelopes")).
			WithArgs(sqlmock.AnyArg(), cardID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, cardID)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	apperrors "github.com/edulearn/cardvault/internal/errors"
)

// MySQLCardRepository implements card envelope persistence for MySQL
// databases. UUIDs are stored as BINARY(16).
type MySQLCardRepository struct {
	db *sql.DB
}

// Create inserts a new card envelope into the MySQL database.
func (m *MySQLCardRepository) Create(ctx context.Context, envelope *cardsDomain.CardEnvelope) error {
	query := `INSERT INTO card_envelopes (id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := envelope.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	userID, err := envelope.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		userID,
		envelope.EncryptedCardNumber.Ciphertext,
		envelope.EncryptedCardNumber.IV,
		envelope.EncryptedCardNumber.Tag,
		envelope.EncryptedExpiry.Ciphertext,
		envelope.EncryptedExpiry.IV,
		envelope.EncryptedExpiry.Tag,
		envelope.CardholderName,
		envelope.LastFourDigits,
		envelope.CardBrand,
		envelope.IntegrityHash,
		envelope.CreatedAt,
		envelope.DeletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create card envelope")
	}

	return nil
}

// Get retrieves a non-deleted card envelope by its ID.
func (m *MySQLCardRepository) Get(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.CardEnvelope, error) {
	query := `SELECT id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at
			  FROM card_envelopes
			  WHERE id = ? AND deleted_at IS NULL
			  LIMIT 1`

	id, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	var envelope cardsDomain.CardEnvelope
	var rawID, rawUserID []byte

	err = m.db.QueryRowContext(ctx, query, id).Scan(
		&rawID,
		&rawUserID,
		&envelope.EncryptedCardNumber.Ciphertext,
		&envelope.EncryptedCardNumber.IV,
		&envelope.EncryptedCardNumber.Tag,
		&envelope.EncryptedExpiry.Ciphertext,
		&envelope.EncryptedExpiry.IV,
		&envelope.EncryptedExpiry.Tag,
		&envelope.CardholderName,
		&envelope.LastFourDigits,
		&envelope.CardBrand,
		&envelope.IntegrityHash,
		&envelope.CreatedAt,
		&envelope.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card envelope")
	}

	if envelope.ID, err = uuid.FromBytes(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card id")
	}
	if envelope.UserID, err = uuid.FromBytes(rawUserID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &envelope, nil
}

// ListByUserID retrieves non-deleted card envelopes for a user, newest first,
// with pagination.
func (m *MySQLCardRepository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*cardsDomain.CardEnvelope, error) {
	query := `SELECT id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at
			  FROM card_envelopes
			  WHERE user_id = ? AND deleted_at IS NULL
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rawUserIDParam, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	rows, err := m.db.QueryContext(ctx, query, rawUserIDParam, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list card envelopes")
	}
	defer func() { _ = rows.Close() }()

	var envelopes []*cardsDomain.CardEnvelope
	for rows.Next() {
		var envelope cardsDomain.CardEnvelope
		var rawID, rawUserID []byte

		err := rows.Scan(
			&rawID,
			&rawUserID,
			&envelope.EncryptedCardNumber.Ciphertext,
			&envelope.EncryptedCardNumber.IV,
			&envelope.EncryptedCardNumber.Tag,
			&envelope.EncryptedExpiry.Ciphertext,
			&envelope.EncryptedExpiry.IV,
			&envelope.EncryptedExpiry.Tag,
			&envelope.CardholderName,
			&envelope.LastFourDigits,
			&envelope.CardBrand,
			&envelope.IntegrityHash,
			&envelope.CreatedAt,
			&envelope.DeletedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan card envelope")
		}

		if envelope.ID, err = uuid.FromBytes(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal card id")
		}
		if envelope.UserID, err = uuid.FromBytes(rawUserID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
		}

		envelopes = append(envelopes, &envelope)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate card envelopes")
	}

	return envelopes, nil
}

// Delete performs a soft delete on a card envelope by setting the DeletedAt
// timestamp.
func (m *MySQLCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	query := `UPDATE card_envelopes
			  SET deleted_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	id, err := cardID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	result, err := m.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete card envelope")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read delete result")
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// NewMySQLCardRepository creates a new MySQL card envelope repository
// instance.
func NewMySQLCardRepository(db *sql.DB) *MySQLCardRepository {
	return &MySQLCardRepository{db: db}
}

// Package repository implements card envelope persistence.
// Repositories support both PostgreSQL and MySQL with soft deletion.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	apperrors "github.com/edulearn/cardvault/internal/errors"
)

// PostgreSQLCardRepository implements card envelope persistence for
// PostgreSQL databases.
type PostgreSQLCardRepository struct {
	db *sql.DB
}

// Create inserts a new card envelope into the PostgreSQL database.
func (p *PostgreSQLCardRepository) Create(ctx context.Context, envelope *cardsDomain.CardEnvelope) error {
	query := `INSERT INTO card_envelopes (id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := p.db.ExecContext(
		ctx,
		query,
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
func (p *PostgreSQLCardRepository) Get(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.CardEnvelope, error) {
	query := `SELECT id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at
			  FROM card_envelopes
			  WHERE id = $1 AND deleted_at IS NULL
			  LIMIT 1`

	var envelope cardsDomain.CardEnvelope
	err := p.db.QueryRowContext(ctx, query, cardID).Scan(
		&envelope.ID,
		&envelope.UserID,
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

	return &envelope, nil
}

// ListByUserID retrieves non-deleted card envelopes for a user, newest first,
// with pagination.
func (p *PostgreSQLCardRepository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*cardsDomain.CardEnvelope, error) {
	query := `SELECT id, user_id, encrypted_card_number, card_number_iv, card_number_tag,
			  encrypted_expiry, expiry_iv, expiry_tag, cardholder_name, last_four_digits, card_brand,
			  integrity_hash, created_at, deleted_at
			  FROM card_envelopes
			  WHERE user_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := p.db.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list card envelopes")
	}
	defer func() { _ = rows.Close() }()

	var envelopes []*cardsDomain.CardEnvelope
	for rows.Next() {
		var envelope cardsDomain.CardEnvelope
		err := rows.Scan(
			&envelope.ID,
			&envelope.UserID,
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
		envelopes = append(envelopes, &envelope)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate card envelopes")
	}

	return envelopes, nil
}

// Delete performs a soft delete on a card envelope by setting the DeletedAt
// timestamp.
func (p *PostgreSQLCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	query := `UPDATE card_envelopes
			  SET deleted_at = $1
			  WHERE id = $2 AND deleted_at IS NULL`

	result, err := p.db.ExecContext(ctx, query, time.Now().UTC(), cardID)
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

// NewPostgreSQLCardRepository creates a new PostgreSQL card envelope
// repository instance.
func NewPostgreSQLCardRepository(db *sql.DB) *PostgreSQLCardRepository {
	return &PostgreSQLCardRepository{db: db}
}

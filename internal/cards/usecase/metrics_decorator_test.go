package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	"github.com/edulearn/cardvault/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for
// testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// mockCardUseCase is a mock implementation of CardUseCase for testing the
// decorator.
type mockCardUseCase struct {
	mock.Mock
}

func (m *mockCardUseCase) AddCard(
	ctx context.Context,
	userID uuid.UUID,
	record cardsDomain.CardRecord,
) (*cardsDomain.CardEnvelope, string, error) {
	args := m.Called(ctx, userID, record)
	var envelope *cardsDomain.CardEnvelope
	if args.Get(0) != nil {
		envelope = args.Get(0).(*cardsDomain.CardEnvelope)
	}
	return envelope, args.String(1), args.Error(2)
}

func (m *mockCardUseCase) GetCard(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.CardEnvelope, *cardsDomain.CardData, error) {
	args := m.Called(ctx, cardID)
	var envelope *cardsDomain.CardEnvelope
	if args.Get(0) != nil {
		envelope = args.Get(0).(*cardsDomain.CardEnvelope)
	}
	var data *cardsDomain.CardData
	if args.Get(1) != nil {
		data = args.Get(1).(*cardsDomain.CardData)
	}
	return envelope, data, args.Error(2)
}

func (m *mockCardUseCase) ListCards(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*cardsDomain.CardEnvelope, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardsDomain.CardEnvelope), args.Error(1)
}

func (m *mockCardUseCase) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

var _ CardUseCase = (*mockCardUseCase)(nil)

func TestNewCardUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	decorator := NewCardUseCaseWithMetrics(&mockCardUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*CardUseCase)(nil), decorator)
}

func TestMetricsDecorator_AddCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	record := cardsDomain.CardRecord{CardNumber: "4242424242424242"}

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		expected := &cardsDomain.CardEnvelope{ID: uuid.Must(uuid.NewV7())}
		mockUseCase.On("AddCard", ctx, userID, record).
			Return(expected, "TXN-abc-0123456789abcdef", nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "cards", "card_add", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "cards", "card_add", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

		envelope, transactionID, err := decorator.AddCard(ctx, userID, record)
		require.NoError(t, err)
		assert.Equal(t, expected, envelope)
		assert.Equal(t, "TXN-abc-0123456789abcdef", transactionID)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("AddCard", ctx, userID, record).
			Return(nil, "", errors.New("boom")).
			Once()
		mockMetrics.On("RecordOperation", ctx, "cards", "card_add", "error").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "cards", "card_add", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

		_, _, err := decorator.AddCard(ctx, userID, record)
		require.Error(t, err)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_GetCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cardID := uuid.Must(uuid.NewV7())

	mockUseCase := &mockCardUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	envelope := &cardsDomain.CardEnvelope{ID: cardID}
	data := &cardsDomain.CardData{CardNumber: "4242424242424242", Expiry: "12/25"}
	mockUseCase.On("GetCard", ctx, cardID).Return(envelope, data, nil).Once()
	mockMetrics.On("RecordOperation", ctx, "cards", "card_get", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "cards", "card_get", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

	gotEnvelope, gotData, err := decorator.GetCard(ctx, cardID)
	require.NoError(t, err)
	assert.Equal(t, envelope, gotEnvelope)
	assert.Equal(t, data, gotData)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMetricsDecorator_ListCards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	mockUseCase := &mockCardUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	expected := []*cardsDomain.CardEnvelope{{ID: uuid.Must(uuid.NewV7())}}
	mockUseCase.On("ListCards", ctx, userID, 0, 50).Return(expected, nil).Once()
	mockMetrics.On("RecordOperation", ctx, "cards", "card_list", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "cards", "card_list", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

	envelopes, err := decorator.ListCards(ctx, userID, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, expected, envelopes)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMetricsDecorator_DeleteCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cardID := uuid.Must(uuid.NewV7())

	mockUseCase := &mockCardUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("DeleteCard", ctx, cardID).Return(nil).Once()
	mockMetrics.On("RecordOperation", ctx, "cards", "card_delete", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "cards", "card_delete", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

	require.NoError(t, decorator.DeleteCard(ctx, cardID))
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
	mockRepo "nutriledger/internal/mocks/repository"
	mockService "nutriledger/internal/mocks/service"
	"nutriledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A0000000000000000")

type registerServiceFixtures struct {
	service      *registerService
	txManager    *mockRepo.MockTransactionManager
	registerRepo *mockRepo.MockRegisterRepository
	imageStore   *mockService.MockImageStore
	publisher    *mockService.MockEventPublisher
}

func createTestRegisterService(t *testing.T) registerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	registerRepo := mockRepo.NewMockRegisterRepository(t)
	imageStore := mockService.NewMockImageStore(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc, err := NewRegisterService(RegisterServiceParams{
		TxManager:    txManager,
		RegisterRepo: registerRepo,
		ImageStore:   imageStore,
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	impl := svc.(*registerService)
	impl.now = fixedNow

	return registerServiceFixtures{
		service:      impl,
		txManager:    txManager,
		registerRepo: registerRepo,
		imageStore:   imageStore,
		publisher:    publisher,
	}
}

func TestRegisterService_CreateRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.imageStore.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return bytes.HasPrefix([]byte(key), []byte("registers/"+ownerID.String()+"/")) &&
				bytes.HasSuffix([]byte(key), []byte(".png"))
		}), pngHeader, "image/png").
		Return(nil)
	fx.registerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Register")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAnalysisRequested(ctx, mock.AnythingOfType("*service.AnalysisEvent")).
		Return(nil)

	register, err := fx.service.CreateRegister(ctx, &usecase.CreateRegisterInput{
		OwnerID:     ownerID,
		Image:       pngHeader,
		Description: "  lunch  ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusAnalyzing, register.Status)
	assert.Equal(t, ownerID, register.OwnerID)
	assert.Equal(t, "lunch", register.Description)
	assert.Equal(t, fixedNow(), register.CreatedAt)
	assert.Nil(t, register.Totals)
}

func TestRegisterService_CreateRegister_PublishFailureKeepsRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()

	fx.imageStore.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.registerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAnalysisRequested(ctx, mock.Anything).Return(errors.New("broker down"))

	register, err := fx.service.CreateRegister(ctx, &usecase.CreateRegisterInput{
		OwnerID:     uuid.New(),
		Image:       pngHeader,
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusAnalyzing, register.Status)
}

func TestRegisterService_CreateRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.CreateRegisterInput
		expected error
	}{
		{
			name:     "missing image",
			input:    &usecase.CreateRegisterInput{OwnerID: uuid.New()},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "not an image",
			input:    &usecase.CreateRegisterInput{OwnerID: uuid.New(), Image: []byte("plain text body")},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "too large",
			input:    &usecase.CreateRegisterInput{OwnerID: uuid.New(), Image: make([]byte, 2<<20)},
			expected: domainerrors.ErrImageTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRegisterService(t)

			_, err := fx.service.CreateRegister(context.Background(), tt.input)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestRegisterService_GetRegister(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	register := analyzingRegister(ownerID)

	t.Run("owner", func(t *testing.T) {
		fx := createTestRegisterService(t)
		fx.registerRepo.EXPECT().FindByID(ctx, register.ID).Return(register, nil)

		got, err := fx.service.GetRegister(ctx, ownerID, register.ID)
		require.NoError(t, err)
		assert.Equal(t, register, got)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestRegisterService(t)
		fx.registerRepo.EXPECT().FindByID(ctx, register.ID).Return(register, nil)

		_, err := fx.service.GetRegister(ctx, uuid.New(), register.ID)
		assert.ErrorIs(t, err, domainerrors.ErrRegisterForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestRegisterService(t)
		fx.registerRepo.EXPECT().FindByID(ctx, register.ID).Return(nil, repository.ErrRegisterNotFound)

		_, err := fx.service.GetRegister(ctx, ownerID, register.ID)
		assert.ErrorIs(t, err, domainerrors.ErrRegisterNotFound)
	})
}

func TestRegisterService_ListRegisters(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	registers := []*entity.Register{analyzingRegister(ownerID)}

	fx.registerRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.RegisterQuery) bool {
			return q.OwnerID == ownerID &&
				q.From.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)) &&
				q.To.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) &&
				len(q.Statuses) == 0
		})).
		Return(registers, nil)

	got, err := fx.service.ListRegisters(ctx, ownerID, period.Named(period.TokenYesterday))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRegisterService_DeleteRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := completedRegister(t, ownerID, fixedNow(), 500)

	fx.registerRepo.EXPECT().FindByID(ctx, register.ID).Return(register, nil)
	fx.registerRepo.EXPECT().Delete(ctx, register.ID).Return(nil)
	// image cleanup is best effort
	fx.imageStore.EXPECT().Delete(ctx, register.ImageRef).Return(errors.New("bucket unavailable"))

	require.NoError(t, fx.service.DeleteRegister(ctx, ownerID, register.ID))
}

func TestRegisterService_ConfirmRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := analyzingRegister(ownerID)
	candidates := []entity.FoodItem{{Name: "soup", Quantity: 300, Unit: "ml", Calories: 180, Confidence: ptr(0.3)}}
	require.NoError(t, register.MarkForReview(candidates, "soup", "low confidence", fixedNow()))

	passthroughTx(t, fx.txManager, fx.registerRepo)
	fx.registerRepo.EXPECT().FindByIDForUpdate(ctx, register.ID).Return(register, nil)
	fx.registerRepo.EXPECT().
		SaveTransition(ctx, mock.MatchedBy(func(r *entity.Register) bool {
			return r.Status == entity.RegisterStatusCompleted
		}), entity.RegisterStatusReviewing).
		Return(nil)

	got, err := fx.service.ConfirmRegister(ctx, ownerID, register.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusCompleted, got.Status)
	require.NotNil(t, got.Totals)
	assert.InDelta(t, 180, got.Totals.Calories, 1e-9)
	assert.InDelta(t, 300, got.Totals.EstimatedWeight, 1e-9)
}

func TestRegisterService_ConfirmRegister_WithEditedItems(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := analyzingRegister(ownerID)
	require.NoError(t, register.MarkForReview([]entity.FoodItem{{Name: "?", Calories: 50}}, "", "missing confidence", fixedNow()))
	edited := []entity.FoodItem{{Name: "apple", Quantity: 150, Unit: "g", Calories: 78}}

	passthroughTx(t, fx.txManager, fx.registerRepo)
	fx.registerRepo.EXPECT().FindByIDForUpdate(ctx, register.ID).Return(register, nil)
	fx.registerRepo.EXPECT().SaveTransition(ctx, mock.Anything, entity.RegisterStatusReviewing).Return(nil)

	got, err := fx.service.ConfirmRegister(ctx, ownerID, register.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, "apple", got.FoodItems[0].Name)
	assert.InDelta(t, 78, got.Totals.Calories, 1e-9)
}

func TestRegisterService_ConfirmRegister_TerminalRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := completedRegister(t, ownerID, fixedNow(), 400)

	passthroughTx(t, fx.txManager, fx.registerRepo)
	fx.registerRepo.EXPECT().FindByIDForUpdate(ctx, register.ID).Return(register, nil)

	_, err := fx.service.ConfirmRegister(ctx, ownerID, register.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, entity.RegisterStatusCompleted, register.Status)
}

func TestRegisterService_RejectRegister(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := analyzingRegister(ownerID)
	require.NoError(t, register.MarkForReview([]entity.FoodItem{{Name: "?", Calories: 50}}, "", "missing confidence", fixedNow()))

	passthroughTx(t, fx.txManager, fx.registerRepo)
	fx.registerRepo.EXPECT().FindByIDForUpdate(ctx, register.ID).Return(register, nil)
	fx.registerRepo.EXPECT().SaveTransition(ctx, mock.Anything, entity.RegisterStatusReviewing).Return(nil)

	got, err := fx.service.RejectRegister(ctx, ownerID, register.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusFailed, got.Status)
	assert.Equal(t, reasonRejectedByUser, got.FailureReason)
}

func TestRegisterService_RejectRegister_StaleTransition(t *testing.T) {
	fx := createTestRegisterService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	register := analyzingRegister(ownerID)
	require.NoError(t, register.MarkForReview([]entity.FoodItem{{Name: "?", Calories: 50}}, "", "", fixedNow()))

	passthroughTx(t, fx.txManager, fx.registerRepo)
	fx.registerRepo.EXPECT().FindByIDForUpdate(ctx, register.ID).Return(register, nil)
	fx.registerRepo.EXPECT().SaveTransition(ctx, mock.Anything, entity.RegisterStatusReviewing).Return(repository.ErrStaleTransition)

	_, err := fx.service.RejectRegister(ctx, ownerID, register.ID, "wrong plate")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

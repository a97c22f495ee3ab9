package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nutriledger/config"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/repository"
	mockRepo "nutriledger/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Ledger:  &config.LedgerConfig{Timezone: "UTC", ReviewConfidenceThreshold: 0.5},
		Gemini:  &config.GeminiConfig{Timeout: time.Second},
		Storage: &config.StorageConfig{MaxImageBytes: 1 << 20},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func completedRegister(t *testing.T, owner uuid.UUID, at time.Time, calories float64) *entity.Register {
	t.Helper()

	r := entity.NewRegister(owner, "registers/img.jpg", "", at)
	items := []entity.FoodItem{{Name: "meal", Quantity: 100, Unit: "g", Calories: calories, Protein: 10, Confidence: ptr(0.9)}}
	require.NoError(t, r.Complete(items, "", at))

	return r
}

func analyzingRegister(owner uuid.UUID) *entity.Register {
	return entity.NewRegister(owner, "registers/img.jpg", "lunch", fixedNow().Add(-time.Minute))
}

// passthroughTx makes the transaction manager run the callback against repo.
func passthroughTx(t *testing.T, txManager *mockRepo.MockTransactionManager, registerRepo repository.RegisterRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRegisterRepository().Return(registerRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

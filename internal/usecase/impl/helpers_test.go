package impl

import (
	"io"
	"log/slog"
	"time"

	"folio/config"
	mockRepo "folio/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			TokenTTL:          24 * time.Hour,
			MaxFailedAttempts: 5,
			LockDuration:      30 * time.Minute,
		},
		Upload: &config.UploadConfig{
			Provider:        config.UploadProviderFile,
			ImageMaxSize:    "5MiB",
			DocumentMaxSize: "10MiB",
		},
		Analytics: &config.AnalyticsConfig{
			Retention:         90 * 24 * time.Hour,
			SummaryCacheTTL:   5 * time.Minute,
			SummaryWindowDays: 30,
			TopN:              5,
			MaxTextLength:     500,
		},
	}
}

func newTxManager(factory *mockRepo.RepositoryFactory) *mockRepo.TransactionManager {
	return &mockRepo.TransactionManager{Factory: factory}
}

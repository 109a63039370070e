//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotta/translate-service/internal/domain/model"
)

func TestCredentialsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCredentialsRepository(db)

	t.Run("miss returns nil without error", func(t *testing.T) {
		cred, err := repo.Credential(ctx, "nobody", model.ProviderOpenAI)
		require.NoError(t, err)
		assert.Nil(t, cred)
	})

	t.Run("store then read", func(t *testing.T) {
		err := repo.Store(ctx, "user-1", model.ProviderOpenAI, "sk-abc")
		require.NoError(t, err)

		cred, err := repo.Credential(ctx, "user-1", model.ProviderOpenAI)
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, "sk-abc", cred.Secret)
		assert.Equal(t, model.ScopeUser, cred.Scope)
		assert.Equal(t, model.ProviderOpenAI, cred.Provider)
	})

	t.Run("store replaces existing secret", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, "user-2", model.ProviderGemini, "old"))
		require.NoError(t, repo.Store(ctx, "user-2", model.ProviderGemini, "new"))

		cred, err := repo.Credential(ctx, "user-2", model.ProviderGemini)
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, "new", cred.Secret)
	})

	t.Run("providers are isolated per user", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, "user-3", model.ProviderOpenAI, "sk-openai"))

		cred, err := repo.Credential(ctx, "user-3", model.ProviderGemini)
		require.NoError(t, err)
		assert.Nil(t, cred)
	})

	t.Run("delete removes the secret", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, "user-4", model.ProviderOpenAI, "sk-gone"))
		require.NoError(t, repo.Delete(ctx, "user-4", model.ProviderOpenAI))

		cred, err := repo.Credential(ctx, "user-4", model.ProviderOpenAI)
		require.NoError(t, err)
		assert.Nil(t, cred)
	})
}

func TestUsageRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewUsageRepository(db)

	t.Run("insert assigns id and timestamp", func(t *testing.T) {
		record := &model.UsageRecord{
			UserID:   "user-1",
			Kind:     model.UsageKindTranslation,
			Provider: "openai",
			Volume:   42,
		}

		err := repo.Insert(ctx, record)
		require.NoError(t, err)
		assert.False(t, record.ID.IsZero())
		assert.False(t, record.Timestamp.IsZero())
	})

	t.Run("for user returns newest first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Insert(ctx, &model.UsageRecord{
				UserID:   "user-2",
				Kind:     model.UsageKindSpeech,
				Provider: "gemini",
				Volume:   i,
			}))
		}

		records, err := repo.ForUser(ctx, "user-2", 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
		for _, r := range records {
			assert.Equal(t, "user-2", r.UserID)
		}
	})
}

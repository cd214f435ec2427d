package checks

import (
	"context"
	"errors"
	"testing"

	"catalog-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("No storage", func(t *testing.T) {
		report, err := CheckBucket(ctx, nil, "catalog", "", false, logger)
		require.NoError(t, err)
		assert.Equal(t, BucketSkipped, report.Status)
	})

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

		report, err := CheckBucket(ctx, client, "catalog", "", false, logger)
		require.NoError(t, err)
		assert.Equal(t, BucketOK, report.Status)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)

		report, err := CheckBucket(ctx, client, "catalog", "", false, logger)
		require.NoError(t, err)
		assert.Equal(t, BucketMissing, report.Status)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fix creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "catalog", mock.Anything).Return(nil)

		report, err := CheckBucket(ctx, client, "catalog", "eu-west-1", true, logger)
		require.NoError(t, err)
		assert.Equal(t, BucketCreated, report.Status)
		client.AssertExpectations(t)
	})

	t.Run("Check fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, errors.New("timeout"))

		_, err := CheckBucket(ctx, client, "catalog", "", false, logger)
		assert.ErrorContains(t, err, "timeout")
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/ports"
	portsmocks "github.com/livingtree/prpcheck/internal/ports/mocks"
)

func TestHistoryList_PassesFilter(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)

	filter := ports.RunFilter{PRPPath: "PRPs/a.md", InvalidOnly: true, Limit: 5}
	reader.EXPECT().List(mock.Anything, filter).
		Return([]domain.ValidationRun{{ID: "1"}, {ID: "2"}}, nil)

	service := NewHistoryService(reader, pruner)

	runs, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestHistoryList_RejectsInvertedRange(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)

	service := NewHistoryService(reader, pruner)
	now := time.Now()

	_, err := service.List(context.Background(), ports.RunFilter{From: now, To: now.Add(-time.Hour)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "before --from")
}

func TestHistoryList_WrapsReaderError(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error"))

	service := NewHistoryService(reader, pruner)

	_, err := service.List(context.Background(), ports.RunFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list validation runs")
}

func TestHistoryGet_NotFound(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)
	reader.EXPECT().Get(mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: nope", domain.ErrRunNotFound))

	service := NewHistoryService(reader, pruner)

	_, err := service.Get(context.Background(), "nope")

	assert.True(t, errors.Is(err, domain.ErrRunNotFound))
}

func TestHistoryPrune_ComputesCutoff(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)

	start := time.Now()
	pruner.EXPECT().Prune(mock.Anything, mock.MatchedBy(func(before time.Time) bool {
		expected := start.Add(-48 * time.Hour)
		return !before.Before(expected) && before.Before(expected.Add(time.Minute))
	})).Return(int64(3), nil)

	service := NewHistoryService(reader, pruner)

	deleted, err := service.Prune(context.Background(), RetentionPeriod(2))

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestHistoryPrune_RejectsNonPositive(t *testing.T) {
	reader := portsmocks.NewMockRunReader(t)
	pruner := portsmocks.NewMockRunPruner(t)

	service := NewHistoryService(reader, pruner)

	_, err := service.Prune(context.Background(), 0)

	require.Error(t, err)
}

package scheduler

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apimocks "vocab_learn_client/internal/api/mocks"
	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/outbox"
	outboxmocks "vocab_learn_client/internal/outbox/mocks"
	"vocab_learn_client/internal/service"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_FlushOutbox(t *testing.T) {
	obMock := new(outboxmocks.Outbox)
	apiMock := new(apimocks.VocabularyAPI)
	flusher := outbox.NewFlusher(obMock, apiMock, 0, newTestLogger())

	cmd := model.ProgressCommand{
		CommandID: uuid.New(),
		WordID:    uuid.New(),
		Status:    model.StatusMastered,
	}
	obMock.On("Pending", mock.Anything, 0).Return([]model.ProgressCommand{cmd}, nil).Once()
	apiMock.On("UpdateProgress", mock.Anything, cmd.WordID, cmd.Request()).
		Return(&model.WordProgress{WordID: cmd.WordID, Status: model.StatusMastered}, nil).Once()
	obMock.On("MarkDelivered", mock.Anything, cmd.CommandID).Return(nil).Once()

	s := New(flusher, nil, newTestLogger())
	s.flushOutbox()

	obMock.AssertExpectations(t)
	apiMock.AssertExpectations(t)
}

func TestScheduler_RefreshSummary(t *testing.T) {
	apiMock := new(apimocks.AnalyticsAPI)
	apiMock.On("ProgressSummary", mock.Anything).
		Return(&model.ProgressSummary{TotalWords: 3}, nil).Once()

	s := New(nil, service.NewAnalyticsService(apiMock, newTestLogger()), newTestLogger())
	s.refreshSummary()

	apiMock.AssertExpectations(t)
}

func TestScheduler_StartRegistersJobs(t *testing.T) {
	obMock := new(outboxmocks.Outbox)
	apiMock := new(apimocks.VocabularyAPI)
	flusher := outbox.NewFlusher(obMock, apiMock, 0, newTestLogger())
	analytics := service.NewAnalyticsService(new(apimocks.AnalyticsAPI), newTestLogger())

	s := New(flusher, analytics, newTestLogger())
	require.NoError(t, s.Start(time.Hour, time.Hour))
	defer s.Stop()

	assert.Equal(t, 2, s.scheduler.Len())
}

func TestScheduler_StartWithoutAnalytics(t *testing.T) {
	obMock := new(outboxmocks.Outbox)
	apiMock := new(apimocks.VocabularyAPI)
	flusher := outbox.NewFlusher(obMock, apiMock, 0, newTestLogger())

	s := New(flusher, nil, newTestLogger())
	require.NoError(t, s.Start(time.Hour, time.Hour))
	defer s.Stop()

	assert.Equal(t, 1, s.scheduler.Len())
}

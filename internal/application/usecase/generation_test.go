package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/slidegen/internal/domain/deck"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req deck.Request) (deck.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(deck.Result)
	return result, args.Error(1)
}

type panickingGenerator struct{}

func (panickingGenerator) Generate(context.Context, deck.Request) (deck.Result, error) {
	panic("transport exploded")
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, attempt deck.Attempt) (deck.Attempt, error) {
	args := m.Called(ctx, attempt)
	return attempt, args.Error(0)
}

func fixedClock() func() time.Time {
	t := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

var sampleRequest = deck.Request{Topic: "Artificial Intelligence", Template: deck.Minimalistic}

func TestGenerationService_Disabled(t *testing.T) {
	var nilSvc *GenerationService
	_, err := nilSvc.Generate(context.Background(), sampleRequest)
	require.ErrorIs(t, err, ErrGenerationDisabled)
	require.False(t, nilSvc.Enabled())

	svc := NewGenerationService(nil, nil, nil, nil)
	_, err = svc.Generate(context.Background(), sampleRequest)
	require.ErrorIs(t, err, ErrGenerationDisabled)
}

func TestGenerationService_Generate(t *testing.T) {
	tests := []struct {
		name        string
		result      deck.Result
		err         error
		wantOutcome deck.Outcome
		wantLevel   zapcore.Level
		wantLog     string
	}{
		{
			name:        "confirmed",
			result:      deck.Result{Message: deck.SuccessMessage},
			wantOutcome: deck.Succeeded,
			wantLevel:   zapcore.InfoLevel,
			wantLog:     "generation response",
		},
		{
			name:        "other message",
			result:      deck.Result{Message: "something else"},
			wantOutcome: deck.Unconfirmed,
			wantLevel:   zapcore.InfoLevel,
			wantLog:     "generation finished without confirmation",
		},
		{
			name:        "service failure",
			err:         errors.New("connection refused"),
			wantOutcome: deck.Failed,
			wantLevel:   zapcore.ErrorLevel,
			wantLog:     "error creating presentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			gen := &mockGenerator{}
			rec := &mockRecorder{}
			svc := NewGenerationService(gen, rec, zap.New(core), fixedClock())

			gen.On("Generate", mock.Anything, sampleRequest).Return(tt.result, tt.err).Once()
			rec.On("Record", mock.Anything, mock.MatchedBy(func(a deck.Attempt) bool {
				return a.Request == sampleRequest && a.Outcome == tt.wantOutcome && a.Duration() == time.Second
			})).Return(nil).Once()

			got, err := svc.Generate(context.Background(), sampleRequest)
			require.Equal(t, tt.err, err)
			require.Equal(t, tt.result, got)

			entries := logs.FilterMessage(tt.wantLog).All()
			require.Len(t, entries, 1)
			require.Equal(t, tt.wantLevel, entries[0].Level)

			gen.AssertExpectations(t)
			rec.AssertExpectations(t)
		})
	}
}

func TestGenerationService_RecoversPanic(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.MatchedBy(func(a deck.Attempt) bool {
		return a.Outcome == deck.Failed && a.Error != ""
	})).Return(nil).Once()
	svc := NewGenerationService(panickingGenerator{}, rec, nil, fixedClock())

	result, err := svc.Generate(context.Background(), sampleRequest)
	require.Error(t, err)
	require.Contains(t, err.Error(), "transport exploded")
	require.Equal(t, deck.Result{}, result)
	rec.AssertExpectations(t)
}

func TestGenerationService_RecorderFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gen := &mockGenerator{}
	rec := &mockRecorder{}
	svc := NewGenerationService(gen, rec, zap.New(core), nil)

	gen.On("Generate", mock.Anything, sampleRequest).Return(deck.Result{Message: deck.SuccessMessage}, nil).Once()
	rec.On("Record", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	result, err := svc.Generate(context.Background(), sampleRequest)
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	require.Equal(t, 1, logs.FilterMessage("failed to record attempt").Len())
}

func TestGenerationService_RecordsAfterCancel(t *testing.T) {
	gen := &mockGenerator{}
	rec := &mockRecorder{}
	svc := NewGenerationService(gen, rec, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen.On("Generate", mock.Anything, sampleRequest).Return(deck.Result{}, context.Canceled).Once()
	rec.On("Record", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return(nil).Once()

	_, err := svc.Generate(ctx, sampleRequest)
	require.ErrorIs(t, err, context.Canceled)
	rec.AssertExpectations(t)
}

package legacy

import (
	"context"
	"errors"
	"eventers-legacy-adapter/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubGetEventInfo(t *testing.T) {
	le, err := NewStub().GetEventInfo(context.Background())
	require.NoError(t, err)
	require.NotNil(t, le)

	assert.Equal(t, "Concierto de Jazz Clásico", *le.Title)
	assert.Equal(t, "15/05/2024", *le.Date)
	assert.Equal(t, "Teatro Principal", *le.Location)
	assert.Equal(t, int64(300), le.TotalCapacity.Int64())
	assert.Equal(t, int64(75), le.AvailableTickets.Int64())
	assert.Equal(t, "Un concierto único con los mejores músicos de jazz.", *le.Details)
}

func TestStubReturnsIndependentCopies(t *testing.T) {
	s := NewStub()

	first, err := s.GetEventInfo(context.Background())
	require.NoError(t, err)
	*first.Title = "changed"
	*first.TotalCapacity = 1

	second, err := s.GetEventInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Concierto de Jazz Clásico", *second.Title)
	assert.Equal(t, int64(300), second.TotalCapacity.Int64())
}

func TestSystemFunc(t *testing.T) {
	want := errors.New("unavailable")
	var s System = SystemFunc(func(ctx context.Context) (*model.LegacyEvent, error) {
		return nil, want
	})

	le, err := s.GetEventInfo(context.Background())
	assert.Nil(t, le)
	assert.Equal(t, want, err)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"eventers-legacy-adapter/adapter"
	"eventers-legacy-adapter/legacy"
	"eventers-legacy-adapter/logger"
	"eventers-legacy-adapter/model"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEvent(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printEvent(context.Background(), &out, adapter.New(legacy.NewStub())))

	header := "Event details in modern format:\n"
	require.True(t, strings.HasPrefix(out.String(), header))

	var event model.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(out.String(), header)), &event))
	assert.Equal(t, "2024-05-15", event.EventDate)
	assert.Equal(t, int64(225), event.TicketsSold)
}

func TestPrintEventFailure(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	service := adapter.New(legacy.SystemFunc(func(ctx context.Context) (*model.LegacyEvent, error) {
		return &model.LegacyEvent{}, nil
	}))

	var out bytes.Buffer
	err := printEvent(context.Background(), &out, service)
	assert.True(t, errors.Is(err, adapter.ErrMissingField))
	assert.Empty(t, out.String())
}

package renewly_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// stubSubscriptions implements renewly.SubscriptionsClient with canned
// behavior for batch tests.
type stubSubscriptions struct {
	renewly.SubscriptionsClient

	calls  atomic.Int64
	getErr error
}

func (s *stubSubscriptions) Get(ctx context.Context, id string) (*renewly.Subscription, error) {
	s.calls.Add(1)

	if s.getErr != nil {
		return nil, s.getErr
	}

	sub := &renewly.Subscription{}
	sub.ID = id

	return sub, nil
}

func (s *stubSubscriptions) Delete(ctx context.Context, id string) error {
	s.calls.Add(1)

	return nil
}

// stubClient satisfies renewly.Client for the resources batch tests touch.
type stubClient struct {
	renewly.Client

	subscriptions *stubSubscriptions
}

func (s *stubClient) Subscriptions() renewly.SubscriptionsClient {
	return s.subscriptions
}

func TestBatchExecutor_Execute(t *testing.T) {
	subs := &stubSubscriptions{}
	executor := renewly.NewBatchExecutor(&stubClient{subscriptions: subs}, 3)

	operations := []renewly.BatchOperation{
		{ID: "op-1", Type: "get", Resource: "subscription", Data: "sub-1"},
		{ID: "op-2", Type: "get", Resource: "subscription", Data: "sub-2"},
		{ID: "op-3", Type: "delete", Resource: "subscription", Data: "sub-3"},
	}

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results come back in operation order regardless of completion order.
	assert.Equal(t, "op-1", results[0].ID)
	assert.Equal(t, "op-3", results[2].ID)

	for _, result := range results[:2] {
		assert.True(t, result.Success)
		require.IsType(t, &renewly.Subscription{}, result.Data)
	}

	assert.True(t, results[2].Success)
	assert.Equal(t, int64(3), subs.calls.Load())
}

func TestBatchExecutor_OperationFailureIsolated(t *testing.T) {
	boom := errors.New("boom")
	subs := &stubSubscriptions{getErr: boom}
	executor := renewly.NewBatchExecutor(&stubClient{subscriptions: subs}, 2)

	results, err := executor.Execute(context.Background(), []renewly.BatchOperation{
		{ID: "op-1", Type: "get", Resource: "subscription", Data: "sub-1"},
		{ID: "op-2", Type: "delete", Resource: "subscription", Data: "sub-2"},
	})
	require.NoError(t, err)

	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, boom)
	assert.True(t, results[1].Success)
}

func TestBatchExecutor_UnsupportedResource(t *testing.T) {
	executor := renewly.NewBatchExecutor(&stubClient{}, 1)

	results, err := executor.Execute(context.Background(), []renewly.BatchOperation{
		{ID: "op-1", Type: "get", Resource: "charge", Data: "ch-1"},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Error, renewly.ErrUnsupportedBatchResource)
}

func TestBatchExecutor_UnsupportedOperation(t *testing.T) {
	subs := &stubSubscriptions{}
	executor := renewly.NewBatchExecutor(&stubClient{subscriptions: subs}, 1)

	results, err := executor.Execute(context.Background(), []renewly.BatchOperation{
		{ID: "op-1", Type: "upsert", Resource: "subscription", Data: "sub-1"},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Error, renewly.ErrUnsupportedBatchOperation)
}

func TestBatchExecutor_InvalidData(t *testing.T) {
	subs := &stubSubscriptions{}
	executor := renewly.NewBatchExecutor(&stubClient{subscriptions: subs}, 1)

	results, err := executor.Execute(context.Background(), []renewly.BatchOperation{
		{ID: "op-1", Type: "get", Resource: "subscription", Data: 42},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Error, renewly.ErrInvalidBatchData)
}

func TestBatchExecutor_Callback(t *testing.T) {
	subs := &stubSubscriptions{}
	executor := renewly.NewBatchExecutor(&stubClient{subscriptions: subs}, 1)

	var callbackID string

	_, err := executor.Execute(context.Background(), []renewly.BatchOperation{
		{
			ID:       "op-1",
			Type:     "get",
			Resource: "subscription",
			Data:     "sub-1",
			Callback: func(result *renewly.BatchResult) {
				callbackID = result.ID
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "op-1", callbackID)
}

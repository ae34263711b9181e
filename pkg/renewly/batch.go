package renewly

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Static errors for batch execution.
var (
	ErrUnsupportedBatchResource  = errors.New("unsupported batch resource")
	ErrUnsupportedBatchOperation = errors.New("unsupported batch operation")
	ErrInvalidBatchData          = errors.New("invalid data type for batch operation")
)

// UpdateData pairs an update request with the ID it targets.
type UpdateData[T any] struct {
	ID      string
	Request *T
}

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "get"
	Resource string // "subscription", "customer", "discount", "address"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs batches of independent operations with bounded
// concurrency. It exists for merchant tooling that needs to reconcile many
// subscriptions or customers at once; results come back in operation order.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = 5
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     30 * time.Second,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// crudFuncs bundles the four operation closures for one resource.
type crudFuncs struct {
	create func(ctx context.Context, op BatchOperation) (interface{}, error)
	update func(ctx context.Context, op BatchOperation) (interface{}, error)
	del    func(ctx context.Context, op BatchOperation) (interface{}, error)
	get    func(ctx context.Context, op BatchOperation) (interface{}, error)
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	var funcs crudFuncs

	switch operation.Resource {
	case "subscription":
		funcs = subscriptionCrudFuncs(b.client.Subscriptions())
	case "customer":
		funcs = customerCrudFuncs(b.client.Customers())
	case "discount":
		funcs = discountCrudFuncs(b.client.Discounts())
	case "address":
		funcs = addressCrudFuncs(b.client.Addresses())
	default:
		return &BatchResult{
			ID:    operation.ID,
			Error: fmt.Errorf("%w: %s", ErrUnsupportedBatchResource, operation.Resource),
		}
	}

	return runCrudOperation(ctx, operation, funcs)
}

func runCrudOperation(ctx context.Context, operation BatchOperation, funcs crudFuncs) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	var (
		data interface{}
		err  error
	)

	switch operation.Type {
	case "create":
		data, err = funcs.create(ctx, operation)
	case "update":
		data, err = funcs.update(ctx, operation)
	case "delete":
		data, err = funcs.del(ctx, operation)
	case "get":
		data, err = funcs.get(ctx, operation)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedBatchOperation, operation.Type)
	}

	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

func subscriptionCrudFuncs(client SubscriptionsClient) crudFuncs {
	return crudFuncs{
		create: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if req, ok := op.Data.(*SubscriptionCreateRequest); ok {
				return client.Create(ctx, req)
			}

			return nil, fmt.Errorf("%w: subscription create", ErrInvalidBatchData)
		},
		update: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if data, ok := op.Data.(*UpdateData[SubscriptionUpdateRequest]); ok {
				return client.Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w: subscription update", ErrInvalidBatchData)
		},
		del: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return nil, client.Delete(ctx, id)
			}

			return nil, fmt.Errorf("%w: subscription delete", ErrInvalidBatchData)
		},
		get: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return client.Get(ctx, id)
			}

			return nil, fmt.Errorf("%w: subscription get", ErrInvalidBatchData)
		},
	}
}

func customerCrudFuncs(client CustomersClient) crudFuncs {
	return crudFuncs{
		create: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if req, ok := op.Data.(*CustomerCreateRequest); ok {
				return client.Create(ctx, req)
			}

			return nil, fmt.Errorf("%w: customer create", ErrInvalidBatchData)
		},
		update: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if data, ok := op.Data.(*UpdateData[CustomerUpdateRequest]); ok {
				return client.Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w: customer update", ErrInvalidBatchData)
		},
		del: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return nil, client.Delete(ctx, id)
			}

			return nil, fmt.Errorf("%w: customer delete", ErrInvalidBatchData)
		},
		get: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return client.Get(ctx, id)
			}

			return nil, fmt.Errorf("%w: customer get", ErrInvalidBatchData)
		},
	}
}

func discountCrudFuncs(client DiscountsClient) crudFuncs {
	return crudFuncs{
		create: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if req, ok := op.Data.(*DiscountCreateRequest); ok {
				return client.Create(ctx, req)
			}

			return nil, fmt.Errorf("%w: discount create", ErrInvalidBatchData)
		},
		update: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if data, ok := op.Data.(*UpdateData[DiscountUpdateRequest]); ok {
				return client.Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w: discount update", ErrInvalidBatchData)
		},
		del: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return nil, client.Delete(ctx, id)
			}

			return nil, fmt.Errorf("%w: discount delete", ErrInvalidBatchData)
		},
		get: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return client.Get(ctx, id)
			}

			return nil, fmt.Errorf("%w: discount get", ErrInvalidBatchData)
		},
	}
}

func addressCrudFuncs(client AddressesClient) crudFuncs {
	return crudFuncs{
		create: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if req, ok := op.Data.(*AddressCreateRequest); ok {
				return client.Create(ctx, req)
			}

			return nil, fmt.Errorf("%w: address create", ErrInvalidBatchData)
		},
		update: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if data, ok := op.Data.(*UpdateData[AddressUpdateRequest]); ok {
				return client.Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w: address update", ErrInvalidBatchData)
		},
		del: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return nil, client.Delete(ctx, id)
			}

			return nil, fmt.Errorf("%w: address delete", ErrInvalidBatchData)
		},
		get: func(ctx context.Context, op BatchOperation) (interface{}, error) {
			if id, ok := op.Data.(string); ok {
				return client.Get(ctx, id)
			}

			return nil, fmt.Errorf("%w: address get", ErrInvalidBatchData)
		},
	}
}

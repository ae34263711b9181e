package renewly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrInvalidChunkSize is returned by Chunk for sizes below one.
var ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

// RawResponse is the result of one HTTP exchange as the pagination engine
// sees it: the decoded JSON body and the full response headers. It lives for
// one page fetch; nothing retains it beyond cursor and item extraction.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       map[string]json.RawMessage
}

// DecodeRawBody decodes a response body into the field mapping used by the
// pagination engine. An empty or undecodable body yields an empty mapping,
// not an error: several endpoints legitimately return nothing.
func DecodeRawBody(data []byte) map[string]json.RawMessage {
	body := make(map[string]json.RawMessage)
	if len(data) == 0 {
		return body
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return make(map[string]json.RawMessage)
	}

	return body
}

// PageFetcher is the dispatch capability a Paginator drives: one header-aware
// GET per page, plus the active API version, read fresh on every page
// boundary. Switching the client's version mid-traversal therefore changes
// the cursor extraction rule for the pages that follow.
type PageFetcher interface {
	FetchPage(ctx context.Context, endpoint string, query url.Values) (*RawResponse, error)
	ActiveVersion() APIVersion
}

// Paginator is a lazy view over a multi-page remote collection. Constructing
// one performs no I/O; requests are issued page by page as items are pulled,
// and the traversal stops as soon as the server returns no next cursor.
//
// Every derived operation (All, First, Take, Chunk, Count, IsEmpty, Each) and
// every Iter call starts a fresh traversal from the original query
// parameters; traversal state is never shared between them.
//
// Any dispatch failure propagates to the consumer unchanged: no retries, no
// partial-result suppression.
type Paginator[T any] struct {
	fetcher   PageFetcher
	endpoint  string
	itemsKey  string
	params    url.Values
	transform func(json.RawMessage) (T, error)
}

// NewPaginator builds a paginator whose items are decoded straight into T.
func NewPaginator[T any](fetcher PageFetcher, endpoint, itemsKey string, params url.Values) *Paginator[T] {
	return NewTransformPaginator[T](fetcher, endpoint, itemsKey, params, nil)
}

// NewTransformPaginator builds a paginator with a per-item transform. A nil
// transform defaults to decoding each raw item into T.
func NewTransformPaginator[T any](
	fetcher PageFetcher,
	endpoint, itemsKey string,
	params url.Values,
	transform func(json.RawMessage) (T, error),
) *Paginator[T] {
	if transform == nil {
		transform = func(raw json.RawMessage) (T, error) {
			var item T

			err := json.Unmarshal(raw, &item)
			if err != nil {
				return item, fmt.Errorf("decoding %s item: %w", itemsKey, err)
			}

			return item, nil
		}
	}

	return &Paginator[T]{
		fetcher:   fetcher,
		endpoint:  endpoint,
		itemsKey:  itemsKey,
		params:    params,
		transform: transform,
	}
}

// Iter starts a fresh traversal from the original query parameters.
func (p *Paginator[T]) Iter() *Iterator[T] {
	working := url.Values{}
	for key, values := range p.params {
		working[key] = append([]string(nil), values...)
	}

	return &Iterator[T]{
		paginator: p,
		params:    working,
		hasMore:   true,
	}
}

// All drains the sequence into a slice. For large remote collections this
// may issue an unbounded number of requests.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	it := p.Iter()
	for it.HasNext() {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// First consumes at most one item from a fresh traversal, returning nil when
// the sequence is immediately exhausted.
func (p *Paginator[T]) First(ctx context.Context) (*T, error) {
	it := p.Iter()

	item, err := it.Next(ctx)
	if err != nil {
		if errors.Is(err, ErrNoMoreItems) {
			return nil, nil
		}

		return nil, err
	}

	return &item, nil
}

// Take collects up to n items. It stops requesting pages as soon as n items
// have been yielded, never fetching beyond the page that satisfies the bound.
func (p *Paginator[T]) Take(ctx context.Context, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	items := make([]T, 0, n)

	it := p.Iter()
	for len(items) < n {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// Chunk drains the sequence into fixed-size groups, emitting a final partial
// group when the sequence ends mid-group.
func (p *Paginator[T]) Chunk(ctx context.Context, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidChunkSize
	}

	items, err := p.All(ctx)
	if err != nil {
		return nil, err
	}

	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		chunks = append(chunks, items[start:end])
	}

	return chunks, nil
}

// Count drains the sequence and counts. Expensive by design: no server-side
// count is assumed available through this path.
func (p *Paginator[T]) Count(ctx context.Context) (int, error) {
	count := 0

	it := p.Iter()
	for {
		_, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return count, nil
			}

			return 0, err
		}

		count++
	}
}

// IsEmpty reports whether a fresh traversal yields no items.
func (p *Paginator[T]) IsEmpty(ctx context.Context) (bool, error) {
	first, err := p.First(ctx)
	if err != nil {
		return false, err
	}

	return first == nil, nil
}

// Each applies fn to every item in yield order. An error from fn stops the
// traversal and is returned; no further pages are fetched.
func (p *Paginator[T]) Each(ctx context.Context, fn func(T) error) error {
	it := p.Iter()
	for {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// PageResult carries one page of a streamed traversal.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// Stream fetches pages sequentially and delivers each as a whole on the
// returned channel. The channel is closed after the final page or the first
// error; cancel ctx to stop early.
func (p *Paginator[T]) Stream(ctx context.Context) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		it := p.Iter()
		for it.HasNext() {
			page, err := it.nextPage(ctx)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// Iterator is one traversal of a Paginator. It owns a working copy of the
// query parameters (the cursor advances in it) and buffers at most one page.
// Not safe for concurrent use.
type Iterator[T any] struct {
	paginator *Paginator[T]
	params    url.Values
	buffer    []T
	pos       int
	hasMore   bool
}

// HasNext reports whether another item may be available. It performs no I/O:
// before the first fetch, and whenever the last page carried a next cursor,
// it returns true even if the following fetch turns out to yield nothing.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < len(it.buffer) || it.hasMore
}

// Next returns the next item, fetching the next page when the buffer is
// exhausted. It returns ErrNoMoreItems once the server stops returning a
// next cursor and the final page is drained.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	for it.pos >= len(it.buffer) {
		if !it.hasMore {
			return zero, ErrNoMoreItems
		}

		err := it.fetchPage(ctx)
		if err != nil {
			return zero, err
		}
	}

	item := it.buffer[it.pos]
	it.pos++

	return item, nil
}

// nextPage fetches and returns one whole page, skipping empty pages that
// still carry a next cursor.
func (it *Iterator[T]) nextPage(ctx context.Context) ([]T, error) {
	for it.pos >= len(it.buffer) {
		if !it.hasMore {
			return nil, ErrNoMoreItems
		}

		err := it.fetchPage(ctx)
		if err != nil {
			return nil, err
		}
	}

	page := it.buffer[it.pos:]
	it.pos = len(it.buffer)

	return page, nil
}

// fetchPage issues one GET, refills the buffer from the items key, and
// advances or clears the cursor. The active version is read from the fetcher
// on every call rather than snapshotted at construction.
func (it *Iterator[T]) fetchPage(ctx context.Context) error {
	resp, err := it.paginator.fetcher.FetchPage(ctx, it.paginator.endpoint, it.params)
	if err != nil {
		return err
	}

	if resp == nil {
		it.hasMore = false

		return nil
	}

	items, err := it.decodeItems(resp)
	if err != nil {
		return err
	}

	it.buffer = items
	it.pos = 0

	next, _ := ExtractCursors(resp, it.paginator.fetcher.ActiveVersion())
	if next != "" {
		it.params.Set("cursor", next)
		it.hasMore = true
	} else {
		it.hasMore = false
	}

	return nil
}

func (it *Iterator[T]) decodeItems(resp *RawResponse) ([]T, error) {
	raw, ok := resp.Body[it.paginator.itemsKey]
	if !ok {
		return nil, nil
	}

	var rawItems []json.RawMessage

	err := json.Unmarshal(raw, &rawItems)
	if err != nil {
		return nil, fmt.Errorf("decoding %s array: %w", it.paginator.itemsKey, err)
	}

	items := make([]T, 0, len(rawItems))

	for _, rawItem := range rawItems {
		item, err := it.paginator.transform(rawItem)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

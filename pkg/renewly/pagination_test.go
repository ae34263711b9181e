package renewly_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

type Widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// mockPage is one canned response keyed by the cursor that requests it.
type mockPage struct {
	body    string
	headers http.Header
}

// MockPageFetcher serves canned pages keyed by cursor ("" is the first page)
// and records every fetch.
type MockPageFetcher struct {
	mu      sync.Mutex
	pages   map[string]mockPage
	version renewly.APIVersion
	fetches int
	err     error
}

func newMockFetcher(version renewly.APIVersion) *MockPageFetcher {
	return &MockPageFetcher{
		pages:   make(map[string]mockPage),
		version: version,
	}
}

func (m *MockPageFetcher) addPage(cursor, body string) {
	m.pages[cursor] = mockPage{body: body}
}

func (m *MockPageFetcher) addLinkedPage(cursor, body, nextURL string) {
	headers := http.Header{}
	headers.Set("Link", fmt.Sprintf("<%s>; rel=%q", nextURL, "next"))
	m.pages[cursor] = mockPage{body: body, headers: headers}
}

func (m *MockPageFetcher) setVersion(v renewly.APIVersion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version = v
}

func (m *MockPageFetcher) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fetches
}

func (m *MockPageFetcher) FetchPage(ctx context.Context, endpoint string, query url.Values) (*renewly.RawResponse, error) {
	m.mu.Lock()
	m.fetches++
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	page, ok := m.pages[query.Get("cursor")]
	if !ok {
		return &renewly.RawResponse{
			StatusCode: http.StatusOK,
			Headers:    http.Header{},
			Body:       renewly.DecodeRawBody(nil),
		}, nil
	}

	headers := page.headers
	if headers == nil {
		headers = http.Header{}
	}

	return &renewly.RawResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       renewly.DecodeRawBody([]byte(page.body)),
	}, nil
}

func (m *MockPageFetcher) ActiveVersion() renewly.APIVersion {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.version
}

func twoPageFetcher() *MockPageFetcher {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"widgets": [{"id": "1", "name": "alpha"}, {"id": "2", "name": "beta"}], "next_cursor": "p2"}`)
	fetcher.addPage("p2", `{"widgets": [{"id": "3", "name": "gamma"}], "next_cursor": null}`)

	return fetcher
}

func widgetPaginator(fetcher *MockPageFetcher) *renewly.Paginator[Widget] {
	return renewly.NewPaginator[Widget](fetcher, "/widgets", "widgets", nil)
}

func TestPaginatorIsLazy(t *testing.T) {
	fetcher := twoPageFetcher()

	p := widgetPaginator(fetcher)
	it := p.Iter()

	// Construction and HasNext perform no I/O.
	assert.True(t, it.HasNext())
	assert.Equal(t, 0, fetcher.fetchCount())

	_, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.fetchCount())
}

func TestIterator_HasNext(t *testing.T) {
	fetcher := twoPageFetcher()
	it := widgetPaginator(fetcher).Iter()

	// Should have next before any fetch
	assert.True(t, it.HasNext())

	item1, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", item1.ID)

	assert.True(t, it.HasNext())

	item2, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", item2.ID)

	// Page 1 is drained but it carried a next cursor
	assert.True(t, it.HasNext())

	item3, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3", item3.ID)

	assert.False(t, it.HasNext())

	_, err = it.Next(context.Background())
	assert.ErrorIs(t, err, renewly.ErrNoMoreItems)
}

// HasNext is optimistic: a trailing cursor that leads to an empty page still
// reports true until the fetch proves otherwise.
func TestIterator_HasNextOptimistic(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"widgets": [{"id": "1"}], "next_cursor": "empty"}`)
	fetcher.addPage("empty", `{"widgets": []}`)

	it := widgetPaginator(fetcher).Iter()

	_, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.True(t, it.HasNext())

	_, err = it.Next(context.Background())
	assert.ErrorIs(t, err, renewly.ErrNoMoreItems)
	assert.False(t, it.HasNext())
}

func TestPaginator_All(t *testing.T) {
	fetcher := twoPageFetcher()

	widgets, err := widgetPaginator(fetcher).All(context.Background())
	require.NoError(t, err)
	require.Len(t, widgets, 3)
	assert.Equal(t, "alpha", widgets[0].Name)
	assert.Equal(t, "gamma", widgets[2].Name)
	assert.Equal(t, 2, fetcher.fetchCount())
}

func TestPaginator_First(t *testing.T) {
	t.Run("returns first item", func(t *testing.T) {
		fetcher := twoPageFetcher()

		first, err := widgetPaginator(fetcher).First(context.Background())
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "1", first.ID)
		assert.Equal(t, 1, fetcher.fetchCount())
	})

	t.Run("nil on empty sequence", func(t *testing.T) {
		fetcher := newMockFetcher(renewly.APIVersion202406)
		fetcher.addPage("", `{"widgets": []}`)

		first, err := widgetPaginator(fetcher).First(context.Background())
		require.NoError(t, err)
		assert.Nil(t, first)
	})
}

func TestPaginator_Take(t *testing.T) {
	t.Run("stops at the satisfying page", func(t *testing.T) {
		fetcher := twoPageFetcher()

		widgets, err := widgetPaginator(fetcher).Take(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, widgets, 2)
		// Page 2 was never requested
		assert.Equal(t, 1, fetcher.fetchCount())
	})

	t.Run("short sequence yields what exists", func(t *testing.T) {
		fetcher := twoPageFetcher()

		widgets, err := widgetPaginator(fetcher).Take(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, widgets, 3)
	})

	t.Run("non-positive n yields nothing", func(t *testing.T) {
		fetcher := twoPageFetcher()

		widgets, err := widgetPaginator(fetcher).Take(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, widgets)
		assert.Equal(t, 0, fetcher.fetchCount())
	})
}

func TestPaginator_Chunk(t *testing.T) {
	t.Run("final partial group", func(t *testing.T) {
		fetcher := twoPageFetcher()

		chunks, err := widgetPaginator(fetcher).Chunk(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Len(t, chunks[0], 2)
		assert.Len(t, chunks[1], 1)
	})

	t.Run("invalid size", func(t *testing.T) {
		fetcher := twoPageFetcher()

		_, err := widgetPaginator(fetcher).Chunk(context.Background(), 0)
		assert.ErrorIs(t, err, renewly.ErrInvalidChunkSize)
	})
}

func TestPaginator_CountAndIsEmpty(t *testing.T) {
	fetcher := twoPageFetcher()

	count, err := widgetPaginator(fetcher).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	empty, err := widgetPaginator(fetcher).IsEmpty(context.Background())
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestPaginator_Each(t *testing.T) {
	t.Run("visits in yield order", func(t *testing.T) {
		fetcher := twoPageFetcher()

		var seen []string

		err := widgetPaginator(fetcher).Each(context.Background(), func(w Widget) error {
			seen = append(seen, w.ID)

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, seen)
	})

	t.Run("callback error stops traversal", func(t *testing.T) {
		fetcher := twoPageFetcher()
		boom := errors.New("boom")

		err := widgetPaginator(fetcher).Each(context.Background(), func(w Widget) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, fetcher.fetchCount())
	})
}

func TestPaginator_Stream(t *testing.T) {
	fetcher := twoPageFetcher()

	var pages [][]Widget

	for result := range widgetPaginator(fetcher).Stream(context.Background()) {
		require.NoError(t, result.Err)
		pages = append(pages, result.Items)
	}

	require.Len(t, pages, 2)
	assert.Len(t, pages[0], 2)
	assert.Len(t, pages[1], 1)
}

// Every derived operation restarts from the original parameters; traversal
// state is never shared.
func TestPaginator_OperationsRestart(t *testing.T) {
	fetcher := twoPageFetcher()
	p := widgetPaginator(fetcher)

	first, err := p.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)

	all, err := p.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)

	again, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

// The working parameter copy means the original query survives cursor
// advancement in a previous traversal.
func TestPaginator_ParamsNotMutated(t *testing.T) {
	fetcher := twoPageFetcher()

	params := url.Values{"limit": []string{"2"}}
	p := renewly.NewPaginator[Widget](fetcher, "/widgets", "widgets", params)

	_, err := p.All(context.Background())
	require.NoError(t, err)

	assert.Empty(t, params.Get("cursor"))
	assert.Equal(t, "2", params.Get("limit"))
}

func TestPaginator_FetchErrorPropagates(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.err = &renewly.APIStatusError{StatusCode: 500, Message: "Internal Server Error"}

	_, err := widgetPaginator(fetcher).All(context.Background())
	require.Error(t, err)

	statusErr := &renewly.APIStatusError{}
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 1, fetcher.fetchCount())
}

func TestPaginator_MalformedItemsArray(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"widgets": {"not": "an array"}}`)

	_, err := widgetPaginator(fetcher).All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding widgets array")
}

func TestPaginator_MissingItemsKey(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"other": []}`)

	widgets, err := widgetPaginator(fetcher).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, widgets)
}

func TestTransformPaginator(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"widgets": [{"id": "1", "name": "alpha"}]}`)

	p := renewly.NewTransformPaginator[string](fetcher, "/widgets", "widgets", nil,
		func(raw json.RawMessage) (string, error) {
			var w Widget
			if err := json.Unmarshal(raw, &w); err != nil {
				return "", err
			}

			return w.Name, nil
		})

	names, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)
}

// The active version is read from the fetcher at every page boundary, so a
// switch mid-traversal changes the extraction rule for subsequent pages.
func TestPaginator_VersionReadPerPage(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202301)
	// Page 1: legacy, cursor only in the Link header.
	fetcher.addLinkedPage("", `{"widgets": [{"id": "1"}]}`, "https://api.renewly.test/widgets?cursor=p2")
	// Page 2: carries both a Link header and no body cursor. Under 2024-06
	// the Link header is ignored, ending the traversal.
	fetcher.addLinkedPage("p2", `{"widgets": [{"id": "2"}]}`, "https://api.renewly.test/widgets?cursor=ghost")

	it := widgetPaginator(fetcher).Iter()

	first, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)

	fetcher.setVersion(renewly.APIVersion202406)

	second, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", second.ID)

	_, err = it.Next(context.Background())
	assert.ErrorIs(t, err, renewly.ErrNoMoreItems)
	assert.Equal(t, 2, fetcher.fetchCount())
}

// End to end: three widget pages traversed lazily under the modern dialect.
func TestPaginator_ThreePageTraversal(t *testing.T) {
	fetcher := newMockFetcher(renewly.APIVersion202406)
	fetcher.addPage("", `{"widgets": [{"id": "1"}, {"id": "2"}], "next_cursor": "p2"}`)
	fetcher.addPage("p2", `{"widgets": [{"id": "3"}, {"id": "4"}], "next_cursor": "p3", "previous_cursor": "p1"}`)
	fetcher.addPage("p3", `{"widgets": [{"id": "5"}], "next_cursor": null, "previous_cursor": "p2"}`)

	p := widgetPaginator(fetcher)

	widgets, err := p.All(context.Background())
	require.NoError(t, err)
	require.Len(t, widgets, 5)
	assert.Equal(t, "5", widgets[4].ID)
	assert.Equal(t, 3, fetcher.fetchCount())
}

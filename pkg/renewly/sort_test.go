package renewly_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

func TestNormalizeSort_Symbolic(t *testing.T) {
	values := url.Values{}

	err := renewly.NormalizeSort(values, renewly.SortBy(renewly.SubscriptionSortCreatedAtDesc), renewly.SubscriptionSortSet())
	require.NoError(t, err)
	assert.Equal(t, "created_at-desc", values.Get("sort_by"))
}

func TestNormalizeSort_RawLegal(t *testing.T) {
	values := url.Values{}

	err := renewly.NormalizeSort(values, renewly.SortByRaw("id-asc"), renewly.SubscriptionSortSet())
	require.NoError(t, err)
	assert.Equal(t, "id-asc", values.Get("sort_by"))
}

func TestNormalizeSort_RawIllegal(t *testing.T) {
	values := url.Values{}

	err := renewly.NormalizeSort(values, renewly.SortByRaw("price-desc"), renewly.SubscriptionSortSet())
	require.Error(t, err)

	sortErr := &renewly.InvalidSortError{}
	require.ErrorAs(t, err, &sortErr)
	assert.Equal(t, "price-desc", sortErr.Value)
	assert.Equal(t, renewly.SubscriptionSortSet().Tokens(), sortErr.Legal)
	assert.Contains(t, err.Error(), "price-desc")
	assert.Contains(t, err.Error(), "created_at-asc")
}

// A sort_by already present in the values is validated too.
func TestNormalizeSort_PreexistingValue(t *testing.T) {
	t.Run("legal", func(t *testing.T) {
		values := url.Values{"sort_by": []string{"id-desc"}}

		err := renewly.NormalizeSort(values, renewly.Sort{}, renewly.SubscriptionSortSet())
		require.NoError(t, err)
		assert.Equal(t, "id-desc", values.Get("sort_by"))
	})

	t.Run("illegal", func(t *testing.T) {
		values := url.Values{"sort_by": []string{"bogus"}}

		err := renewly.NormalizeSort(values, renewly.Sort{}, renewly.SubscriptionSortSet())
		require.Error(t, err)
	})
}

func TestNormalizeSort_NoSort(t *testing.T) {
	values := url.Values{}

	err := renewly.NormalizeSort(values, renewly.Sort{}, renewly.SubscriptionSortSet())
	require.NoError(t, err)
	assert.Empty(t, values.Get("sort_by"))
}

// Folding sets resolve any casing to the canonical token; case-sensitive
// sets do not.
func TestSortSet_Folding(t *testing.T) {
	canonical, ok := renewly.ChargeSortSet().Resolve("Scheduled_At-Desc")
	assert.True(t, ok)
	assert.Equal(t, "scheduled_at-desc", canonical)

	_, ok = renewly.SubscriptionSortSet().Resolve("Created_At-Desc")
	assert.False(t, ok)
}

func TestSortSet_Tokens(t *testing.T) {
	tokens := renewly.OrderSortSet().Tokens()
	assert.Contains(t, tokens, "shipped_date-asc")
	assert.Contains(t, tokens, "shipped_date-desc")
	assert.NotContains(t, tokens, "updated_at-asc")
}

func TestSort_IsZero(t *testing.T) {
	assert.True(t, renewly.Sort{}.IsZero())
	assert.False(t, renewly.SortByRaw("id-asc").IsZero())
	assert.False(t, renewly.SortBy(renewly.GenericSortIDAsc).IsZero())
}

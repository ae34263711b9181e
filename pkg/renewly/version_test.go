package renewly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

func TestAPIVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-01", renewly.APIVersion202301.String())
	assert.Equal(t, "2024-06", renewly.APIVersion202406.String())
	assert.Equal(t, renewly.APIVersion202406, renewly.DefaultAPIVersion)

	assert.True(t, renewly.APIVersion202301.Valid())
	assert.True(t, renewly.APIVersion202406.Valid())
	assert.False(t, renewly.APIVersion("2019-10").Valid())
	assert.False(t, renewly.APIVersion("").Valid())
}

func TestCheckAPIVersion(t *testing.T) {
	t.Parallel()

	assert.NoError(t, renewly.CheckAPIVersion(renewly.APIVersion202301))
	assert.NoError(t, renewly.CheckAPIVersion(renewly.APIVersion202406))

	err := renewly.CheckAPIVersion("2019-10")
	assert.ErrorIs(t, err, renewly.ErrUnsupportedAPIVersion)
	assert.Contains(t, err.Error(), "2019-10")
}

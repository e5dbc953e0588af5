package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaSpec_Build(t *testing.T) {
	t.Run("time", func(t *testing.T) {
		c, err := CriteriaSpec{Target: "2h", Task: "read", LinkID: 4, Feed: true}.Build()
		require.NoError(t, err)
		tc, ok := c.(*TimeCriteria)
		require.True(t, ok)
		assert.Equal(t, int64(7_200_000), tc.TargetMs)
		assert.Equal(t, "read", tc.Task)
		assert.Equal(t, 4, tc.LinkID)
		assert.True(t, tc.Feed)
	})

	t.Run("task", func(t *testing.T) {
		c, err := CriteriaSpec{Items: []string{"a", "b"}}.Build()
		require.NoError(t, err)
		tc, ok := c.(*TaskCriteria)
		require.True(t, ok)
		assert.Len(t, tc.Items, 2)
		assert.Equal(t, "b", tc.Items[1].Description)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := CriteriaSpec{}.Build()
		assert.ErrorIs(t, err, ErrMissingCriteria)
		_, err = CriteriaSpec{Target: "1h", Items: []string{"a"}}.Build()
		assert.ErrorIs(t, err, ErrConflictingCriteria)
		_, err = CriteriaSpec{Target: "later"}.Build()
		assert.Error(t, err)
	})

	assert.True(t, CriteriaSpec{}.IsEmpty())
	assert.False(t, CriteriaSpec{Feed: true}.IsEmpty())
}

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/orbit-arcade/internal/invariant"
)

func bulletIDs(s *Store[*Bullet]) []int {
	ids := make([]int, 0, s.Len())
	for _, b := range s.All() {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestStoreAddGetRemove(t *testing.T) {
	s := NewStore[*Bullet]()
	for i := 0; i < 4; i++ {
		s.Add(NewBullet(s.NextID(), float64(i)))
	}
	require.Equal(t, []int{1, 2, 3, 4}, bulletIDs(s))

	b, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, 2.0, b.X)

	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2), "already removed")
	assert.Equal(t, []int{1, 3, 4}, bulletIDs(s))

	b, ok = s.Get(4)
	require.True(t, ok, "index follows the shifted slice")
	assert.Equal(t, 4, b.ID)
	assert.False(t, s.Has(2))
}

func TestStoreFilterKeepsOrder(t *testing.T) {
	s := NewStore[*Bullet]()
	for i := 0; i < 6; i++ {
		s.Add(NewBullet(s.NextID(), 0))
	}

	s.Filter(func(b *Bullet) bool { return b.ID%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, bulletIDs(s))
	for _, id := range []int{2, 4, 6} {
		b, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, id, b.ID)
	}
	assert.False(t, s.Has(1))
}

func TestStoreClearKeepsIDsMonotonic(t *testing.T) {
	s := NewStore[*Bullet]()
	s.Add(NewBullet(s.NextID(), 0))
	s.Add(NewBullet(s.NextID(), 0))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))

	assert.Equal(t, 3, s.NextID(), "ids are never reused after Clear")
}

func TestStoreRejectsDuplicateID(t *testing.T) {
	if invariant.Debug {
		t.Skip("duplicate ids panic in debug builds")
	}
	s := NewStore[*Bullet]()
	s.Add(NewBullet(1, 0))
	s.Add(NewBullet(1, 9))

	require.Equal(t, 1, s.Len())
	b, _ := s.Get(1)
	assert.Equal(t, 0.0, b.X)
}

func TestUpdateAllDropsFinished(t *testing.T) {
	s := NewStore[*Bullet]()
	low := NewBullet(s.NextID(), 0)
	high := NewBullet(s.NextID(), 0)
	high.Y = 7.9
	s.Add(low)
	s.Add(high)

	removed := UpdateAll(s)

	assert.Equal(t, 1, removed)
	assert.Equal(t, []int{low.ID}, bulletIDs(s))
}

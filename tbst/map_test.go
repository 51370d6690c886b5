package tbst

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaselineMatchesTree(t *testing.T) {
	rng := rand.New(rand.NewSource(seed))
	db := NewBaseline[int, int]()
	tr := New[int, int]()
	for i := 0; i < 1000; i++ {
		k, v := rng.Intn(300), rng.Int()
		assert.Equal(t, tr.Insert(k, v), db.Insert(k, v))
	}
	assert.Equal(t, tr.Len(), db.Len())

	keys := db.Keys()
	sort.Ints(keys)
	assert.Equal(t, tr.Keys(), keys)
	for _, k := range keys {
		v, found := db.Search(k)
		assert.True(t, found)
		assert.Equal(t, tr.Get(k), v)
	}
	assert.Equal(t, 0, db.Get(-1))

	db.Clear()
	assert.Equal(t, 0, db.Len())
	_, found := db.Search(keys[0])
	assert.False(t, found)
}

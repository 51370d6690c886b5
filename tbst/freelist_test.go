package tbst

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearRecyclesArena(t *testing.T) {
	f := NewFreeList[int, int](DefaultFreeListSize)
	tr := NewWithFreeList(func(a, b int) int { return a - b }, f)
	for _, k := range rang(64) {
		tr.Insert(k, k)
	}
	capBefore := cap(tr.nodes)
	tr.Clear()
	require.Equal(t, 1, f.Len())

	tr.Insert(3, 3)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, capBefore, cap(tr.nodes))
	assert.Equal(t, []int{3}, all(tr))
	assert.Equal(t, 3, tr.Get(3))
}

func TestFreeListBounded(t *testing.T) {
	f := NewFreeList[int, int](1)
	assert.True(t, f.freeArena(make([]node[int, int], 2)))
	assert.False(t, f.freeArena(make([]node[int, int], 2)))
	assert.False(t, f.freeArena(nil))
	assert.Equal(t, 1, f.Len())
}

func TestFreeListClearsNodes(t *testing.T) {
	f := NewFreeList[string, string](1)
	a := []node[string, string]{{key: "k", value: "v", left: 2}}
	require.True(t, f.freeArena(a))
	got := f.newArena(0)
	require.Len(t, got, 0)
	assert.Equal(t, node[string, string]{}, got[:1][0])
}

func TestSharedFreeListConcurrent(t *testing.T) {
	f := NewFreeList[int, int](4)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr := NewWithFreeList(func(a, b int) int { return a - b }, f)
			for round := 0; round < 20; round++ {
				for _, k := range rang(50) {
					tr.Insert(k, k)
				}
				if tr.Len() != 50 {
					t.Errorf("len = %d, want 50", tr.Len())
				}
				tr.Clear()
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, f.Len(), 4)
}

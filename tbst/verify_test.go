package tbst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// inorder collects the handles of the subtree at h in order, following owned
// edges only.
func (t *Tree[K, V]) inorder(h handle, out []handle) []handle {
	if h == nilHandle {
		return out
	}
	n := t.at(h)
	out = t.inorder(n.left, out)
	out = append(out, h)
	if n.right.kind == linkChild {
		out = t.inorder(n.right.to, out)
	}
	return out
}

// verify checks the ordering, uniqueness and thread invariants of tr.
func verify[K, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	order := tr.inorder(tr.root, nil)
	require.Len(t, order, tr.Len(), "owned edges must reach every node exactly once")

	seen := make(map[handle]bool, len(order))
	for i, h := range order {
		require.False(t, seen[h], "node %d owned twice", h)
		seen[h] = true
		if i > 0 {
			require.Negative(t, tr.cmp(tr.at(order[i-1]).key, tr.at(h).key), "keys out of order at %d", i)
		}
		switch r := tr.at(h).right; r.kind {
		case linkThread:
			require.Less(t, i+1, len(order), "last node must not have a thread target")
			require.Equal(t, order[i+1], r.to, "thread of %v is not its successor", tr.at(h).key)
		case linkAbsent:
			require.Equal(t, len(order)-1, i, "only the maximum may have an absent thread")
		}
	}
}

// Package tbst implements an in-memory threaded binary search tree.
//
// 右の子を持たないノードの右スロットは、中間順 (in-order) の後続ノードを指す
// 「スレッド」として再利用される。これにより、スタックや親ポインタ、再帰を使わずに
// O(1) の追加メモリで昇順の走査ができる。
//
// The tree is not rebalanced; its shape follows insertion order. Keys cannot be
// deleted. A Tree is not safe for concurrent use.
package tbst

import "cmp"

type (
	// handle はアリーナ内のノードを指す。0 は「ノードなし」を表し、
	// ノード i は nodes[i-1] に格納される。
	handle int32

	linkKind uint8

	// link はノードの右スロットである。kind によって、所有する右部分木なのか、
	// 後続ノードへの所有しないスレッドなのかが決まる。
	link struct {
		kind linkKind
		to   handle
	}

	node[K, V any] struct {
		key   K
		value V
		left  handle
		right link
	}

	// Tree はスレッド付き二分探索木である。
	// New, NewFunc, NewWithFreeList のいずれかで作成すること。
	Tree[K, V any] struct {
		nodes  []node[K, V]
		root   handle
		cursor handle
		cmp    func(a, b K) int
		fl     *FreeList[K, V]
	}
)

const nilHandle handle = 0

const (
	linkAbsent linkKind = iota // 最大キーのノード。スレッドだが行き先がない。
	linkThread                 // 中間順の後続ノードへの参照。
	linkChild                  // 所有する右部分木。
)

// New は cmp.Compare で順序付けられた空の木を作成する。
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc は与えられた比較関数で順序付けられた空の木を作成する。
// cmp は a < b で負、a == b で 0、a > b で正を返さなければならない。
func NewFunc[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	return NewWithFreeList(cmp, NewFreeList[K, V](DefaultFreeListSize))
}

// NewWithFreeList は与えられたフリーリストを使用する空の木を作成する。
func NewWithFreeList[K, V any](cmp func(a, b K) int, f *FreeList[K, V]) *Tree[K, V] {
	if cmp == nil {
		panic("tbst: nil comparison function")
	}
	return &Tree[K, V]{cmp: cmp, fl: f}
}

func (t *Tree[K, V]) at(h handle) *node[K, V] {
	return &t.nodes[h-1]
}

// isThread reports whether the right slot is not an owned subtree.
func (l link) isThread() bool {
	return l.kind != linkChild
}

// find は key を持つノードを探す。見つからなかった場合 h は nilHandle で、
// parent は新しいノードを繋ぐべきノード、c は key と parent のキーの比較結果になる。
// スレッドや空のスロットに当たった時点で探索は終わる。
func (t *Tree[K, V]) find(key K) (h, parent handle, c int) {
	h = t.root
	for h != nilHandle {
		n := t.at(h)
		if c = t.cmp(key, n.key); c == 0 {
			return h, parent, 0
		}
		parent = h
		switch {
		case c < 0:
			h = n.left
		case n.right.isThread():
			h = nilHandle
		default:
			h = n.right.to
		}
	}
	return nilHandle, parent, c
}

// Len は木に含まれるノードの数を返す。
func (t *Tree[K, V]) Len() int {
	return len(t.nodes)
}

// Search は key を探し、見つかった場合はその値と true を返す。
func (t *Tree[K, V]) Search(key K) (value V, found bool) {
	if h, _, _ := t.find(key); h != nilHandle {
		return t.at(h).value, true
	}
	return
}

// Has は key が木の中にある場合に true を返す。
func (t *Tree[K, V]) Has(key K) bool {
	_, found := t.Search(key)
	return found
}

// Get は key の値を返す。key がない場合は V のゼロ値を返す。
// ゼロ値が格納されているのか key がないのかを区別するには Search を使うこと。
func (t *Tree[K, V]) Get(key K) V {
	value, _ := t.Search(key)
	return value
}

// Right は key を持つノードの右スロットにあるキーを返す。
// スロットがスレッドなら中間順の次のキーであり、右の子を持つなら、その子のキー
// （部分木の最小キーではない）である。key がない場合や key が最大キーの場合は
// K のゼロ値を返す。
func (t *Tree[K, V]) Right(key K) (out K) {
	h, _, _ := t.find(key)
	if h == nilHandle {
		return
	}
	if r := t.at(h).right; r.kind != linkAbsent {
		out = t.at(r.to).key
	}
	return
}

// Insert は key と value の組を木に追加し、追加された場合に true を返す。
// 同じキーがすでにある場合は何もせず false を返す（既存の値は上書きされない）。
func (t *Tree[K, V]) Insert(key K, value V) bool {
	h, parent, c := t.find(key)
	if h != nilHandle {
		return false
	}
	if t.nodes == nil {
		t.nodes = t.fl.newArena(0)
	}
	t.nodes = append(t.nodes, node[K, V]{key: key, value: value})
	h = handle(len(t.nodes))
	n := t.at(h)
	switch {
	case parent == nilHandle:
		t.root = h
	case c < 0:
		// The parent becomes the successor of its new left child.
		t.at(parent).left = h
		n.right = link{kind: linkThread, to: parent}
	default:
		// 親の古い後続ノードを引き継ぎ、親は本物の右の子を持つようになる。
		p := t.at(parent)
		n.right = p.right
		p.right = link{kind: linkChild, to: h}
	}
	return true
}

// Min は木の中で最も小さいキーとその値を返す。木が空の場合 ok は false になる。
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if h := t.leftmost(t.root); h != nilHandle {
		n := t.at(h)
		return n.key, n.value, true
	}
	return
}

// Max は木の中で最も大きいキーとその値を返す。木が空の場合 ok は false になる。
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	h := t.root
	if h == nilHandle {
		return
	}
	for t.at(h).right.kind == linkChild {
		h = t.at(h).right.to
	}
	n := t.at(h)
	return n.key, n.value, true
}

// Clear は木からすべてのノードを取り除き、走査カーソルをリセットする。
// ノードはアリーナごと解放されるので、スレッドを辿ることはない。
// アリーナはフリーリストに空きがあれば再利用のために保存される。
func (t *Tree[K, V]) Clear() {
	t.fl.freeArena(t.nodes)
	t.nodes, t.root, t.cursor = nil, nilHandle, nilHandle
}

// Clone は t と同じキーと値を持つ独立した木を返す。
// コピーは t のノードを先行順 (pre-order) に挿入し直して作られるので、
// スレッドは新しい木の中で作り直される。
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	out := NewWithFreeList(t.cmp, t.fl)
	out.replay(t)
	return out
}

// Assign は t を空にしてから src の内容をコピーする。src が t 自身の場合は何もしない。
func (t *Tree[K, V]) Assign(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.Clear()
	t.cmp = src.cmp
	t.replay(src)
}

// replay inserts every node of src in pre-order: a node, then its left subtree,
// then its right subtree if it owns one.
func (t *Tree[K, V]) replay(src *Tree[K, V]) {
	if src.root == nilHandle {
		return
	}
	if t.nodes == nil {
		t.nodes = t.fl.newArena(src.Len())
	}
	stack := []handle{src.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := src.at(h)
		t.Insert(n.key, n.value)
		if n.right.kind == linkChild {
			stack = append(stack, n.right.to)
		}
		if n.left != nilHandle {
			stack = append(stack, n.left)
		}
	}
}

package tbst

// ItemIterator allows callers of Ascend to iterate in-order over the tree.
// When this function returns false, iteration will stop and Ascend will
// immediately return.
type ItemIterator[K, V any] func(key K, value V) bool

// leftmost は h をルートとする部分木の最小のノードを返す。
func (t *Tree[K, V]) leftmost(h handle) handle {
	if h == nilHandle {
		return nilHandle
	}
	for t.at(h).left != nilHandle {
		h = t.at(h).left
	}
	return h
}

// next は h の中間順の次のノードを返す。
// 右スロットがスレッドならその行き先がそのまま次のノードであり、
// 右の子を持つならその部分木の最小のノードまで降りる。
func (t *Tree[K, V]) next(h handle) handle {
	switch r := t.at(h).right; r.kind {
	case linkChild:
		return t.leftmost(r.to)
	case linkThread:
		return r.to
	}
	return nilHandle
}

// Begin は走査カーソルを最小のキーに合わせ、次の Next 呼び出しが最初のキーを
// 返すようにする。走査中に呼び出すと、その走査は最初からやり直しになる。
func (t *Tree[K, V]) Begin() {
	t.cursor = t.leftmost(t.root)
}

// Next はカーソルの位置のキーを返してカーソルを進める。
// 走査が終わっている場合、または Begin が呼ばれていない場合は false を返す。
func (t *Tree[K, V]) Next() (key K, ok bool) {
	if t.cursor == nilHandle {
		return
	}
	key = t.at(t.cursor).key
	t.cursor = t.next(t.cursor)
	return key, true
}

// Iterator は呼び出し側が保持する走査状態である。同じ木に対して複数の
// Iterator を同時に使える。Clear の後は使用できない。
type Iterator[K, V any] struct {
	t *Tree[K, V]
	h handle
}

// Iter は最小のキーから始まる新しい Iterator を返す。
func (t *Tree[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{t: t, h: t.leftmost(t.root)}
}

// Next returns the next key and value in ascending order, or ok == false once
// every key has been returned.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if it.h == nilHandle || int(it.h) > it.t.Len() {
		return
	}
	n := it.t.at(it.h)
	it.h = it.t.next(it.h)
	return n.key, n.value, true
}

// Ascend は iterator が false を返すまで、木のすべての値について昇順に iterator を呼び出す。
func (t *Tree[K, V]) Ascend(iterator ItemIterator[K, V]) {
	for h := t.leftmost(t.root); h != nilHandle; h = t.next(h) {
		n := t.at(h)
		if !iterator(n.key, n.value) {
			return
		}
	}
}

// Keys は木のすべてのキーを昇順で返す。
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.Len())
	t.Ascend(func(key K, _ V) bool {
		out = append(out, key)
		return true
	})
	return out
}

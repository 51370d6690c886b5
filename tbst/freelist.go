package tbst

import "sync"

const DefaultFreeListSize = 32

// FreeList はクリアされた木のノードアリーナを保持し、次に構築される木で再利用する。
// デフォルトでは各 Tree が自分の FreeList を持つが、Clone で作られた木は元の木と
// FreeList を共有する。FreeList 自体は複数のゴルーチンから安全に使用できる。
type FreeList[K, V any] struct {
	mu       sync.Mutex
	freelist [][]node[K, V]
}

// NewFreeList は最大 size 個のアリーナを保持するフリーリストを作成する。
func NewFreeList[K, V any](size int) *FreeList[K, V] {
	return &FreeList[K, V]{freelist: make([][]node[K, V], 0, size)}
}

// newArena は一番右端のアリーナを取り出して長さ 0 で返す。
// 保存されたアリーナがなければ容量 capHint の新しいアリーナを作る。
func (f *FreeList[K, V]) newArena(capHint int) []node[K, V] {
	if f != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		if index := len(f.freelist) - 1; index >= 0 {
			a := f.freelist[index]
			f.freelist[index] = nil
			f.freelist = f.freelist[:index]
			return a
		}
	}
	return make([]node[K, V], 0, capHint)
}

// freeArena はアリーナをゼロクリアしてリストに追加し、追加された場合は true を、
// 破棄された場合は false を返す。
func (f *FreeList[K, V]) freeArena(a []node[K, V]) (out bool) {
	if f == nil || cap(a) == 0 {
		return false
	}
	// clear to allow GC
	clear(a)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, a[:0])
		out = true
	}
	return
}

// Len はフリーリストに保存されているアリーナの数を返す。
func (f *FreeList[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

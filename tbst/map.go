package tbst

type (
	// Baseline は Go の map による比較用のストアで、Tree と同じく
	// 最初に書き込まれた値を保持する。順序は持たない。
	Baseline[K comparable, V any] struct {
		mp map[K]V
	}
)

func NewBaseline[K comparable, V any]() *Baseline[K, V] {
	return &Baseline[K, V]{mp: make(map[K]V)}
}

func (db *Baseline[K, V]) Search(key K) (V, bool) {
	value, ok := db.mp[key]
	return value, ok
}

func (db *Baseline[K, V]) Get(key K) V {
	return db.mp[key]
}

// Insert は key がまだない場合に限り値を保存し、保存した場合に true を返す。
func (db *Baseline[K, V]) Insert(key K, value V) bool {
	if _, ok := db.mp[key]; ok {
		return false
	}
	db.mp[key] = value
	return true
}

func (db *Baseline[K, V]) Clear() {
	db.mp = make(map[K]V)
}

func (db *Baseline[K, V]) Len() int {
	return len(db.mp)
}

// Keys returns the keys in unspecified order.
func (db *Baseline[K, V]) Keys() []K {
	keys := make([]K, 0, len(db.mp))
	for key := range db.mp {
		keys = append(keys, key)
	}
	return keys
}

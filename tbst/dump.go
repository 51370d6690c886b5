package tbst

import (
	"bufio"
	"fmt"
	"io"
)

const (
	dumpRule  = "**************************************************"
	dumpTitle = "********************* BSTT ***********************"
)

// Dump は木の内容を w に書き出す。テスト/デバッグのために使用される。
//
// ノードごとに 1 行、昇順で、右スロットがスレッドなら (key,value,successor)、
// そうでなければ (key,value) の形式で出力する。Dump は木を変更しないので、
// 走査の途中で呼び出しても何度呼び出してもよい。
func (t *Tree[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, dumpRule)
	fmt.Fprintln(bw, dumpTitle)
	fmt.Fprintf(bw, "** size: %d\n", t.Len())
	for h := t.leftmost(t.root); h != nilHandle; h = t.next(h) {
		n := t.at(h)
		if n.right.kind == linkThread {
			fmt.Fprintf(bw, "(%v,%v,%v)\n", n.key, n.value, t.at(n.right.to).key)
		} else {
			fmt.Fprintf(bw, "(%v,%v)\n", n.key, n.value)
		}
	}
	fmt.Fprintln(bw, dumpRule)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tbst: dump: %w", err)
	}
	return nil
}

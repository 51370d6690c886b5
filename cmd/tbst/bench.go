/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package tbst

import (
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/seipan/tbst/tbst"
	"github.com/spf13/cobra"
)

// degenerateWarnSize is the tree size above which ascending keys make
// insertion noticeably quadratic.
const degenerateWarnSize = 10000

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the threaded tree with a Go map and a red-black tree map",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("N")
		if err != nil {
			return err
		}
		kind, err := cmd.Flags().GetString("keys")
		if err != nil {
			return err
		}
		order, err := cmd.Flags().GetString("order")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("N must be positive, got %d", n)
		}
		if order != "random" && order != "ascending" {
			return fmt.Errorf("unknown order %q: want random or ascending", order)
		}
		if order == "ascending" && n > degenerateWarnSize {
			glog.Warningf("ascending order builds a degenerate tree; %d inserts will be slow", n)
		}

		rng := rand.New(rand.NewSource(seed))
		glog.Infof("bench: %d %s keys in %s order, seed %d", n, kind, order, seed)

		switch kind {
		case "int":
			return runBench(cmd.OutOrStdout(), intKeys(n, order, rng))
		case "uuid":
			keys, err := uuidKeys(n, order, rng)
			if err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), keys)
		default:
			return fmt.Errorf("unknown key kind %q: want int or uuid", kind)
		}
	},
}

func init() {
	benchCmd.Flags().IntP("N", "N", 100000, "number of keys in the tree")
	benchCmd.Flags().String("keys", "int", "key kind: int or uuid")
	benchCmd.Flags().String("order", "random", "insertion order: random or ascending")
	benchCmd.Flags().Int64("seed", 1, "seed for key generation")
}

func intKeys(n int, order string, rng *rand.Rand) []int {
	if order == "ascending" {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
	return rng.Perm(n)
}

func uuidKeys(n int, order string, rng *rand.Rand) ([]string, error) {
	keys := make([]string, n)
	for i := range keys {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("generate key %d: %w", i, err)
		}
		keys[i] = id.String()
	}
	if order == "ascending" {
		slices.Sort(keys)
	}
	return keys, nil
}

// result is one row of the bench table. A negative traverse means the
// structure has no ordered traversal.
type result struct {
	name     string
	insert   time.Duration
	search   time.Duration
	traverse time.Duration
	size     int
}

func measure(name string, fnc func()) time.Duration {
	start := time.Now()
	fnc()
	d := time.Since(start)
	glog.V(1).Infof("%s took %v", name, d)
	return d
}

func runBench[K cmp.Ordered](w io.Writer, keys []K) error {
	var (
		results []result
		missing error
	)
	miss := func(structure string, key K) {
		if missing == nil {
			missing = fmt.Errorf("%s: key %v not found after insert", structure, key)
		}
	}

	tr := tbst.New[K, K]()
	res := result{name: "tbst"}
	res.insert = measure("tbst insert", func() {
		for _, k := range keys {
			tr.Insert(k, k)
		}
	})
	res.search = measure("tbst search", func() {
		for _, k := range keys {
			if _, ok := tr.Search(k); !ok {
				miss("tbst", k)
			}
		}
	})
	var visited int
	res.traverse = measure("tbst traverse", func() {
		tr.Begin()
		for _, ok := tr.Next(); ok; _, ok = tr.Next() {
			visited++
		}
	})
	if visited != tr.Len() {
		return fmt.Errorf("tbst: traversal visited %d of %d keys", visited, tr.Len())
	}
	res.size = tr.Len()
	results = append(results, res)

	db := tbst.NewBaseline[K, K]()
	res = result{name: "map", traverse: -1}
	res.insert = measure("map insert", func() {
		for _, k := range keys {
			db.Insert(k, k)
		}
	})
	res.search = measure("map search", func() {
		for _, k := range keys {
			if _, ok := db.Search(k); !ok {
				miss("map", k)
			}
		}
	})
	res.size = db.Len()
	results = append(results, res)

	tm := treemap.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(K), b.(K))
	})
	res = result{name: "gods treemap"}
	res.insert = measure("treemap insert", func() {
		for _, k := range keys {
			tm.Put(k, k)
		}
	})
	res.search = measure("treemap search", func() {
		for _, k := range keys {
			if _, ok := tm.Get(k); !ok {
				miss("treemap", k)
			}
		}
	})
	res.traverse = measure("treemap traverse", func() {
		it := tm.Iterator()
		for it.Next() {
		}
	})
	res.size = tm.Size()
	results = append(results, res)

	if missing != nil {
		return missing
	}
	render(w, results)
	return nil
}

func render(w io.Writer, results []result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"STRUCTURE", "SIZE", "INSERT", "SEARCH", "TRAVERSE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, r := range results {
		traverse := "-"
		if r.traverse >= 0 {
			traverse = r.traverse.String()
		}
		table.Append([]string{r.name, strconv.Itoa(r.size), r.insert.String(), r.search.String(), traverse})
	}
	table.Render()
}

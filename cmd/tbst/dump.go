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
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/seipan/tbst/tbst"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [key=value]...",
	Short: "Insert key=value pairs in order and print the resulting threads",
	Long: `dump inserts the given pairs in argument order and prints the tree dump,
the in-order traversal and the right neighbour of every key.

Keys are compared as integers when every key parses as one, and as strings otherwise.
A repeated key keeps its first value.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		keys, values, err := splitPairs(args)
		if err != nil {
			return err
		}
		if ints, ok := parseIntKeys(keys); ok {
			return dumpPairs(cmd.OutOrStdout(), ints, values)
		}
		return dumpPairs(cmd.OutOrStdout(), keys, values)
	},
}

func splitPairs(args []string) (keys, values []string, err error) {
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, nil, fmt.Errorf("invalid pair %q: want key=value", arg)
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values, nil
}

// parseIntKeys parses every key as an int, reporting false if any of them is not one.
func parseIntKeys(keys []string) ([]int, bool) {
	out := make([]int, len(keys))
	for i, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func dumpPairs[K cmp.Ordered](w io.Writer, keys []K, values []string) error {
	tr := tbst.New[K, string]()
	for i, k := range keys {
		if !tr.Insert(k, values[i]) {
			glog.V(1).Infof("dump: key %v already present, keeping %q", k, tr.Get(k))
		}
	}
	if err := tr.Dump(w); err != nil {
		return err
	}

	var order []string
	tr.Begin()
	for k, ok := tr.Next(); ok; k, ok = tr.Next() {
		order = append(order, fmt.Sprint(k))
	}
	if _, err := fmt.Fprintf(w, "order: %s\n", strings.Join(order, " ")); err != nil {
		return err
	}
	for _, k := range tr.Keys() {
		if _, err := fmt.Fprintf(w, "right(%v) = %v\n", k, tr.Right(k)); err != nil {
			return err
		}
	}
	return nil
}

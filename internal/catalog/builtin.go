package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// sink keeps results reachable so the compiler cannot drop the work.
var sink any

var (
	payload1K  = bytes.Repeat([]byte("benchsuite"), 103)[:1024]
	ints1K     = makeInts(1024)
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	record     = struct {
		ID    int      `json:"id"`
		Name  string   `json:"name"`
		Tags  []string `json:"tags"`
		Score float64  `json:"score"`
	}{ID: 42, Name: "benchsuite", Tags: []string{"a", "b", "c"}, Score: 0.97}
)

func makeInts(n int) []int {
	out := make([]int, n)
	x := uint32(2463534242)
	for i := range out {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out[i] = int(x % 100000)
	}
	return out
}

// Builtin returns a catalog populated with the standard workloads.
func Builtin() *Catalog {
	c := New()
	for _, w := range []struct {
		name, description string
		work              func()
	}{
		{"strings-builder", "build a 100-part string with strings.Builder", func() {
			var b strings.Builder
			for i := 0; i < 100; i++ {
				b.WriteString("x")
			}
			sink = b.String()
		}},
		{"strings-concat", "build a 100-part string with +=", func() {
			s := ""
			for i := 0; i < 100; i++ {
				s += "x"
			}
			sink = s
		}},
		{"fmt-sprintf", "format an int and a float with fmt.Sprintf", func() {
			sink = fmt.Sprintf("%d:%.2f", 12345, 3.14159)
		}},
		{"strconv-itoa", "format an int with strconv.Itoa", func() {
			sink = strconv.Itoa(12345)
		}},
		{"sha256-1k", "hash 1 KiB with crypto/sha256", func() {
			sink = sha256.Sum256(payload1K)
		}},
		{"json-marshal", "marshal a small struct with encoding/json", func() {
			sink, _ = json.Marshal(record)
		}},
		{"regexp-match", "match an email address with a compiled regexp", func() {
			sink = emailRegex.MatchString("someone@example.com")
		}},
		{"sort-1k", "sort a copy of 1024 ints", func() {
			s := slices.Clone(ints1K)
			slices.Sort(s)
			sink = s
		}},
		{"map-insert-1k", "insert 1024 keys into a fresh map", func() {
			m := make(map[int]int)
			for i, v := range ints1K {
				m[v] = i
			}
			sink = m
		}},
	} {
		if err := c.Register(w.name, w.description, w.work); err != nil {
			panic(err)
		}
	}
	return c
}

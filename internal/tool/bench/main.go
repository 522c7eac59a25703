// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare the Huffman codec with other entropy coders.
// Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go run main.go \
//		-tests   encRate,ratio        \
//		-codecs  huff,std,kp,huff0    \
//		-files   huffman.txt          \
//		-sizes   1e4,1e5,1e6
//
// Each table has one row per file and size. The delta column compares a codec
// against the first codec listed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/huffman/internal/tool/bench"
)

const defaultSizes = "1e4,1e5,1e6"

var (
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFiles() string {
	fis, err := os.ReadDir(defaultPaths())
	if err != nil {
		return ""
	}
	var s []string
	for _, fi := range fis {
		if !fi.IsDir() && !strings.HasSuffix(fi.Name(), ".go") {
			s = append(s, fi.Name())
		}
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	s := bench.Codecs()
	sort.Strings(s)
	for i, c := range s {
		if c == "huff" {
			// Ensure "huff" always appears first.
			s = append(append([]string{c}, s[:i]...), s[i+1:]...)
			break
		}
	}
	return strings.Join(s, ",")
}

// defaultPaths locates the testdata directory relative to this file.
func defaultPaths() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "testdata")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f2 := flag.String("paths", defaultPaths(), "List of paths to search for test files")
	f3 := flag.String("files", defaultFiles(), "List of input files to benchmark")
	f4 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var codecs, paths, files []string
	var tests, sizes []int
	paths = sep.Split(*f2, -1)
	files = sep.Split(*f3, -1)
	for _, s := range sep.Split(*f1, -1) {
		if _, ok := bench.Encoders[s]; !ok {
			log.Fatalf("unknown codec: %q", s)
		}
		codecs = append(codecs, s)
	}
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			log.Fatalf("invalid test: %q", s)
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f4, -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			log.Fatalf("invalid size: %q", s)
		}
		sizes = append(sizes, int(nf))
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files, codecs []string, tests, sizes []int) {
	for _, t := range tests {
		var results [][]bench.Result
		var names []string
		var title, suffix string

		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(codecs) == 0 {
			fmt.Print("\tSKIP: There are no codecs available.\n\n")
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(codecs) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestEncodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkEncoderSuite(codecs, files, sizes, tick)
		case bench.TestDecodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkDecoderSuite(codecs, files, sizes, tick)
		case bench.TestCompressRatio:
			title, suffix = "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(codecs, files, sizes, tick)
		default:
			log.Fatalf("unknown test: %d", t)
		}

		// Print all of the results.
		printResults(results, names, codecs, title, suffix)
		fmt.Println()
	}
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}

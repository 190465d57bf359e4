// Command somscan-bench times every marker finder strategy against a set
// of sample inputs and prints the elapsed wall-clock nanoseconds per
// strategy.
//
// With no flags it measures the builtin reference samples, three rounds
// each. A file (optionally .zst/.s2/.lz4 compressed) or a generated
// worst-case corpus of a given size can be measured instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arloliu/somscan/internal/bench"
	"github.com/arloliu/somscan/internal/corpus"
	"github.com/arloliu/somscan/marker"
)

func main() {
	rounds := flag.Int("rounds", bench.DefaultRounds, "Number of invocations per sample")
	input := flag.String("input", "", "Optional input file (.zst/.s2/.lz4 decompressed transparently)")
	size := flag.Int("size", 0, "Optional generated worst-case corpus size in bytes")

	flag.Parse()

	if *rounds <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -rounds must be positive\n")
		os.Exit(1)
	}
	if *input != "" && *size > 0 {
		fmt.Fprintf(os.Stderr, "Error: -input and -size are mutually exclusive\n")
		os.Exit(1)
	}

	samples, err := loadSamples(*input, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runAll(samples, *rounds)
}

func loadSamples(input string, size int) ([][]byte, error) {
	switch {
	case input != "":
		data, err := corpus.ReadInput(input)
		if err != nil {
			return nil, err
		}

		return [][]byte{data}, nil
	case size > 0:
		return [][]byte{corpus.Generate("somscan-bench", size)}, nil
	default:
		builtin := corpus.Samples()
		samples := make([][]byte, 0, len(builtin))
		for _, s := range builtin {
			samples = append(samples, s.Data)
		}

		return samples, nil
	}
}

func runAll(samples [][]byte, rounds int) {
	for _, kind := range marker.Kinds() {
		result := bench.Run(kind.String(), kind.Finder(), samples, rounds)
		result.Print(os.Stdout)
	}
}

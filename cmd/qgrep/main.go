// Command qgrep prints every offset at which a literal byte pattern occurs
// in a file, driving the search package's windowed-stream path end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pinkonio/qgram/search"
	"github.com/pinkonio/qgram/window"
)

func main() {
	windowSize := flag.Int("window", 1<<16, "stream window size in bytes")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: qgrep <pattern> <file>")
		os.Exit(2)
	}
	pattern, path := flag.Arg(0), flag.Arg(1)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s, err := search.NewFromBytes([]byte(pattern), search.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := window.NewStreamReader(f, *windowSize, info.Size())
	defer r.Close()

	ctx := context.Background()
	pos := int64(0)
	for {
		match, err := s.SearchForwardStream(ctx, r, pos, info.Size())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if match < 0 {
			break
		}
		fmt.Println(match)
		pos = match + 1
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jacoelho/linkstack"
	"github.com/jacoelho/linkstack/internal/xiter"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// releaseFuncs tear down a list of 1..n and return how many elements they
// visited and the first value seen.
var releaseFuncs = map[string]func(l *linkstack.List[int]) (count, first int){
	"drop": func(l *linkstack.List[int]) (int, int) {
		n := l.Len()
		first, _ := l.Peek()
		l.Drop()
		return n, first
	},
	"drain": func(l *linkstack.List[int]) (int, int) {
		first, _ := l.Peek()
		return xiter.Count(l.Drain()), first
	},
	"into": func(l *linkstack.List[int]) (int, int) {
		it := l.IntoIter()
		count, first := 0, 0
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if count == 0 {
				first = v
			}
			count++
		}
		return count, first
	},
	"iter": func(l *linkstack.List[int]) (int, int) {
		first, _ := l.Peek()
		count := xiter.Count(l.All())
		l.Drop()
		return count, first
	},
	"itermut": func(l *linkstack.List[int]) (int, int) {
		count := 0
		for p := range l.AllMut() {
			*p = -*p
			count++
		}
		first, _ := l.Pop()
		l.Drop()
		return count, -first
	},
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stackdrain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", 100_000, "number of elements to push")
	mode := fs.String("mode", "drop", "release mode: drop, drain, into, iter or itermut")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [-n count] [-mode mode]\n\n", os.Args[0]),
			writeln(stderr, "Pushes 1..n onto a linked stack and releases it."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 0 {
		return usageError(fs, stderr, &usageErr, "error: unexpected arguments")
	}
	if *count < 0 {
		return usageError(fs, stderr, &usageErr, "error: -n must not be negative")
	}
	release, ok := releaseFuncs[*mode]
	if !ok {
		return usageError(fs, stderr, &usageErr, fmt.Sprintf("error: unknown mode %q", *mode))
	}

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			_ = writef(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	l := linkstack.New[int]()
	for i := 1; i <= *count; i++ {
		l.Push(i)
	}

	if err := verify(*mode, *count, release, l); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}

	if err := writef(stdout, "%s: pushed %d, released %d\n", *mode, *count, *count); err != nil {
		return 1
	}
	return 0
}

func verify(mode string, n int, release func(*linkstack.List[int]) (int, int), l *linkstack.List[int]) error {
	if got := l.Len(); got != n {
		return fmt.Errorf("%s: length %d after pushing %d", mode, got, n)
	}
	visited, first := release(l)
	if visited != n {
		return fmt.Errorf("%s: visited %d elements, want %d", mode, visited, n)
	}
	if n > 0 && first != n {
		return fmt.Errorf("%s: first element %d, want %d", mode, first, n)
	}
	if !l.IsEmpty() {
		return fmt.Errorf("%s: %d elements left after release", mode, l.Len())
	}
	return nil
}

func usageError(fs *flag.FlagSet, stderr io.Writer, usageErr *error, msg string) int {
	if err := writeln(stderr, msg); err != nil {
		return 1
	}
	fs.Usage()
	if *usageErr != nil {
		return 1
	}
	return 2
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}

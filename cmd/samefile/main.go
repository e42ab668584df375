package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kei2100/samefile"
	"github.com/kei2100/samefile/keymap"
)

var (
	indexFilePath string
	showKeys      bool
)

func init() {
	flag.StringVar(&indexFilePath, "index-file", "", "index-file path. recorded identities accumulate across runs")
	flag.BoolVar(&showKeys, "keys", false, "print the identity key of each file")
}

func main() {
	flag.Usage = func() {
		command := filepath.Base(os.Args[0])
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n\n", command)
		fmt.Fprintf(out, "  %s [options ...] [file ...]\n\n", command)
		fmt.Fprintf(out, "Groups the given files by identity and prints files that are the same file.\n\n")
		fmt.Fprintf(out, "The options are as follows:\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	km, err := openKeyMap(indexFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "samefile: %v\n", err)
		os.Exit(1)
	}
	defer km.Close()

	for _, name := range flag.Args() {
		h, err := samefile.FromPath(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "samefile: %v\n", err)
			os.Exit(1)
		}
		if showKeys {
			fmt.Printf("%s\t%s\n", h.Key(), name)
		}
		if err := km.Add(h.Key(), name); err != nil {
			h.Close()
			fmt.Fprintf(os.Stderr, "samefile: %v\n", err)
			os.Exit(1)
		}
		h.Close()
	}

	for _, k := range km.Keys() {
		paths := km.Paths(k)
		if len(paths) < 2 {
			continue
		}
		fmt.Println(paths[0])
		for _, p := range paths[1:] {
			fmt.Printf("== %s\n", p)
		}
	}
}

func openKeyMap(path string) (keymap.KeyMap, error) {
	if path == "" {
		return keymap.InMemory(), nil
	}
	return keymap.Open(path)
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	goio "io"
	"iter"
	"log"
	"os"

	"github.com/ezrec/lispobj/config"
	"github.com/ezrec/lispobj/internal"
	"github.com/ezrec/lispobj/io"
	"github.com/ezrec/lispobj/obj"
	"github.com/ezrec/lispobj/script"
	"github.com/ezrec/lispobj/translate"
)

func main() {
	var configFile string
	var trim bool
	var wordSize int
	var deleteExpr string
	var splitExpr string
	var pick bool
	var count bool
	var plain bool
	var lang string
	var verbose bool

	flag.StringVar(&configFile, "c", "", ".toml configuration file")
	flag.BoolVar(&trim, "t", config.Default.TrimNewlines, "Trim trailing newlines from input lines")
	flag.IntVar(&wordSize, "w", config.Default.WordSize, "Native register width (32 or 64)")
	flag.StringVar(&deleteExpr, "d", "", "Delete lines where the Starlark expression on `v` is True")
	flag.StringVar(&splitExpr, "s", "", "Split lists after lines where the Starlark expression on `v` is True")
	flag.BoolVar(&pick, "p", false, "Print one randomly picked line of each list")
	flag.BoolVar(&count, "n", false, "Print the line count of each list as a register value")
	flag.BoolVar(&plain, "l", false, "Print lists as plain lines")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	cfg := config.Default
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cfg.TrimNewlines = trim
		case "w":
			cfg.WordSize = wordSize
		}
	})

	err := cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	list, read, err := readLines(files, cfg, verbose)
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("lispobj: %d lines read, %d kept", read, obj.Length(list))
	}

	if len(deleteExpr) != 0 {
		filter, err := script.NewFilter(deleteExpr)
		if err != nil {
			log.Fatal(err)
		}
		list = obj.DeleteIf(list, filter.Match)
		if filter.Err != nil {
			log.Fatal(filter.Err)
		}
		if verbose {
			log.Printf("lispobj: delete: %d lines remain", obj.Length(list))
		}
	}

	lists := []*obj.Value{list}
	if len(splitExpr) != 0 {
		filter, err := script.NewFilter(splitExpr)
		if err != nil {
			log.Fatal(err)
		}
		lists = obj.SplitIf(list, filter.Match)
		if filter.Err != nil {
			log.Fatal(filter.Err)
		}
		if verbose {
			log.Printf("lispobj: split: %d lists", len(lists))
		}
	}

	rnd := cfg.Random()
	regs := cfg.Obj()
	for _, sublist := range lists {
		switch {
		case pick:
			if obj.Length(sublist) != 0 {
				fmt.Println(obj.PickRandom(sublist, rnd))
			}
		case count:
			fmt.Println(regs.NewReg(uint64(obj.Length(sublist))))
		case plain:
			obj.PrintStrings(os.Stdout, sublist)
		default:
			fmt.Println(sublist)
		}
		sublist.Free()
	}
}

// readLines reads the named files (`-` is stdin) into one list of CString
// lines. All files are closed before it returns.
func readLines(files []string, cfg config.File, verbose bool) (list *obj.Value, read int, err error) {
	var readers []*io.Lines
	var seqs []iter.Seq[string]
	for _, name := range files {
		var input goio.Reader
		if name == "-" {
			input = os.Stdin
		} else {
			var inf *os.File
			inf, err = os.Open(name)
			if err != nil {
				return
			}
			defer inf.Close()
			input = inf
		}
		ln := &io.Lines{
			Input:        input,
			TrimNewlines: cfg.TrimNewlines,
			Verbose:      verbose,
		}
		readers = append(readers, ln)
		seqs = append(seqs, ln.Receive())
	}

	list = obj.FromLines(internal.IterSeqCount(internal.IterSeqConcat(seqs...), &read))
	for n, ln := range readers {
		if ln.Err != nil {
			list.Free()
			list = nil
			err = fmt.Errorf("%v: %w", files[n], ln.Err)
			return
		}
	}

	return
}

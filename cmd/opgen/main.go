package main

import (
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"opgen/extract"
	"opgen/opcode"
	"opgen/render"
)

func main() {
	var input string
	var output string
	var fix string
	var target string
	var dump bool
	var verbose bool

	flag.StringVar(&input, "p", "scripts/opcodes.pdf", "Reference document to scan")
	flag.StringVar(&output, "o", "src/op.zig", "Generated table file")
	flag.StringVar(&fix, "f", "", "Amendments file to apply")
	flag.StringVar(&target, "t", render.FormatZig.String(), "Output format (zig, go, json)")
	flag.BoolVar(&dump, "d", false, "Dump the opcode table")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	format, err := render.ParseFormat(target)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := extract.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer doc.Close()

	if verbose {
		log.Printf("%v: %v pages", input, doc.NumPage())
	}

	table := opcode.Table{}
	for pageno, entry := range opcode.ScanPages(doc.Pages()) {
		if verbose {
			log.Printf("page %v: %v = %v", pageno, entry.Ident(), entry.Hex)
			if entry.Mismatched() {
				log.Printf("page %v: %v decimal %v disagrees with %v", pageno, entry.Ident(), entry.Dec, entry.Hex)
			}
		}
		table = append(table, entry)
	}
	if err := doc.Err(); err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if len(fix) != 0 {
		inf, err := os.Open(fix)
		if err != nil {
			log.Fatalf("%v: %v", fix, err)
		}
		defer inf.Close()

		amd := &opcode.Amendments{}
		err = amd.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", fix, err)
		}
		table = amd.Apply(table)
	}

	if dump {
		spew.Dump(table)
	}

	err = format.File(output, table)
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("%v: %v opcodes", output, len(table))
	}
}

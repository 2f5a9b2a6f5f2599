package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/0xCCF4/udump/dump"
	"github.com/0xCCF4/udump/trace"
	"github.com/0xCCF4/udump/ucode"
)

// DEFAULT_CPUID selects the Goldmont variant the dumps were first taken on.
const DEFAULT_CPUID = "0x000506CA"

func main() {
	var cpuid string
	var dir string
	var output string

	flag.StringVar(&cpuid, "c", DEFAULT_CPUID, "cpuid of the target CPU variant")
	flag.StringVar(&dir, "d", ".", "directory holding the array dumps")
	flag.StringVar(&output, "o", "-", "output file")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	fsys := os.DirFS(dir)

	rom, err := dump.LoadRom(fsys, cpuid)
	if err != nil {
		if variants, _err := dump.Variants(fsys); _err == nil && len(variants) != 0 {
			log.Printf("%v: available variants: %v", dir, strings.Join(variants, ", "))
		}
		log.Fatalf("%v: %v", cpuid, err)
	}

	labels, err := dump.LoadLabels(fsys, dump.LABEL_FILE)
	if err != nil {
		log.Fatalf("%v: %v", dump.LABEL_FILE, err)
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	tracer := &trace.Tracer{
		Rom:           rom,
		Labels:        labels,
		DecodeUop:     ucode.DecodeUop,
		DecodeSeqword: ucode.DecodeSeqword,
		Output:        out,
	}

	if err := tracer.Run(); err != nil {
		log.Fatal(err)
	}
}

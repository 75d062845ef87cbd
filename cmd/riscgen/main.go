// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/ezrec/riscgen/arm"
	"github.com/ezrec/riscgen/corpus"
	"github.com/ezrec/riscgen/risc"
)

func listTemplates(templates []*risc.Template) {
	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("%d templates", len(templates)))
	tbl.AppendHeader(table.Row{"Mnemonic", "External", "Pattern", "Mask", "Operands", "Reference"})

	for _, t := range templates {
		value, mask := t.Pattern()
		var names []string
		for _, op := range t.Operands() {
			names = append(names, op.Name())
		}
		tbl.AppendRow(table.Row{
			t.Mnemonic(),
			t.ExternalName(),
			fmt.Sprintf("0x%08x", value),
			fmt.Sprintf("0x%08x", mask),
			fmt.Sprint(names),
			t.Reference(),
		})
	}

	fmt.Println(tbl.Render())
}

func findTemplate(templates []*risc.Template, mnemonic string) *risc.Template {
	for _, t := range templates {
		if t.Mnemonic() == mnemonic {
			return t
		}
	}
	return nil
}

func main() {
	var compile string
	var output string
	var disassemble bool
	var list bool
	var explain string
	var check bool
	var mode string
	var limit int
	var workers int
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&output, "o", "-", "Assembler output (binary, or a listing on '-')")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the hex words given as arguments")
	flag.BoolVar(&list, "l", false, "List the instruction templates")
	flag.StringVar(&explain, "x", "", "Dump the named instruction template")
	flag.BoolVar(&check, "t", false, "Self check the instruction templates")
	flag.StringVar(&mode, "m", "sparse", "Test case mode (sparse, exhaustive)")
	flag.IntVar(&limit, "limit", 0, "Test cases per template (0 is unlimited)")
	flag.IntVar(&workers, "j", 0, "Concurrent templates under test (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if !disassemble && flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	templates := arm.Templates()

	if list {
		listTemplates(templates)
	}

	if len(explain) != 0 {
		t := findTemplate(templates, explain)
		if t == nil {
			log.Fatalf("%v: no such template", explain)
		}
		spew.Dump(t)
	}

	if disassemble {
		dis := risc.NewDisassembler(templates...)
		for _, arg := range flag.Args() {
			word, err := strconv.ParseUint(arg, 16, 32)
			if err != nil {
				log.Fatalf("%v: %v", arg, err)
			}
			in, err := dis.Disassemble(uint32(word))
			if err != nil {
				fmt.Printf("%08x\t.word 0x%08x\t; %v\n", word, word, err)
				continue
			}
			fmt.Printf("%08x\t%v\n", word, in)
		}
	}

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := risc.NewAssembler(templates...)
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if output == "-" {
			for _, op := range prog.Opcodes {
				fmt.Printf("%08x: %08x\t%v\n", op.Addr, op.Word, op.Words)
			}
		} else {
			err = os.WriteFile(output, prog.Binary(arm.ByteOrder), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}
	}

	if check {
		gen := &corpus.Generator{
			Limit:   limit,
			Workers: workers,
			Verbose: verbose,
		}
		switch mode {
		case corpus.MODE_SPARSE.String():
			gen.Mode = corpus.MODE_SPARSE
		case corpus.MODE_EXHAUSTIVE.String():
			gen.Mode = corpus.MODE_EXHAUSTIVE
		default:
			log.Fatalf("%v: unknown test case mode", mode)
		}

		ctx, cancel := context.WithCancel(context.Background())
		atexit.Register(cancel)

		cases, err := gen.SelfCheck(ctx, templates...)
		if err != nil {
			atexit.Fatalf("self check: %v", err)
		}
		log.Printf("self check: %d cases", cases)

		cases, err = gen.Validate(ctx, corpus.NewLoopback(templates...), templates...)
		if err != nil {
			atexit.Fatalf("loopback: %v", err)
		}
		log.Printf("loopback: %d cases", cases)
	}

	atexit.Exit(0)
}

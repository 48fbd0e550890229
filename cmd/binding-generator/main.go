// Package main provides the CLI entrypoint for binding-generator.
//
// binding-generator reads a WebGPU interface description (dawn.json-style
// YAML or JSON), links it into a type model, and emits Swift binding
// sources:
//   - Enums.swift / OptionSets.swift / Structs.swift / Classes.swift
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"binding-generator/internal/gen"
	"binding-generator/internal/model"
	"binding-generator/internal/schema"

	"github.com/davecgh/go-spew/spew"
)

func main() {
	descPath := flag.String("desc", "", "path to the interface description (YAML or JSON)")
	outDir := flag.String("out", "Generated", "output directory for Swift sources")
	tags := flag.String("tags", "", "comma-separated enabled tags (empty enables everything)")
	dump := flag.Bool("dump", false, "dump the linked model instead of generating")
	flag.Parse()

	if *descPath == "" {
		fmt.Fprintln(os.Stderr, "binding-generator: -desc is required")
		flag.Usage()
		os.Exit(2)
	}

	err := run(*descPath, *outDir, *tags, *dump)
	if err != nil {
		fmt.Fprintln(os.Stderr, "binding-generator:", err)
		os.Exit(1)
	}
}

func run(descPath, outDir, tags string, dump bool) error {
	desc, err := schema.LoadFile(descPath)
	if err != nil {
		return err
	}

	var enabledTags []string
	if tags != "" {
		enabledTags = strings.Split(tags, ",")
	}

	m, err := model.New(desc, enabledTags)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	if dump {
		spew.Dump(m.Types())
		return nil
	}

	files, err := gen.New(gen.DefaultConfig()).Generate(m)
	if err != nil {
		return err
	}

	err = gen.WriteFiles(files, outDir)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println("wrote", f.Filename)
	}

	return nil
}

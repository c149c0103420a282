package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/LyricLy/tapec"
)

type args struct {
	sourcePath *string

	astOnly *bool

	pretty    *bool
	highlight *bool

	run              *bool
	disableMainCheck *bool
	outputPath       *string
}

func readArgs() *args {
	a := &args{
		sourcePath: flag.String("source", "", "Path to the source file"),

		astOnly: flag.Bool("ast-only", false, "Parse and print the function list, without compiling"),

		pretty:    flag.Bool("pretty", false, "Pretty-print the emitted program instead of raw output"),
		highlight: flag.Bool("highlight", false, "Highlight the pretty-printed program with ANSI colors"),

		run:              flag.Bool("run", false, "Execute the emitted program against stdin, writing to stdout"),
		disableMainCheck: flag.Bool("disable-main-check", false, "Skip the upfront check that a `main` function is defined"),
		outputPath:       flag.String("output", "/dev/stdout", "Path to write the emitted program to"),
	}
	flag.Parse()
	return a
}

// buildConfig folds the parsed flags into the CLI-exposed toggle store, so
// the pretty, highlight, run and main-check decisions below are read back
// out of cfg rather than off the flag pointers directly; -source,
// -ast-only and -output are read off their flag pointers.
func buildConfig(a *args) *tapec.Config {
	cfg := tapec.NewConfig()
	cfg.SetBool("output.pretty", *a.pretty)
	cfg.SetBool("output.highlight", *a.highlight)
	cfg.SetBool("output.run", *a.run)
	cfg.SetBool("parser.disable_main_check", *a.disableMainCheck)
	return cfg
}

func main() {
	a := readArgs()
	if *a.sourcePath == "" {
		glog.Exit("source file not given, pass -source")
	}
	cfg := buildConfig(a)

	src, err := os.ReadFile(*a.sourcePath)
	if err != nil {
		glog.Exitf("can't read source: %s", err)
	}

	defs, err := tapec.Parse(src)
	if err != nil {
		glog.Exitf("parse error: %s", err)
	}

	if *a.astOnly {
		for _, d := range defs {
			glog.Infof("function %s (%d param(s))", d.Name, len(d.Params))
		}
		return
	}

	compilerCfg := tapec.CompilerConfig{
		Verbose:          bool(glog.V(1)),
		DisableMainCheck: cfg.GetBool("parser.disable_main_check"),
	}
	program, err := tapec.Compile(defs, compilerCfg)
	if err != nil {
		glog.Exitf("compile error: %s", err)
	}

	if cfg.GetBool("output.run") {
		if err := tapec.Run(program, os.Stdin, os.Stdout); err != nil {
			glog.Exitf("runtime error: %s", err)
		}
		return
	}

	output := program
	switch {
	case cfg.GetBool("output.highlight"):
		output = tapec.HighlightPrettyString(program)
	case cfg.GetBool("output.pretty"):
		output = tapec.PrettyString(program)
	}

	if err := os.WriteFile(*a.outputPath, []byte(output), 0644); err != nil {
		glog.Exitf("can't write output: %s", err)
	}
}

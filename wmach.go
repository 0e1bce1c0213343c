// This file is part of Wmach.
//
// Wmach is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wmach is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wmach.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wmach/wmach/compiler"
	"github.com/wmach/wmach/curated"
	"github.com/wmach/wmach/hardware"
	"github.com/wmach/wmach/hardware/tape"
	"github.com/wmach/wmach/logger"
	"github.com/wmach/wmach/modalflag"
	"github.com/wmach/wmach/performance"
	"github.com/wmach/wmach/program"
	"github.com/wmach/wmach/statsview"
	"github.com/wmach/wmach/terminal"
	"github.com/wmach/wmach/version"
)

// Error patterns for errors generated by the main package.
const (
	NoSourceFile       = "no source file specified"
	TooManySourceFiles = "too many source files specified"
	FileError          = "%v"
)

// the tape size used when the -words flag is not given. 64 words is 0x1000
// bits, enough for small programs without being wasteful.
const defaultTapeWords = 64

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "CHECK", "GRAPH", "PERFORMANCE", "VERSION")

	echoLog := md.AddBool("log", false, "echo the application log to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "CHECK":
		err = check(md)
	case "GRAPH":
		err = graph(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		ver, rev := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if rev != "" {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(1)
	}
}

// compile the single source file named on the command line.
func compileArg(md *modalflag.Modes) (*program.Program, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf(NoSourceFile)
	case 1:
		return compiler.CompileFile(md.GetArg(0))
	default:
		return nil, curated.Errorf(TooManySourceFiles)
	}
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	words := md.AddInt("words", defaultTapeWords, "size of the tape in 64-bit words")
	dump := md.AddBool("dump", false, "print the tape to stderr when the run ends")
	rawDump := md.AddString("rawdump", "", "write the raw tape to the named file when the run ends")
	inFile := md.AddString("in", "", "read machine input from the named file instead of stdin")
	outFile := md.AddString("out", "", "write machine output to the named file instead of stdout")
	rawTerm := md.AddBool("term", false, "switch the terminal into raw mode for the run")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	prog, err := compileArg(md)
	if err != nil {
		return err
	}

	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer f.Close()
		input = f
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer f.Close()
		output = f
	}

	if *rawTerm {
		rt, err := terminal.NewRawInput(os.Stdin)
		if err != nil {
			return err
		}
		defer rt.Restore()
	}

	mach, err := hardware.NewMachine(make([]tape.Cell, *words), input, output)
	if err != nil {
		return err
	}
	if err := mach.Attach(prog); err != nil {
		return err
	}

	runErr := mach.Run(nil)

	// the tape is inspectable even after an aborted run. whatever the
	// program committed before the failure is the observable result
	if *dump {
		fmt.Fprintln(os.Stderr, mach.Tape.String())
	}
	if *rawDump != "" {
		f, err := os.Create(*rawDump)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer f.Close()
		if err := mach.Tape.Dump(f); err != nil {
			return err
		}
	}

	return runErr
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	listing := md.AddBool("listing", false, "print the compiled program")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	prog, err := compileArg(md)
	if err != nil {
		return err
	}

	if *listing {
		fmt.Print(prog)
	}

	blocks := len(prog.Blocks())
	fmt.Printf("%s: ok (%d blocks)\n", md.GetArg(0), blocks)

	return nil
}

func graph(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	prog, err := compileArg(md)
	if err != nil {
		return err
	}

	return prog.WriteGraph(os.Stdout)
}

// zeroReader supplies an endless stream of zero bytes, keeping performance
// measurement independent of any real input.
type zeroReader struct{}

func (zeroReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	return len(b), nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	words := md.AddInt("words", defaultTapeWords, "size of the tape in 64-bit words")
	duration := md.AddString("duration", "5s", "run duration (0 runs the program to its halt)")
	profile := md.AddString("profile", "none", "profiles to gather: cpu, mem, all or none")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the statsview server (if available: %v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	prog, err := compileArg(md)
	if err != nil {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf(performance.PerformanceError, err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	mach, err := hardware.NewMachine(make([]tape.Cell, *words), zeroReader{}, io.Discard)
	if err != nil {
		return err
	}
	if err := mach.Attach(prog); err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, mach, dur)
}

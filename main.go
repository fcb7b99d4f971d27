package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/m-manu/bucket-set/driver"
	"github.com/m-manu/bucket-set/fmte"
	flag "github.com/spf13/pflag"
)

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeInvalidFlags
	exitCodeInputError
	exitCodeRunError
	exitCodeVerificationError
)

var flags struct {
	isHelp    func() bool
	getConfig func() driver.Config
	getInput  func() string
	isVerbose func() bool
	isQuiet   func() bool
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
	}
}

func setupUsage() {
	flag.Usage = func() {
		fmte.PrintfErr("Run \"bucket-set --help\" for usage\n")
	}
}

func showHelpAndExit() {
	flag.CommandLine.SetOutput(os.Stdout)
	fmt.Printf(`bucket-set inserts integers into a bucket hash set that doubles its bucket array ` +
		`whenever it holds more than two insertions per bucket, and reports how the set grew.

Usage:
	 bucket-set <flags>

flags: (all optional)
`)
	flag.PrintDefaults()
	os.Exit(exitCodeSuccess)
}

func setupHelpOpt() {
	helpPtr := flag.BoolP("help", "h", false, "display help")
	flags.isHelp = func() bool {
		return *helpPtr
	}
}

func setupConfigOpts() {
	defaults := driver.DefaultConfig()
	countPtr := flag.IntP("count", "n", defaults.Count, "number of random values to insert")
	capacityPtr := flag.IntP("capacity", "c", defaults.Capacity, "initial number of buckets")
	seedPtr := flag.Int64P("seed", "s", defaults.Seed, "seed for random values")
	verifyPtr := flag.Bool("verify", defaults.Verify,
		"cross-check the set against a reference set after inserting (caution: uses extra memory!)")
	flags.getConfig = func() driver.Config {
		cfg := driver.Config{
			Count:    *countPtr,
			Capacity: *capacityPtr,
			Seed:     *seedPtr,
			Verify:   *verifyPtr,
		}
		if err := cfg.Validate(); err != nil {
			fmte.PrintfErr("error: %+v\n", err)
			flag.Usage()
			os.Exit(exitCodeInvalidFlags)
		}
		return cfg
	}
}

func setupInputOpt() {
	inputPtr := flag.StringP("input", "i", "",
		"path to file containing newline separated integers to insert\n"+
			"(if this is set, random values are not generated)")
	flags.getInput = func() string {
		return *inputPtr
	}
}

func setupOutputOpts() {
	verbosePtr := flag.BoolP("verbose", "v", false, "print every rehash")
	quietPtr := flag.BoolP("quiet", "q", false, "print nothing but errors")
	flags.isVerbose = func() bool {
		return *verbosePtr
	}
	flags.isQuiet = func() bool {
		return *quietPtr
	}
}

func setupFlags() {
	setupHelpOpt()
	setupConfigOpts()
	setupInputOpt()
	setupOutputOpts()
	setupUsage()
}

func main() {
	defer handlePanic()
	setupFlags()
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flag.NArg() != 0 {
		fmte.PrintfErr("error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(exitCodeInvalidFlags)
	}
	if flags.isQuiet() {
		fmte.Off()
	} else if flags.isVerbose() {
		fmte.VerboseOn()
	}
	cfg := flags.getConfig()
	values, inputErr := loadValues(cfg, flags.getInput())
	if inputErr != nil {
		fmte.PrintfErr("error: %+v\n", inputErr)
		os.Exit(exitCodeInputError)
	}
	runErr := bucketSet(cfg, values)
	if errors.Is(runErr, driver.ErrVerification) {
		fmte.PrintfErr("error: %+v\n", runErr)
		os.Exit(exitCodeVerificationError)
	} else if runErr != nil {
		fmte.PrintfErr("error while running: %+v\n", runErr)
		os.Exit(exitCodeRunError)
	}
}

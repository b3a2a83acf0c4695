package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "embed"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/ranok/entro/catalog"
	"github.com/ranok/entro/engine"
	"github.com/ranok/entro/mask"
	"github.com/ranok/entro/util"
)

//go:embed VERSION
var entroVersion string

// All command-line arguments
var (
	Mode = flag.String("m", "analyze", "Mode [analyze, crack, generate, counts]")

	MaskStr  = flag.String("mask", "", "Pattern mask, space-separated class tokens (e.g. \"lower lower digit\", \"adjective noun\")")
	Template = flag.String("template", "", "Hashcat-style template converted to a mask (e.g. \"?l?l?d?d\"), used when -mask is not given")

	DictPath   = flag.String("dict", "", "Path to a JSON dictionary, enables word classes (noun, verb, ...). Defaults to $ENTRO_DICT")
	FilterName = flag.String("filter", "", "Named dictionary filter applied up front [shorter_than_10, shorter_than_8, longer_than_3, alpha_only, ascii_only]")

	HashStr        = flag.String("hash", "", "Single target SHA-1 digest (hex) to recover")
	HashFile       = flag.String("hashes", "", "Path to a JSON list of target SHA-1 digests to count matches against")
	TimeoutSeconds = flag.Int("timeout", 0, "Crack search budget in seconds, 0 means unbounded")

	RateStr = flag.String("rate", "", "Hash rate for crack-time estimates (e.g. \"623G\"). Defaults to $ENTRO_RATE, then 623G")

	ShowTime = flag.Bool("time", true, "Report elapsed time for crack results")
)

func usage(exitCode int) {
	flag.Usage()
	os.Exit(exitCode)
}

func main() {
	fmt.Printf(`entro v%s
Passphrase entropy analysis and mask-based hash cracking

`, entroVersion)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE: %s [OPTION]...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	// Optional .env defaults for the lookup resources
	_ = godotenv.Load()
	if *DictPath == "" {
		*DictPath = os.Getenv("ENTRO_DICT")
	}
	if *RateStr == "" {
		*RateStr = os.Getenv("ENTRO_RATE")
	}

	hashRate := engine.DefaultHashRate
	if *RateStr != "" {
		var err error
		hashRate, err = util.ParseHashRate(*RateStr)
		if err != nil {
			pterm.Error.Printf("failed to parse hash rate (-rate): %s\n", err)
			fmt.Println()
			usage(1)
		}
	}

	// Pick the class source: fixed character classes, or a word catalog
	// with the characters absorbed so every token resolves uniformly
	var src engine.Source
	var lex *catalog.Lexicon

	if *DictPath != "" {
		var err error
		lex, err = catalog.Load(*DictPath)
		if err != nil {
			pterm.Error.Printf("failed to load dictionary (-dict): %s\n", err)
			os.Exit(1)
		}
		lex.AbsorbCharset(catalog.NewCharset())

		if *FilterName != "" {
			keep, ok := catalog.Filters[*FilterName]
			if !ok {
				pterm.Error.Printf("unknown dictionary filter (-filter) \"%s\", see usage\n", *FilterName)
				fmt.Println()
				usage(1)
			}

			before := lex.Len()
			lex.Filter(keep, true)
			pterm.Info.Printf("Filter \"%s\" kept %d of %d entries\n", *FilterName, lex.Len(), before)
		}

		src = lex
	} else {
		if *FilterName != "" {
			pterm.Error.Printf("dictionary filter (-filter) provided, but dictionary path (-dict) is missing\n")
			fmt.Println()
			usage(1)
		}

		src = catalog.NewCharset()
	}

	eng := engine.New(src)

	if *Mode == "counts" {
		if lex == nil {
			pterm.Error.Printf("mode (-m) \"counts\" needs a dictionary (-dict)\n")
			fmt.Println()
			usage(1)
		}
		printCounts(lex)
		return
	}

	var m mask.Mask
	switch {
	case *MaskStr != "":
		m = mask.Parse(*MaskStr)
	case *Template != "":
		m = mask.FromTemplate(*Template)
		pterm.Info.Printf("Template \"%s\" converted to mask \"%s\"\n", *Template, m)
	default:
		pterm.Error.Printf("provide a pattern with -mask or -template, see usage\n")
		fmt.Println()
		usage(1)
	}

	switch *Mode {
	case "analyze":
		runAnalyze(eng, m, hashRate)
	case "crack":
		runCrack(eng, m)
	case "generate":
		runGenerate(eng, m)
	default:
		pterm.Error.Printf("invalid value for mode (-m) \"%s\", see usage\n", *Mode)
		fmt.Println()
		usage(1)
	}
}

func runAnalyze(eng *engine.Engine, m mask.Mask, hashRate int64) {
	poss, err := eng.Possibilities(m)
	if err != nil {
		pterm.Error.Printf("failed to analyze mask: %s\n", err)
		os.Exit(1)
	}

	bits, err := engine.Bits(poss)
	if err != nil {
		pterm.Error.Printf("failed to compute entropy: %s\n", err)
		os.Exit(1)
	}

	est, err := engine.EstimateCrackTime(poss, hashRate)
	if err != nil {
		pterm.Error.Printf("failed to estimate crack time: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Computed %s or approximately 2^%.4f bits of entropy\n\n", poss.String(), bits)
	fmt.Printf("Time to crack: %.2f hrs (%.2f days) @ %s M h/s\n", est.Hours, est.Days, engine.FormatRate(hashRate))
}

func runCrack(eng *engine.Engine, m mask.Mask) {
	var target engine.Target

	switch {
	case *HashFile != "":
		var err error
		target, err = engine.LoadHashSet(*HashFile)
		if err != nil {
			pterm.Error.Printf("failed to load hash list (-hashes): %s\n", err)
			os.Exit(1)
		}
	case *HashStr != "":
		target = engine.SingleTarget(*HashStr)
	default:
		pterm.Error.Printf("mode (-m) \"crack\" needs a target, provide -hash or -hashes\n")
		fmt.Println()
		usage(1)
	}

	// Ctrl+C lands in a clean Interrupted result with the partial count
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.Start("Searching candidate space..")

	res, err := eng.Crack(ctx, m, target, time.Duration(*TimeoutSeconds)*time.Second)
	if err != nil {
		spinner.Fail("Search aborted")
		pterm.Error.Printf("failed to crack: %s\n", err)
		os.Exit(1)
	}

	elapsed := int(res.Elapsed.Seconds())

	switch res.Outcome {
	case engine.OutcomeFound:
		spinner.Success(fmt.Sprintf("FOUND PASSWORD!! \"%s\"", res.Plaintext))
		if *ShowTime {
			pterm.Info.Printf("Took %d seconds to crack\n", elapsed)
		}
	case engine.OutcomeExhausted:
		if target.IsSet() {
			spinner.Success(fmt.Sprintf("Cracked %d of %d hashes over the full candidate space", res.Matches, target.Size()))
		} else {
			spinner.Warning("Exhausted the candidate space without a match")
		}
		if *ShowTime {
			pterm.Info.Printf("Search ran for %d seconds\n", elapsed)
		}
	case engine.OutcomeTimeout:
		spinner.Warning(fmt.Sprintf("Timed out with %d matches so far", res.Matches))
	case engine.OutcomeInterrupted:
		spinner.Warning("Interrupted")
		if *ShowTime {
			pterm.Info.Printf("Cracked %d passwords in %d seconds\n", res.Matches, elapsed)
		}
	}
}

func runGenerate(eng *engine.Engine, m mask.Mask) {
	pw, err := eng.Generate(m)
	if err != nil {
		pterm.Error.Printf("failed to generate passphrase: %s\n", err)
		os.Exit(1)
	}

	pterm.Success.Printf("%s\n", pw)
}

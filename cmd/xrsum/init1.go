package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

var pNoCodesDefault = false
var pHelp, pBase64, pBase85, pObf, pNoCodes, pQuiet, pRaw, pStrict, pString, pTime, pDebug bool
var pBackend, pMode = "", ""
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVar(&pBase85, "b85", false,
		purp+"render digests in base85"+zero)

	BoolVar(&pObf, "obf", false,
		purp+"render digests in obfuscated base64"+zero)

	StringVar(&pBackend, "backend", "auto",
		purp+"pin the compression backend (auto, scalar, vectorized,"+zero+
			n+purp+"hardware, gpu-batch, pipeline-sim, dispatch); unavailable"+zero+
			n+purp+"choices fall back to scalar"+zero)

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	StringVar(&pMode, "mode", "secure",
		purp+"set the hashing mode (secure, accelerated, fast)"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pRaw, "raw", false,
		purp+"sequentially return the unencoded, non-deliminated bytes"+zero+
			n+purp+"of each digest"+zero+" (enables --strict)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause xrsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
	pStrict = pStrict || pRaw || pDebug
}

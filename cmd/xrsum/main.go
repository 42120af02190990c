package main

import (
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
	"unicode/utf8"
	"unsafe"

	"github.com/cryptoxr/cryptoxr/base64x"
	"github.com/cryptoxr/cryptoxr/sha90r"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "xrsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "SHA256-90R checksums, on whichever backend this machine can run.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [--backend <name>] [--quiet|no-codes] [--strict|raw] -|PATH..."+n,
		spaces, "[-bt] [--backend <name>] [--quiet|no-codes] [--strict|raw] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for sha90r: It handles various flags and an unlimited
// number of arguments, processing files as required by the command-line operator.
func program() int {
	if pDebug {
		cf, err := os.Create("cpu.prof")
		_ = pprof.StartCPUProfile(cf)
		defer pprof.StopCPUProfile()

		tf, err := os.Create("goroutine.prof")
		defer pprof.Lookup("goroutine").WriteTo(tf, 0)

		af, err := os.Create("allocs.prof")
		defer pprof.Lookup("allocs").WriteTo(af, 0)
		if err != nil {
			panic(err)
		}
	}

	if pHelp || NArg() == 0 {
		help()
		return success
	}

	backend, ok := sha90r.ParseBackend(pBackend)
	if !ok {
		panic("Unknown backend: " + pBackend)
	}
	mode := sha90r.Secure
	switch pMode {
	case "secure":
	case "accelerated":
		mode = sha90r.Accelerated
	case "fast":
		mode = sha90r.Fast
	default:
		panic("Unknown mode: " + pMode)
	}

	var enc *base64x.Encoding
	switch {
	case pBase64:
		enc = base64x.StdEncoding
	case pBase85:
		enc = base64x.B85Encoding
	case pObf:
		enc = base64x.ObfEncoding
	}

	digest := sha90r.NewWithBackend(backend, mode)
	sum := make([]byte, 0, sha90r.Size)

	for i, target := range Args() {
		if i > 0 {
			digest.Reset()
		}
		start, delta := time.Now(), ""

		if pString {
			/* hash.Hash does not implement (*Writer).WriteString. */
			if _, err := digest.Write(strToBytes(target)); err != nil {
				warn(err)
				continue
			}
		} else if target == "-" || target == os.Stdin.Name() {
			if _, err := io.Copy(digest, os.Stdin); err != nil {
				warn(err)
				continue
			}
			go os.Stdin.Close() /* STDIN should not be reused. */
		} else {
			if file, err := os.Open(target); err != nil {
				warn(err)
				continue
			} else {
				_, err = io.Copy(digest, file)
				go file.Close()
				if err != nil {
					warn(err)
					continue
				}
			}
		}

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		sum = digest.Sum(sum[:0])
		if pRaw {
			os.Stdout.Write(sum)
			continue
		}
		if !pQuiet {
			Print(yell)
		}
		if enc != nil {
			os.Stdout.WriteString(enc.EncodeToString(sum))
		} else {
			os.Stdout.WriteString(hex.EncodeToString(sum))
		}

		if pQuiet {
			os.Stdout.WriteString(n)
		} else if pString {
			Print(zero, `  "`, target, `"`, zero, delta, n)
		} else if pNoCodes {
			Print(`  `, filepath.Clean(target), delta, n)
		} else {
			Print(zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !(pQuiet || pRaw) {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// strToBytes converts a string into a byte slice without copying; this is safe so long as the
// underlying memory is never modified during its lifetime.
func strToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	warnings++
}

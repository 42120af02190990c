//go:build windows

package main

import (
	"os"

	. "golang.org/x/sys/windows"
)

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

func init() {
	for _, v := range [2]Handle{
		Handle(os.Stdout.Fd()),
		Handle(os.Stderr.Fd()),
	} {
		var mode uint32
		err := GetConsoleMode(v, &mode)
		if err != nil {
			pNoCodesDefault = true
			break
		}
		if mode&ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0 {
			err = SetConsoleMode(v,
				mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING)
			if err != nil {
				pNoCodesDefault = true
				break
			}
		}
	}
	pNoCodes = pNoCodesDefault
}

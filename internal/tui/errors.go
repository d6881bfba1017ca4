// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/fieldsync/internal/app"
	mapset "github.com/deckarep/golang-set/v2"
)

// ErrUserQuit is returned by RunSync when the user stopped the cycle.
var ErrUserQuit = errors.New("sync cancelled by user")

// transportCodes are the report keys that mean the server was never
// reached.
var transportCodes = mapset.NewSet(app.CodeNetwork, app.CodeCancelled)

// renderErrors lists the error report ordered by code: local codes first,
// then HTTP statuses.
func renderErrors(report map[int]string) string {
	if len(report) == 0 {
		return ""
	}

	codes := make([]int, 0, len(report))
	for code := range report {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	var b strings.Builder
	for i, code := range codes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%5d  %s", code, report[code])
	}

	if onlyTransport(codes) {
		b.WriteString("\n\nthe server is unreachable, local data is kept until the next sync")
	}
	return b.String()
}

func onlyTransport(codes []int) bool {
	for _, code := range codes {
		if !transportCodes.Contains(code) {
			return false
		}
	}
	return true
}

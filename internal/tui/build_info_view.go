// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/fieldsync/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("fieldsync ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" (")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString(", ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString(")")

	return helpStyle.Render(b.String())
}

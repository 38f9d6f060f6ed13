// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status formats run results for console display.
package status

import (
	"fmt"

	"github.com/fatih/color"
)

// 📊 Summary describes one completed anonymization run
type Summary struct {
	InputFile    string // Path that was read
	OutputFile   string // Path that was written
	Encoding     string // Resolved encoding name
	Replacements int    // Number of tokens replaced
}

// 🎯 FormatSummary formats a run summary for display
func FormatSummary(s Summary) string {
	prefix := color.GreenString("✓")
	if s.Replacements == 0 {
		prefix = color.HiBlackString("-")
	}

	detail := fmt.Sprintf("%d columns anonymized", s.Replacements)
	if s.Replacements == 0 {
		detail = "no matching columns, copied unchanged"
	} else if s.Replacements == 1 {
		detail = "1 column anonymized"
	}

	return fmt.Sprintf("%s %s → %s (%s, %s)", prefix, s.InputFile, s.OutputFile, detail, s.Encoding)
}

// FormatError formats a failure with its category for display
func FormatError(category string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", color.RedString("✗"), category, err)
}

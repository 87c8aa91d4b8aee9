// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package util

import (
	"strings"
)

// Replacement is a single whole-word substitution.  Order matters to
// callers: fully qualified names must be replaced before short names so
// that a short name is never rewritten inside a longer name that has
// already been handled.
type Replacement struct {
	Old string
	New string
}

// isLabelByte reports whether b can appear in a DNS label.  Hostname
// tokens are made of labels, so a "word" for substitution purposes is a
// run of label bytes.  Dots separate labels and act as word boundaries,
// which is what lets a short name match the first label of a fully
// qualified name.
func isLabelByte(b byte) bool {
	return b == '-' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// ReplaceWord substitutes every whole-word occurrence of old with new,
// leaving all other content and line structure intact.
func ReplaceWord(s, old, new string) string {
	if old == "" || old == new {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], old)
		if j < 0 {
			out.WriteString(s[i:])
			break
		}
		j += i
		end := j + len(old)
		startOk := j == 0 || !isLabelByte(s[j-1])
		endOk := end == len(s) || !isLabelByte(s[end])
		if startOk && endOk {
			out.WriteString(s[i:j])
			out.WriteString(new)
			i = end
		} else {
			out.WriteString(s[i : j+1])
			i = j + 1
		}
	}
	return out.String()
}

// ReplaceWords applies each replacement in order over the whole input.
func ReplaceWords(s string, subs []Replacement) string {
	for _, r := range subs {
		s = ReplaceWord(s, r.Old, r.New)
	}
	return s
}

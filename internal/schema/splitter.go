// Copyright 2025 Greenmask
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

package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// splitTopLevel - splits s on the runes matched by isSep, ignoring separators
// nested in parentheses. This keeps "number(10, 2)" in one piece. Empty pieces
// are dropped when keepEmpty is false.
func splitTopLevel(s string, isSep func(r rune) bool, keepEmpty bool) ([]string, error) {
	var res []string
	var depth int
	start := 0
	appendPiece := func(piece string) {
		piece = strings.TrimSpace(piece)
		if piece != "" || keepEmpty {
			res = append(res, piece)
		}
	}
	for idx, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unexpected \")\" at position %d: %w", idx, ErrMalformedDDL)
			}
		case depth == 0 && isSep(r):
			appendPiece(s[start:idx])
			start = idx + 1
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses: %w", ErrMalformedDDL)
	}
	appendPiece(s[start:])
	return res, nil
}

func splitColumnDefinitions(body string) ([]string, error) {
	return splitTopLevel(body, func(r rune) bool { return r == ',' }, true)
}

func tokenize(definition string) ([]string, error) {
	return splitTopLevel(definition, unicode.IsSpace, false)
}

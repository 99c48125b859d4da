// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package killring

import (
	"strings"
	"unicode"
)

// fold returns the form of name used for every comparison made by the
// tracker. Two names are the same assassin iff their folded forms match,
// which is exactly when strings.EqualFold reports them equal.
func fold(name string) string {
	return strings.Map(foldRune, name)
}

// foldRune maps r to the smallest rune in its simple case folding orbit.
func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < least {
			least = f
		}
	}

	return least
}

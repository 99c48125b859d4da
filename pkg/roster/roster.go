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

// Package roster reads the list of assassins taking part in a game.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
)

// Comment is the prefix of roster lines which are ignored.
const Comment = "#"

// Load reads the roster file at path. See Parse for the file's format.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	defer file.Close()

	names, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":      path,
		"assassins": len(names),
	}).Debug("Loaded roster")
	return names, nil
}

// Parse reads one name per line from r, in order. Surrounding whitespace
// is trimmed and blank lines or lines starting with # are skipped.
func Parse(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.Trim(scanner.Text(), "\n\r\t ")
		if name == "" || strings.HasPrefix(name, Comment) {
			continue
		}

		names = append(names, name)
	}

	return names, scanner.Err()
}

// Shuffle returns a copy of names in a random order determined by seed.
// Shuffling the same names with the same seed always gives the same order.
func Shuffle(names []string, seed int64) []string {
	shuffled := make([]string, len(names))
	copy(shuffled, names)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// MaxSuggestions is the maximum number of names returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the names which best fuzzy match name, best first.
func Suggest(name string, names []string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	matches := fuzzy.Find(name, names)
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	suggestions := make([]string, len(matches))
	for i, match := range matches {
		suggestions[i] = match.Str
	}

	return suggestions
}

// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+)?\])?$`)

// Driller navigates a resolved tree rendered as JSON using a dot path.
// Segments may carry an array index ([2]) for list-valued selectors; a bare
// [] on a single-element list unwraps it.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		index := -1
		if matches[3] != "" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise keep the whole list.
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

// Fill substitutes {0}, {1}, ... placeholders in a parameterized selector
// with the given arguments. Placeholders without a matching argument are an
// error so callers never hand a half-filled selector to a UI driver.
func Fill(selector string, args ...string) (string, error) {
	var missing []string

	out := placeholderRe.ReplaceAllStringFunc(selector, func(m string) string {
		i, _ := strconv.Atoi(m[1 : len(m)-1])
		if i >= len(args) {
			missing = append(missing, m)
			return m
		}
		return args[i]
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("unfilled placeholders %s in selector: %s",
			strings.Join(missing, ", "), selector)
	}

	return out, nil
}

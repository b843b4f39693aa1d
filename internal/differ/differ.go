// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/locctl/locctl/internal/log"
)

// Diff compares two resolved trees rendered as JSON and prints a unified
// style ascii diff. Output goes to w, or os.Stdout when w is nil.
func Diff(cmd *cli.Command, docs [][]byte, w io.Writer) error {
	log.Debugf(">> differ()")

	if w == nil {
		w = os.Stdout
	}

	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return nil
	}

	differ := gojsondiff.New()

	delta, err := differ.Compare(docs[0], docs[1])
	if err != nil {
		return fmt.Errorf("failed to compare trees: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The locator trees are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(docs[0], &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal tree: %w", err)
	}

	// Components named in --diff_filter are dropped from the rendered diff.
	filter := cmd.String("diff_filter")
	for key := range strings.SplitSeq(filter, ",") {
		if key != "" {
			delete(jdoc, key)
		}
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       cmd.Bool("color"),
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}

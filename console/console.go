// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console handles the text side of a search: printing the code
// legend, reading the target code, and reporting the result.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/polytree/pyramid"
	"github.com/muesli/termenv"
)

// PromptText is written before reading the target.
const PromptText = "\nEnter the value to search: "

// ErrNoInput is returned by [ReadTarget] when the input ends
// before any text.
var ErrNoInput = errors.New("console: no input")

// colorsPerLine is the number of color entries on each legend line.
const colorsPerLine = 4

// Legend writes the meaning of the two code digits to w. When w is a
// terminal that supports color, each color name has a swatch.
func Legend(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(out, "First number is the form id and the second is the color id.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Form id:")
	shapes := pyramid.ShapesValues()
	items := make([]string, len(shapes))
	for i, sh := range shapes {
		items[i] = fmt.Sprintf("%d = %s", pyramid.NewCode(sh, 0)/10, sh)
	}
	fmt.Fprintln(out, strings.Join(items, ", "))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Color id:")
	cls := pyramid.ColorsValues()
	for st := 0; st < len(cls); st += colorsPerLine {
		ed := min(st+colorsPerLine, len(cls))
		items = items[:0]
		for _, cl := range cls[st:ed] {
			items = append(items, fmt.Sprintf("%d = %s", cl, swatch(out, cl)))
		}
		fmt.Fprintln(out, strings.Join(items, ", "))
	}
}

// swatch returns the name of cl, colored when the output supports it.
func swatch(out *termenv.Output, cl pyramid.Colors) string {
	if out.Profile == termenv.Ascii {
		return cl.String()
	}
	c := cl.RGBA()
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return out.String(cl.String()).Foreground(out.Color(hex)).String()
}

// ReadTarget reads one line from r and parses it as a code.
// The value is not range checked: a code that is not in the
// tree is simply not found.
func ReadTarget(r io.Reader) (pyramid.Code, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return 0, ErrNoInput
		}
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("console: invalid search value %q: %w", strings.TrimSpace(line), err)
	}
	return pyramid.Code(n), nil
}

// Prompt writes [PromptText] to w and reads the target from r.
func Prompt(w io.Writer, r io.Reader) (pyramid.Code, error) {
	fmt.Fprint(w, PromptText)
	return ReadTarget(r)
}

// Report writes the visited indexes and whether target was found to w.
func Report(w io.Writer, target pyramid.Code, visited []int, found bool) {
	fmt.Fprintln(w, FormatVisited(visited))
	if found {
		fmt.Fprintf(w, "Found %d in the graph.\n", target)
	} else {
		fmt.Fprintf(w, "%d was not found in the graph.\n", target)
	}
}

// FormatVisited formats indexes as a set, like {0, 1, 3}.
func FormatVisited(visited []int) string {
	items := make([]string, len(visited))
	for i, v := range visited {
		items[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(items, ", ") + "}"
}

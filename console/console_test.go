// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/polytree/pyramid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegend(t *testing.T) {
	var b bytes.Buffer
	Legend(&b)
	want := `First number is the form id and the second is the color id.

Form id:
1 = Cube, 2 = Sphere, 3 = Teapot, 4 = Tetrahedron

Color id:
0 = Blue, 1 = Green, 2 = Maroon, 3 = Mauve
4 = Peach, 5 = Pink, 6 = Red, 7 = Rosewater
8 = Sky, 9 = Yellow
`
	assert.Equal(t, want, b.String())
}

func TestReadTarget(t *testing.T) {
	c, err := ReadTarget(strings.NewReader("42\n"))
	require.NoError(t, err)
	assert.Equal(t, pyramid.Code(42), c)

	c, err = ReadTarget(strings.NewReader("  17  "))
	require.NoError(t, err)
	assert.Equal(t, pyramid.Code(17), c)

	c, err = ReadTarget(strings.NewReader("99\n"))
	require.NoError(t, err)
	assert.Equal(t, pyramid.Code(99), c)
}

func TestReadTargetErrors(t *testing.T) {
	_, err := ReadTarget(strings.NewReader("cube\n"))
	assert.ErrorContains(t, err, "invalid search value")

	_, err = ReadTarget(strings.NewReader("4.5\n"))
	assert.Error(t, err)

	_, err = ReadTarget(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPrompt(t *testing.T) {
	var b bytes.Buffer
	c, err := Prompt(&b, strings.NewReader("23\n"))
	require.NoError(t, err)
	assert.Equal(t, pyramid.Code(23), c)
	assert.Equal(t, PromptText, b.String())
}

func TestReport(t *testing.T) {
	var b bytes.Buffer
	Report(&b, 31, []int{0, 1, 3}, true)
	assert.Equal(t, "{0, 1, 3}\nFound 31 in the graph.\n", b.String())

	b.Reset()
	Report(&b, 12, nil, false)
	assert.Equal(t, "{}\n12 was not found in the graph.\n", b.String())
}

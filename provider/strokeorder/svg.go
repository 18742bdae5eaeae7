// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strokeorder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	diagramWidth  = 150
	diagramHeight = 150
)

var (
	viewBoxRe   = regexp.MustCompile(`viewBox="([^"]+)"`)
	pathDataRe  = regexp.MustCompile(`<path[^>]*\bd="([^"]+)"`)
	pathStartRe = regexp.MustCompile(`^M\s*([\d.]+)[,\s]+([\d.]+)`)
)

// Restyle rebuilds a KanjiVG SVG into a compact diagram with numbered
// strokes and a dark-to-light gradient across the stroke order. It returns
// the empty string when no stroke paths can be extracted.
func Restyle(svg string) string {
	if svg == "" {
		return ""
	}

	viewBox := "0 0 109 109"
	if m := viewBoxRe.FindStringSubmatch(svg); m != nil {
		viewBox = m[1]
	}

	var paths []string
	for _, m := range pathDataRe.FindAllStringSubmatch(svg, -1) {
		paths = append(paths, m[1])
	}
	if len(paths) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="%d" height="%d">`+"\n", viewBox, diagramWidth, diagramHeight)
	b.WriteString("<style>\n")
	b.WriteString("  .stroke { fill: none; stroke-width: 4; stroke-linecap: round; stroke-linejoin: round; }\n")
	b.WriteString("  .stroke-num { font-family: sans-serif; font-size: 10px; fill: #e74c3c; font-weight: bold; }\n")
	b.WriteString("</style>\n")

	denom := len(paths) - 1
	if denom < 1 {
		denom = 1
	}
	for i, d := range paths {
		gray := 50 + 150*i/denom
		fmt.Fprintf(&b, `<path class="stroke" d="%s" stroke="rgb(%d,%d,%d)" />`+"\n", d, gray, gray, gray)

		if m := pathStartRe.FindStringSubmatch(d); m != nil {
			x, _ := strconv.ParseFloat(m[1], 64)
			y, _ := strconv.ParseFloat(m[2], 64)
			fmt.Fprintf(&b, `<text class="stroke-num" x="%g" y="%g">%d</text>`+"\n", x-5, y-5, i+1)
		}
	}
	b.WriteString("</svg>")

	return b.String()
}

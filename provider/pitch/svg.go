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

package pitch

import (
	"fmt"
	"strings"
)

// Diagram layout constants, sized to match Takoboto-style pitch diagrams.
const (
	moraWidth = 35
	paddingX  = 15
	highY     = 25
	lowY      = 55
	textY     = 80
	dotRadius = 5
	accentHex = "#e74c3c"
	textHex   = "#333"
	fontSize  = 18
)

// DiagramSVG renders a pitch accent diagram for the reading as a standalone
// SVG document. A trailing hollow dot shows the pitch of a following
// particle, which distinguishes heiban from odaka words.
func DiagramSVG(reading string, pattern int) string {
	morae := SplitMorae(reading)
	if len(morae) == 0 {
		return ""
	}

	numMorae := len(morae)
	totalUnits := numMorae + 1
	width := paddingX*2 + moraWidth*totalUnits
	height := textY + 15

	heights := Heights(pattern, numMorae)
	// The particle stays high only after heiban words.
	heights = append(heights, pattern == 0)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", width, height, width, height)
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, "  .pitch-line { stroke: %s; stroke-width: 2.5; fill: none; stroke-linecap: round; stroke-linejoin: round; }\n", accentHex)
	fmt.Fprintf(&b, "  .pitch-dot { fill: %s; }\n", accentHex)
	fmt.Fprintf(&b, "  .mora-text { font-family: \"Noto Sans JP\", \"Yu Gothic\", sans-serif; font-size: %dpx; text-anchor: middle; fill: %s; }\n", fontSize, textHex)
	fmt.Fprintf(&b, "  .particle-text { font-family: \"Noto Sans JP\", sans-serif; font-size: %dpx; text-anchor: middle; fill: #999; }\n", fontSize-4)
	b.WriteString("</style>\n")

	type point struct{ x, y int }
	points := make([]point, len(heights))
	for i, high := range heights {
		points[i].x = paddingX + i*moraWidth + moraWidth/2
		points[i].y = lowY
		if high {
			points[i].y = highY
		}
	}

	if len(points) > 1 {
		fmt.Fprintf(&b, `<path class="pitch-line" d="M %d %d`, points[0].x, points[0].y)
		for _, p := range points[1:] {
			fmt.Fprintf(&b, " L %d %d", p.x, p.y)
		}
		b.WriteString("\" />\n")
	}

	for i, mora := range morae {
		fmt.Fprintf(&b, `<circle class="pitch-dot" cx="%d" cy="%d" r="%d" />`+"\n", points[i].x, points[i].y, dotRadius)
		fmt.Fprintf(&b, `<text class="mora-text" x="%d" y="%d">%s</text>`+"\n", points[i].x, textY, mora)
	}

	particle := points[numMorae]
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="2" />`+"\n", particle.x, particle.y, dotRadius, accentHex)
	fmt.Fprintf(&b, `<text class="particle-text" x="%d" y="%d">(が)</text>`+"\n", particle.x, textY)
	b.WriteString("</svg>")

	return b.String()
}

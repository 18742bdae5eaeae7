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

import "strings"

// smallKana combine with the preceding character into a single mora.
const smallKana = "ゃゅょャュョァィゥェォぁぃぅぇぉ"

// SplitMorae splits a kana reading into morae, the timing units that pitch
// accent patterns are counted over. Small kana attach to the previous
// character; っ and ー each count as their own mora.
func SplitMorae(reading string) []string {
	if reading == "" {
		return nil
	}

	runes := []rune(reading)
	var morae []string
	for i := 0; i < len(runes); {
		if i+1 < len(runes) && strings.ContainsRune(smallKana, runes[i+1]) {
			morae = append(morae, string(runes[i:i+2]))
			i += 2
		} else {
			morae = append(morae, string(runes[i]))
			i++
		}
	}
	return morae
}

// Heights returns the high/low pitch of each mora for the given pattern.
// Pattern 0 is heiban (low then high with no drop), 1 is atamadaka (high
// then low), n on an n-mora word is odaka (drop after the word), and values
// in between are nakadaka. Negative patterns are unknown and render all
// morae high.
func Heights(pattern, numMorae int) []bool {
	if numMorae == 0 {
		return nil
	}

	heights := make([]bool, numMorae)
	switch {
	case pattern == 0:
		for i := 1; i < numMorae; i++ {
			heights[i] = true
		}
	case pattern == 1:
		heights[0] = true
	case pattern > 1:
		for i := 1; i < numMorae && i < pattern; i++ {
			heights[i] = true
		}
	default:
		for i := range heights {
			heights[i] = true
		}
	}
	return heights
}

// PatternName returns the traditional name of a pitch pattern for a word
// with the given mora count.
func PatternName(pattern, numMorae int) string {
	switch {
	case pattern == 0:
		return "平板型 (Heiban)"
	case pattern == 1:
		return "頭高型 (Atamadaka)"
	case pattern == numMorae:
		return "尾高型 (Odaka)"
	case pattern > 1 && pattern < numMorae:
		return "中高型 (Nakadaka)"
	default:
		return "Unknown"
	}
}

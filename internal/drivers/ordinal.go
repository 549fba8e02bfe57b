package drivers

import "strings"

// ordinalScale maps 5-point agree/disagree wording to scores. Only this
// vocabulary (with the two capitalization variants that show up in real
// exports) is recognized; anything else is treated as missing and falls
// to list-wise deletion.
var ordinalScale = map[string]float64{
	"Strongly agree":    5,
	"Strongly Agree":    5,
	"Agree":             4,
	"Neutral":           3,
	"Disagree":          2,
	"Strongly disagree": 1,
	"Strongly Disagree": 1,
}

// ScaleValue maps one raw cell to its ordinal score after trimming.
func ScaleValue(raw string) (float64, bool) {
	v, ok := ordinalScale[strings.TrimSpace(raw)]
	return v, ok
}

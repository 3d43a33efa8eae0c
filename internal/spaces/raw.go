package spaces

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// RawSpaces is the spaces API payload: an object keyed by space id.
type RawSpaces map[string]json.RawMessage

// lenientNumber accepts JSON numbers, numeric strings and null. Anything that does not
// parse leaves the value at zero with ok == false.
type lenientNumber struct {
	value float64
	ok    bool
}

func (n *lenientNumber) UnmarshalJSON(data []byte) error {
	n.value, n.ok = 0, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		text = s
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	n.value, n.ok = f, true
	return nil
}

// lenientString accepts strings and numbers; other shapes decode to "".
type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	*s = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err == nil {
			*s = lenientString(v)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*s = lenientString(data)
	}
	return nil
}

// lenientStrings accepts an array of strings and ignores any other shape.
type lenientStrings []string

func (l *lenientStrings) UnmarshalJSON(data []byte) error {
	*l = nil
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s lenientString
		_ = s.UnmarshalJSON(item)
		if v := strings.TrimSpace(string(s)); v != "" {
			out = append(out, v)
		}
	}
	*l = out
	return nil
}

type rawAddress struct {
	Street    lenientString `json:"street"`
	Area      lenientString `json:"area"`
	Locality  lenientString `json:"locality"`
	City      lenientString `json:"city"`
	Country   lenientString `json:"country"`
	Latitude  lenientNumber `json:"latitude"`
	Longitude lenientNumber `json:"longitude"`
}

type rawSpace struct {
	SpaceID           lenientString  `json:"spaceId"`
	SpaceName         lenientString  `json:"spaceName"`
	SpaceDisplayName  lenientString  `json:"spaceDisplayName"`
	PricePerHour      lenientNumber  `json:"priceperhr"`
	SeatsAvailable    lenientNumber  `json:"seatsAvailable"`
	City              lenientString  `json:"city"`
	Address           *rawAddress    `json:"address"`
	Location          lenientString  `json:"location"`
	FacilitiesList    lenientStrings `json:"facilitiesList"`
	Photos            lenientStrings `json:"photos"`
	GoogleRating      lenientNumber  `json:"googleRating"`
	GoogleReviewCount lenientNumber  `json:"googleReviewCount"`
	Distance          lenientString  `json:"distance"`
	SpaceSubType      lenientStrings `json:"spaceSubType"`
	OperatorName      lenientString  `json:"operatorName"`
}

package pipeview

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/ferama/rospo-pipes/pkg/utils"
)

// ID is a pipe identifier as sent by the web api. The api may encode
// it as a json number or as a json string. Strings are kept as is and
// numbers in their plain decimal form, so 1e3 becomes "1000".
type ID string

// UnmarshalJSON never fails on valid json: values that are neither
// strings nor numbers are kept as their compact json text, which has
// no valid key
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(numberText(n))
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*id = ID(buf.String())
	return nil
}

// numberText formats n the way a javascript number is turned into a string
func numberText(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Key derives the integer sort key. It follows parseInt rules: leading
// white space is skipped, an optional sign is accepted and the longest
// run of digits is parsed, so "12abc" gives 12. A 0x prefix switches
// to hexadecimal digits.
// ok is false when no digit is found or the value overflows an int.
func (id ID) Key() (key int, ok bool) {
	s := string(id)
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		sign = s[i : i+1]
		i++
	}

	base, isDigit := 10, isDecDigit
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base, isDigit = 16, isHexDigit
		i += 2
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+s[digits:i], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Listener is the pipe bind address. It mirrors the json form of
// the net.TCPAddr the web api returns
type Listener struct {
	IP   string
	Port int
	Zone string `json:",omitempty"`
}

// Record is a pipe as received from the web api. Listener and Endpoint
// may be missing
type Record struct {
	ID       ID              `json:"Id"`
	Listener *Listener       `json:"Listener"`
	Endpoint *utils.Endpoint `json:"Endpoint"`
}

// UnmarshalJSON decodes a record without ever dropping it: a listener
// or endpoint of the wrong shape is left nil, and a record that is not
// an object at all is kept empty
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{}

	var fields struct {
		ID       json.RawMessage `json:"Id"`
		Listener json.RawMessage `json:"Listener"`
		Endpoint json.RawMessage `json:"Endpoint"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	if len(fields.ID) > 0 {
		if err := r.ID.UnmarshalJSON(fields.ID); err != nil {
			r.ID = ""
		}
	}
	r.Listener = decodeNested[Listener](fields.Listener)
	r.Endpoint = decodeNested[utils.Endpoint](fields.Endpoint)
	return nil
}

func decodeNested[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

package notion

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind is the Notion property type tag.
type Kind string

const (
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi_select"
	KindRichText    Kind = "rich_text"
	KindTitle       Kind = "title"
	KindDate        Kind = "date"
	KindCreatedTime Kind = "created_time"
	KindNumber      Kind = "number"
	KindPhoneNumber Kind = "phone_number"
	KindEmail       Kind = "email"
	KindCheckbox    Kind = "checkbox"
)

// Checkbox display values.
const (
	CheckboxTrue  = "да"
	CheckboxFalse = "нет"
)

// PropertyValue is the closed set of property variants this service
// understands. The unexported method keeps other packages from adding
// variants; every variant must say how it renders as text.
type PropertyValue interface {
	Text() string
	isPropertyValue()
}

// Select is a single-choice option; Name is "" when nothing is chosen.
type Select struct{ Name string }

// MultiSelect keeps option names in their stored order.
type MultiSelect struct{ Names []string }

// RichText holds the plain text of each run.
type RichText struct{ Runs []string }

// Title holds the plain text of each run of the page title.
type Title struct{ Runs []string }

// Date carries the start of the date range.
type Date struct{ Start string }

// CreatedTime is the raw creation timestamp.
type CreatedTime struct{ Time string }

// Number is nil when the cell is empty.
type Number struct{ Value *float64 }

type PhoneNumber struct{ Value string }

type Email struct{ Value string }

type Checkbox struct{ Checked bool }

// Unsupported is any property type not listed above, or one whose payload
// did not have the expected shape.
type Unsupported struct{ Type Kind }

func (v Select) Text() string      { return v.Name }
func (v MultiSelect) Text() string { return strings.Join(v.Names, ", ") }
func (v RichText) Text() string    { return strings.Join(v.Runs, "") }
func (v Title) Text() string       { return strings.Join(v.Runs, "") }
func (v Date) Text() string        { return v.Start }
func (v CreatedTime) Text() string { return v.Time }
func (v PhoneNumber) Text() string { return v.Value }
func (v Email) Text() string       { return v.Value }
func (v Unsupported) Text() string { return "" }

func (v Number) Text() string {
	if v.Value == nil {
		return ""
	}
	return strconv.FormatFloat(*v.Value, 'f', -1, 64)
}

func (v Checkbox) Text() string {
	if v.Checked {
		return CheckboxTrue
	}
	return CheckboxFalse
}

func (Select) isPropertyValue()      {}
func (MultiSelect) isPropertyValue() {}
func (RichText) isPropertyValue()    {}
func (Title) isPropertyValue()       {}
func (Date) isPropertyValue()        {}
func (CreatedTime) isPropertyValue() {}
func (Number) isPropertyValue()      {}
func (PhoneNumber) isPropertyValue() {}
func (Email) isPropertyValue()       {}
func (Checkbox) isPropertyValue()    {}
func (Unsupported) isPropertyValue() {}

// Property is one page property as returned by the Notion API.
type Property struct {
	ID    string
	Type  Kind
	Value PropertyValue
}

// ExtractFieldValue returns the display value of p, or "" when p is nil.
func ExtractFieldValue(p *Property) string {
	if p == nil || p.Value == nil {
		return ""
	}
	return p.Value.Text()
}

type namedOption struct {
	Name string `json:"name"`
}

type textRun struct {
	PlainText string `json:"plain_text"`
}

type dateRange struct {
	Start string `json:"start"`
}

// UnmarshalJSON decodes {"id": ..., "type": T, "<T>": payload} into the
// matching variant. A payload of unexpected shape becomes Unsupported
// rather than failing the whole page.
func (p *Property) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["id"]; ok {
		_ = json.Unmarshal(raw, &p.ID)
	}
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &p.Type); err != nil {
			return err
		}
	}

	value, err := decodeValue(p.Type, fields[string(p.Type)])
	if err != nil {
		value = Unsupported{Type: p.Type}
	}
	p.Value = value
	return nil
}

func decodeValue(kind Kind, payload json.RawMessage) (PropertyValue, error) {
	switch kind {
	case KindSelect:
		var opt *namedOption
		if err := decodePayload(payload, &opt); err != nil {
			return nil, err
		}
		if opt == nil {
			return Select{}, nil
		}
		return Select{Name: opt.Name}, nil
	case KindMultiSelect:
		var opts []namedOption
		if err := decodePayload(payload, &opts); err != nil {
			return nil, err
		}
		names := make([]string, 0, len(opts))
		for _, o := range opts {
			names = append(names, o.Name)
		}
		return MultiSelect{Names: names}, nil
	case KindRichText:
		runs, err := decodeRuns(payload)
		return RichText{Runs: runs}, err
	case KindTitle:
		runs, err := decodeRuns(payload)
		return Title{Runs: runs}, err
	case KindDate:
		var d *dateRange
		if err := decodePayload(payload, &d); err != nil {
			return nil, err
		}
		if d == nil {
			return Date{}, nil
		}
		return Date{Start: d.Start}, nil
	case KindCreatedTime:
		var s *string
		if err := decodePayload(payload, &s); err != nil {
			return nil, err
		}
		return CreatedTime{Time: deref(s)}, nil
	case KindNumber:
		var n *float64
		if err := decodePayload(payload, &n); err != nil {
			return nil, err
		}
		return Number{Value: n}, nil
	case KindPhoneNumber:
		var s *string
		if err := decodePayload(payload, &s); err != nil {
			return nil, err
		}
		return PhoneNumber{Value: deref(s)}, nil
	case KindEmail:
		var s *string
		if err := decodePayload(payload, &s); err != nil {
			return nil, err
		}
		return Email{Value: deref(s)}, nil
	case KindCheckbox:
		var b bool
		if err := decodePayload(payload, &b); err != nil {
			return nil, err
		}
		return Checkbox{Checked: b}, nil
	default:
		return Unsupported{Type: kind}, nil
	}
}

func decodePayload(payload json.RawMessage, dst interface{}) error {
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, dst)
}

func decodeRuns(payload json.RawMessage) ([]string, error) {
	var runs []textRun
	if err := decodePayload(payload, &runs); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(runs))
	for _, r := range runs {
		out = append(out, r.PlainText)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

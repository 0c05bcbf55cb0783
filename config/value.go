package config

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Value is a scalar field kept exactly as the document spells it, so a port
// written as 22 or "22" comes out as 22 either way.
type Value struct {
	text    string
	written bool
	truthy  bool
}

// UnmarshalYAML implements yaml.Unmarshaler. A null node never reaches it,
// which leaves the Value unwritten.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw.(type) {
	case map[interface{}]interface{}, []interface{}:
		return &yaml.TypeError{Errors: []string{fmt.Sprintf("expected a scalar value, got %T", raw)}}
	}
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	*v = Value{text: text, written: true, truthy: !falsy(raw)}
	return nil
}

// Present reports whether the field was written with a non-empty, non-zero value.
func (v Value) Present() bool {
	return v.written && v.truthy
}

// Or returns the written text, or def when the field is absent or null.
func (v Value) Or(def string) string {
	if !v.written {
		return def
	}
	return v.text
}

func (v Value) String() string {
	return v.text
}

func falsy(raw interface{}) bool {
	switch t := raw.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case uint64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}

// AddressList is a list of address strings that remembers whether the key
// was written at all. A lone scalar is read as a one-element list.
type AddressList struct {
	Addrs   []string
	written bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *AddressList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var values []Value
	switch raw.(type) {
	case []interface{}:
		if err := unmarshal(&values); err != nil {
			return err
		}
	case map[interface{}]interface{}:
		return &yaml.TypeError{Errors: []string{"expected a list of addresses, got a mapping"}}
	default:
		var one Value
		if err := unmarshal(&one); err != nil {
			return err
		}
		values = []Value{one}
	}

	addrs := make([]string, 0, len(values))
	for _, v := range values {
		addrs = append(addrs, v.text)
	}
	*l = AddressList{Addrs: addrs, written: true}
	return nil
}

// Or returns the written addresses, or def when the key is absent or null.
func (l AddressList) Or(def []string) []string {
	if !l.written {
		return def
	}
	return l.Addrs
}

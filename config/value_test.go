package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestValuePresence(t *testing.T) {
	tests := []struct {
		doc     string
		present bool
		text    string
	}{
		{"port: 22", true, "22"},
		{`port: "22"`, true, "22"},
		{`port: "0"`, true, "0"},
		{"port: 0x16", true, "0x16"},
		{"port: 0", false, "0"},
		{`port: ""`, false, ""},
		{"port: false", false, "false"},
		{"port: ~", false, ""},
		{"port:", false, ""},
		{"other: 1", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			var rule PortRule
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &rule))
			assert.Equal(t, tt.present, rule.Port.Present())
			assert.Equal(t, tt.text, rule.Port.String())
		})
	}
}

func TestValueOr(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"proto: udp", "udp"},
		{"proto: ~", "tcp"},
		{"{}", "tcp"},
		{`proto: ""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			var rule PortRule
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &rule))
			assert.Equal(t, tt.want, rule.ProtoOrDefault())
		})
	}
}

func TestAddressList(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"absent", "port: 22", []string{DefaultSource}},
		{"null", "sources: ~", []string{DefaultSource}},
		{"empty", "sources: []", []string{}},
		{"single scalar", "sources: 10.0.0.1", []string{"10.0.0.1"}},
		{"list", "sources: [1.1.1.1, 2.2.2.2]", []string{"1.1.1.1", "2.2.2.2"}},
		{"null entry", "sources: [1.1.1.1, ~]", []string{"1.1.1.1", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule PortRule
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &rule))
			assert.Equal(t, tt.want, rule.SourceList())
		})
	}
}

func TestForwardRuleComplete(t *testing.T) {
	full := ForwardRule{External: textValue("8080"), InternalIP: textValue("192.168.1.5"), InternalPort: textValue("80")}
	assert.True(t, full.Complete())

	missing := full
	missing.InternalPort = Value{}
	assert.False(t, missing.Complete())

	blank := full
	blank.InternalIP = textValue("")
	assert.False(t, blank.Complete())
}

// Package rules turns a decoded policy document into installer records.
package rules

import (
	"strings"

	"fwpolicy/config"
)

var descriptionReplacer = strings.NewReplacer(
	" ", "_",
	Delimiter, "_",
	"\t", "_",
	"\r", "_",
	"\n", "_",
)

// SanitizeDescription makes a description safe to embed in a record.
func SanitizeDescription(desc string) string {
	return descriptionReplacer.Replace(desc)
}

// StripComment drops a trailing "# ..." comment and surrounding whitespace
// from an address.
func StripComment(addr string) string {
	addr, _, _ = strings.Cut(addr, "#")
	return strings.TrimSpace(addr)
}

// Translate resolves every rule in cfg. Categories come out in a fixed
// order (allow-ports, allow-sources, docker-ports, forward-ports) and rules
// keep their document order within each one.
func Translate(cfg *config.PolicyConfig) []Record {
	if cfg == nil {
		return nil
	}
	var records []Record
	records = append(records, ProcessPortRules(AllowPort, cfg.AllowPorts)...)
	records = append(records, ProcessSourceRules(cfg.AllowSources)...)
	records = append(records, ProcessPortRules(AllowContainerPort, cfg.DockerPorts)...)
	records = append(records, ProcessForwardRules(cfg.ForwardPorts)...)
	return records
}

// ProcessPortRules emits one record per usable source of each rule.
// Rules without a port are skipped.
func ProcessPortRules(kind Kind, rules []config.PortRule) []Record {
	var records []Record
	for _, rule := range rules {
		if !rule.Port.Present() {
			continue
		}
		port := rule.Port.String()
		proto := rule.ProtoOrDefault()
		desc := SanitizeDescription(rule.Description.Or(""))

		for _, source := range rule.SourceList() {
			source = StripComment(source)
			if source == "" {
				continue
			}
			records = append(records, Record{
				Kind:   kind,
				Fields: []string{port, proto, source, desc},
			})
		}
	}
	return records
}

// ProcessSourceRules emits one ALLOW_SOURCE record per rule with an ip.
func ProcessSourceRules(rules []config.SourceRule) []Record {
	var records []Record
	for _, rule := range rules {
		if !rule.IP.Present() {
			continue
		}
		ip := StripComment(rule.IP.String())
		if ip == "" {
			continue
		}
		records = append(records, Record{
			Kind:   AllowSource,
			Fields: []string{ip, SanitizeDescription(rule.Description.Or(""))},
		})
	}
	return records
}

// ProcessForwardRules emits one FORWARD_PORT record per complete rule.
func ProcessForwardRules(rules []config.ForwardRule) []Record {
	var records []Record
	for _, rule := range rules {
		if !rule.Complete() {
			continue
		}
		records = append(records, Record{
			Kind: ForwardPort,
			Fields: []string{
				rule.External.String(),
				rule.InternalIP.String(),
				rule.InternalPort.String(),
				rule.ProtoOrDefault(),
				SanitizeDescription(rule.Description.Or("")),
			},
		})
	}
	return records
}

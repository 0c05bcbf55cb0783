package config

// Defaults applied to optional rule fields.
const (
	DefaultProto  = "tcp"
	DefaultSource = "0.0.0.0/0"
)

// PortRule opens a port to a set of sources. Used for both host ports
// (allow-ports) and container-exposed ports (docker-ports).
type PortRule struct {
	Port        Value       `yaml:"port"`
	Proto       Value       `yaml:"proto"`
	Sources     AddressList `yaml:"sources"`
	Description Value       `yaml:"description"`
}

// ProtoOrDefault returns proto, defaulting to tcp
func (r PortRule) ProtoOrDefault() string {
	return r.Proto.Or(DefaultProto)
}

// SourceList returns the listed sources, defaulting to 0.0.0.0/0
func (r PortRule) SourceList() []string {
	return r.Sources.Or([]string{DefaultSource})
}

// SourceRule allows all traffic from one address
type SourceRule struct {
	IP          Value `yaml:"ip"`
	Description Value `yaml:"description"`
}

// ForwardRule forwards an external port to an internal host and port
type ForwardRule struct {
	External     Value `yaml:"external"`
	InternalIP   Value `yaml:"internal-ip"`
	InternalPort Value `yaml:"internal-port"`
	Proto        Value `yaml:"proto"`
	Description  Value `yaml:"description"`
}

// Complete reports whether all three mandatory fields are present.
func (r ForwardRule) Complete() bool {
	return r.External.Present() && r.InternalIP.Present() && r.InternalPort.Present()
}

// ProtoOrDefault returns proto, defaulting to tcp
func (r ForwardRule) ProtoOrDefault() string {
	return r.Proto.Or(DefaultProto)
}

// PolicyConfig represents the top-level policy document
type PolicyConfig struct {
	AllowPorts   []PortRule    `yaml:"allow-ports"`
	AllowSources []SourceRule  `yaml:"allow-sources"`
	DockerPorts  []PortRule    `yaml:"docker-ports"`
	ForwardPorts []ForwardRule `yaml:"forward-ports"`
}

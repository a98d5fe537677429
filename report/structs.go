package report

// Report lists the owners of a change: @users first, then teams expanded into their members.
type Report struct {
	Users []string `json:"users,omitempty" yaml:"users,omitempty"`
	Teams []Team   `json:"teams,omitempty" yaml:"teams,omitempty"`
}

type Team struct {
	Name     string    `json:"name" yaml:"name"`
	Subteams []Subteam `json:"subteams,omitempty" yaml:"subteams,omitempty"`
	Users    []string  `json:"users,omitempty" yaml:"users,omitempty"`
}

// Subteam members are listed as-is. Teams nested inside a subteam are not expanded any further.
type Subteam struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

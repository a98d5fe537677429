package config

// OwnerMap maps a glob pattern (ex: "library/std" or "compiler/*") to the owners of the matching paths.
// Owners are either @user tags or team names.
type OwnerMap map[string][]string

// GroupMap maps a team name to its members. Members are either @user tags or the names of other teams.
type GroupMap map[string][]string

// Triagebot is the subset of a triagebot.toml file that this tool reads. All other tables are ignored.
// TOML documentation: https://forge.rust-lang.org/triagebot/pr-assignment.html
type Triagebot struct {
	// Pointer so that a missing [assign] table can be told apart from an empty one
	Assign *Assign `toml:"assign"`
}

type Assign struct {
	AdhocGroups GroupMap `toml:"adhoc_groups"`
	Owners      OwnerMap `toml:"owners"`
}

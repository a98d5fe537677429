// This package expands resolved owners into a printable report. Teams are looked up in the GroupMap and
// broken down into their subteams and @users. Subteams are expanded exactly one level: their members are
// listed, but teams nested inside them are not expanded again.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gitlab.com/tedspinks/get-maintainers/config"
	"gitlab.com/tedspinks/get-maintainers/owners"
	"gopkg.in/yaml.v3"
)

var ErrUnknownGroup = errors.New("team not found in adhoc_groups")

const indent = "    "

// Build the report for the resolved owners. Every team in the owner set, and every subteam of those
// teams, must exist in groups. A missing one is returned as an ErrUnknownGroup error.
func Build(ownerSet owners.OwnerSet, groups config.GroupMap) (Report, error) {
	var r Report
	users, teams := owners.SplitOwners(ownerSet.Sorted())
	r.Users = users
	for _, teamName := range teams {
		members, err := lookup(groups, teamName)
		if err != nil {
			return Report{}, err
		}
		team := Team{Name: teamName}
		directUsers, subteams := owners.SplitOwners(members)
		for _, subteamName := range sortedCopy(subteams) {
			subMembers, err := lookup(groups, subteamName)
			if err != nil {
				return Report{}, fmt.Errorf("subteam of '%v': %w", teamName, err)
			}
			team.Subteams = append(team.Subteams, Subteam{Name: subteamName, Members: sortedCopy(subMembers)})
		}
		team.Users = sortedCopy(directUsers)
		r.Teams = append(r.Teams, team)
	}
	return r, nil
}

// Return the Format named by s. An empty string is the text format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format '%v', should be one of %v, %v, %v", s, FormatText, FormatJSON, FormatYAML)
	}
}

// Write the report in the specified format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format '%v', should be one of %v, %v, %v", format, FormatText, FormatJSON, FormatYAML)
	}
}

// Write the human-readable report. Example:
//
//	Users:
//	    @alice
//	Teams:
//	    libs
//	        libs-api (subteam)
//	            @bob
//	        @carol
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	if len(r.Users) > 0 {
		b.WriteString("Users:\n")
	}
	for _, user := range r.Users {
		b.WriteString(indent + user + "\n")
	}
	if len(r.Teams) > 0 {
		b.WriteString("Teams:\n")
	}
	for _, team := range r.Teams {
		b.WriteString(indent + team.Name + "\n")
		for _, subteam := range team.Subteams {
			b.WriteString(strings.Repeat(indent, 2) + subteam.Name + " (subteam)\n")
			for _, member := range subteam.Members {
				b.WriteString(strings.Repeat(indent, 3) + member + "\n")
			}
		}
		for _, user := range team.Users {
			b.WriteString(strings.Repeat(indent, 2) + user + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func lookup(groups config.GroupMap, team string) ([]string, error) {
	members, ok := groups[team]
	if !ok {
		return nil, fmt.Errorf("%w: '%v'", ErrUnknownGroup, team)
	}
	return members, nil
}

func sortedCopy(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	ret := append([]string(nil), s...)
	sort.Strings(ret)
	return ret
}

package models

// ToggleMember returns a copy of members with member present when include is
// true and absent otherwise. Order of existing entries is kept, new members are
// appended, and the input slice is never modified.
func ToggleMember(members []string, member string, include bool) []string {
	out := make([]string, 0, len(members)+1)
	present := false
	for _, m := range members {
		if m == member {
			if !include || present {
				continue
			}
			present = true
		}
		out = append(out, m)
	}
	if include && !present {
		out = append(out, member)
	}
	return out
}

// Contains reports whether member is in members.
func Contains(members []string, member string) bool {
	for _, m := range members {
		if m == member {
			return true
		}
	}
	return false
}

package suspension

// Settle serves one match of a record's ban. Red bans are served before
// yellow bans; reaching zero clears the yellow count. changed is false when
// the record had nothing to serve.
func Settle(r Record) (Record, bool) {
	switch {
	case r.RedBanLeft > 0:
		r.RedBanLeft--
		if r.RedBanLeft == 0 {
			r.ActiveYellows = 0
		}
		return r, true
	case r.YellowBanLeft > 0:
		r.YellowBanLeft--
		if r.YellowBanLeft == 0 {
			r.ActiveYellows = 0
		}
		return r, true
	default:
		return r, false
	}
}

// SettleMatch applies Settle to the records of team1 and team2 and returns
// only the records that changed, in input order. Records of other teams are
// never returned.
func SettleMatch(records []Record, team1, team2 string) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.Team != team1 && r.Team != team2 {
			continue
		}
		next, changed := Settle(r)
		if !changed {
			continue
		}
		out = append(out, next)
	}

	return out
}

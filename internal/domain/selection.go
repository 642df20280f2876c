package domain

// SelectLeader picks the one leader the requesting user should see at
// the chosen level. The rule per level:
//
//   - country: level=country and position=president; user geography is
//     not consulted.
//   - county: level=county, position=governor, county matches the user.
//   - constituency: level=constituency, position=mp, county and
//     constituency both match.
//   - ward: level=ward, position=mca, the full triple matches.
//
// A nil geo with any level other than country yields no leader; that is
// an expected state (user not signed in), not an error. When several
// leaders match, which the backend's uniqueness rules should prevent,
// the first by input order wins. The function is pure: identical inputs
// always produce identical output.
func SelectLeader(leaders []Leader, level Level, geo *Geography) (Leader, bool) {
	for _, l := range leaders {
		if l.Level != level {
			continue
		}

		if level == LevelCountry {
			if l.Position == PositionPresident {
				return l, true
			}
			continue
		}

		if geo == nil {
			return Leader{}, false
		}

		switch level {
		case LevelCounty:
			if l.Position == PositionGovernor && l.County == geo.County {
				return l, true
			}
		case LevelConstituency:
			if l.Position == PositionMP &&
				l.County == geo.County &&
				l.Constituency == geo.Constituency {
				return l, true
			}
		case LevelWard:
			if l.Position == PositionMCA &&
				l.County == geo.County &&
				l.Constituency == geo.Constituency &&
				l.Ward == geo.Ward {
				return l, true
			}
		}
	}
	return Leader{}, false
}

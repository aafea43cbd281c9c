package suspension

type Status string

const (
	StatusSuspendedRed    Status = "suspended_red"
	StatusSuspendedYellow Status = "suspended_yellow"
	StatusWarned          Status = "warned"
	StatusEligible        Status = "eligible"
)

// WarningYellows is the active yellow count one card short of a ban.
const WarningYellows = YellowBanThreshold - 1

func Classify(r Record) Status {
	switch {
	case r.RedBanLeft > 0:
		return StatusSuspendedRed
	case r.YellowBanLeft > 0:
		return StatusSuspendedYellow
	case r.ActiveYellows == WarningYellows:
		return StatusWarned
	default:
		return StatusEligible
	}
}

// SuspendedPlayer is a player unavailable for the next match of their team.
type SuspendedPlayer struct {
	Team      string
	Player    string
	Card      CardType
	Remaining int
}

type WarnedPlayer struct {
	Team          string
	Player        string
	ActiveYellows int
}

type Eligibility struct {
	Suspended []SuspendedPlayer
	Warned    []WarnedPlayer
}

// CheckEligibility reports suspended and warned players of teamA and teamB.
// Eligible players are omitted; scan order is kept within each group.
func CheckEligibility(records []Record, teamA, teamB string) Eligibility {
	out := Eligibility{
		Suspended: make([]SuspendedPlayer, 0),
		Warned:    make([]WarnedPlayer, 0),
	}
	for _, r := range records {
		if r.Team != teamA && r.Team != teamB {
			continue
		}

		switch Classify(r) {
		case StatusSuspendedRed:
			out.Suspended = append(out.Suspended, SuspendedPlayer{
				Team:      r.Team,
				Player:    r.Player,
				Card:      CardRed,
				Remaining: r.RedBanLeft,
			})
		case StatusSuspendedYellow:
			out.Suspended = append(out.Suspended, SuspendedPlayer{
				Team:      r.Team,
				Player:    r.Player,
				Card:      CardYellow,
				Remaining: r.YellowBanLeft,
			})
		case StatusWarned:
			out.Warned = append(out.Warned, WarnedPlayer{
				Team:          r.Team,
				Player:        r.Player,
				ActiveYellows: r.ActiveYellows,
			})
		}
	}

	return out
}

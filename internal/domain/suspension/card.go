package suspension

// ApplyCard returns the record state after one card for its player.
// A red card overwrites any running red ban instead of extending it.
func ApplyCard(r Record, card CardType) Record {
	switch card {
	case CardYellow:
		r.ActiveYellows++
		if r.ActiveYellows >= YellowBanThreshold {
			r.YellowBanLeft = YellowBanLength
		}
	case CardRed:
		r.RedBanLeft = RedBanLength
		r.ActiveYellows = 0
		r.YellowBanLeft = 0
	}

	return r
}

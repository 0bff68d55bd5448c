package auth

// Rank is the closed three-level role set. The wire values match what the
// SPA already stores, so they marshal as plain strings.
type Rank string

const (
	RankMaster Rank = "master"
	RankAdmin  Rank = "admin"
	RankUser   Rank = "user"
)

func ParseRank(s string) (Rank, bool) {
	switch Rank(s) {
	case RankMaster, RankAdmin, RankUser:
		return Rank(s), true
	}
	return "", false
}

func (r Rank) String() string { return string(r) }

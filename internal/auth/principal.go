package auth

import "time"

// Principal is the resolved identity for the current request, normalized
// across the three rank variants. Master is synthetic: it has no stored
// record and no timestamps.
type Principal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Category  string    `json:"category,omitempty"`
	Number    string    `json:"number,omitempty"`
	Rank      Rank      `json:"rank"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (p *Principal) IsMaster() bool { return p.Rank == RankMaster }
func (p *Principal) IsAdmin() bool  { return p.Rank == RankAdmin }

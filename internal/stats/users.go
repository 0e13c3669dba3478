package stats

import (
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// AgeGroups counts users per age bracket.
type AgeGroups struct {
	Teen  int `json:"teen"`
	Adult int `json:"adult"`
	Old   int `json:"old"`
}

// GroupByAge buckets users by age at ref: teen <20, adult 20-39, old >=40.
func GroupByAge(users []models.User, ref time.Time) AgeGroups {
	var g AgeGroups
	for _, u := range users {
		switch age := u.Age(ref); {
		case age < 20:
			g.Teen++
		case age < 40:
			g.Adult++
		default:
			g.Old++
		}
	}
	return g
}

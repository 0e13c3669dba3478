package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

func bornOn(year int, month time.Month, day int) models.User {
	return models.User{DOB: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func TestGroupByAge(t *testing.T) {
	users := []models.User{
		bornOn(2010, time.January, 1),  // 16
		bornOn(2006, time.October, 15), // 19, birthday tomorrow
		bornOn(2006, time.October, 14), // 20 today
		bornOn(1987, time.January, 1),  // 39
		bornOn(1986, time.October, 14), // 40
		bornOn(1950, time.June, 1),
	}

	assert.Equal(t, AgeGroups{Teen: 2, Adult: 2, Old: 2}, GroupByAge(users, ref))
}

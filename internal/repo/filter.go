package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// DateRange is an inclusive creation-time range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (d DateRange) Contains(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}

// ProductFilter drives the public catalog search.
type ProductFilter struct {
	Name     string
	Category string
	MaxPrice *float64
	Sort     string // "asc", "desc" or empty
	Offset   *int
	Limit    *int
}

// ProductQuery selects products by equality and creation range. Nil fields match everything.
type ProductQuery struct {
	Category  *string
	Stock     *int
	CreatedIn *DateRange
}

func (q ProductQuery) matches(p models.Product) bool {
	if q.Category != nil && p.Category != *q.Category {
		return false
	}
	if q.Stock != nil && p.Stock != *q.Stock {
		return false
	}
	if q.CreatedIn != nil && !q.CreatedIn.Contains(p.CreatedAt) {
		return false
	}
	return true
}

// OrderQuery selects orders in insertion order, or the reverse when
// NewestFirst is set. Limit <= 0 means no limit.
type OrderQuery struct {
	User        *string
	Status      *models.OrderStatus
	CreatedIn   *DateRange
	NewestFirst bool
	Limit       int
}

func (q OrderQuery) matches(o models.Order) bool {
	if q.User != nil && o.User != *q.User {
		return false
	}
	if q.Status != nil && o.Status != *q.Status {
		return false
	}
	if q.CreatedIn != nil && !q.CreatedIn.Contains(o.CreatedAt) {
		return false
	}
	return true
}

type UserQuery struct {
	Gender    *string
	Role      *string
	CreatedIn *DateRange
}

func (q UserQuery) matches(u models.User) bool {
	if q.Gender != nil && u.Gender != *q.Gender {
		return false
	}
	if q.Role != nil && u.Role != *q.Role {
		return false
	}
	if q.CreatedIn != nil && !q.CreatedIn.Contains(u.CreatedAt) {
		return false
	}
	return true
}

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

// StockDelta is a signed change to apply to one product's stock.
type StockDelta struct {
	ProductID int
	Delta     int
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// page slices items by the optional offset and limit.
func page[T any](items []T, offset, limit *int) []T {
	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}
	end := len(items)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(items))
	}
	return items[start:end]
}

// conditions accumulates positional SQL predicates.
type conditions struct {
	clauses []string
	args    []any
}

// add appends a predicate; expr holds a single %d for the placeholder index.
func (c *conditions) add(expr string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(expr, len(c.args)))
}

func (c *conditions) addRange(column string, r *DateRange) {
	if r == nil {
		return
	}
	c.add(column+" >= $%d", r.Start)
	c.add(column+" <= $%d", r.End)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

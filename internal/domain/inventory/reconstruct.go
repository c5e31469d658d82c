// Package inventory derives current stock levels from the movement log.
// Stock is never persisted: it is recomputed on demand from the full item
// list and activity log.
package inventory

import (
	"sort"

	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/item"
)

// DefaultCategory is used when a movement carries no category and its item
// name is not in the catalog.
const DefaultCategory = "General"

// Key identifies a stock bucket. Name and Category compare case-sensitively.
type Key struct {
	Name     string
	Category string
}

// String renders the composite form used by reports and the API.
func (k Key) String() string {
	return k.Name + "|" + k.Category
}

// Stock is the derived quantity per item-category bucket.
// Quantities are signed; reconstruction enforces no floor.
type Stock map[Key]int64

// Compute reconstructs stock from the item catalog and the movement log.
//
// Pure function of its inputs. Every catalog item gets an entry, zero absent
// any movement. Only approved (or legacy status-absent) records contribute;
// Pending and Rejected never do. Malformed records are skipped silently.
// Category resolution prefers the record's own category, then the catalog
// entry for the item name, then DefaultCategory. Movement order is
// irrelevant to the result.
func Compute(items []item.Item, acts []activity.Activity) Stock {
	stock := make(Stock, len(items))

	byName := make(map[string]string, len(items))
	for _, it := range items {
		stock[Key{Name: it.Name, Category: it.Category}] = 0
		if _, seen := byName[it.Name]; !seen {
			byName[it.Name] = it.Category
		}
	}

	for _, a := range acts {
		if !a.Status.CountsTowardStock() || !a.Parsable() {
			continue
		}

		category := a.ItemCategory
		if category == "" {
			category = byName[a.ItemName]
		}
		if category == "" {
			category = DefaultCategory
		}

		key := Key{Name: a.ItemName, Category: category}
		if a.Direction == activity.DirectionIn {
			stock[key] += a.Quantity
		} else {
			stock[key] -= a.Quantity
		}
	}

	return stock
}

// Row is a stock entry in list form.
type Row struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// Rows flattens the mapping into rows sorted by category, then name.
func (s Stock) Rows() []Row {
	rows := make([]Row, 0, len(s))
	for k, qty := range s {
		rows = append(rows, Row{Name: k.Name, Category: k.Category, Quantity: qty})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// Total sums all bucket quantities.
func (s Stock) Total() int64 {
	var total int64
	for _, qty := range s {
		total += qty
	}
	return total
}

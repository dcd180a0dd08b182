package service

import (
	"sort"

	"github.com/m3rciful/dongibot/internal/models"
)

// PersonTotal is one row of the settlement report.
type PersonTotal struct {
	Name  string
	Total float64
}

// Report summarizes who paid what and who should pay next.
type Report struct {
	Totals     []PersonTotal
	GrandTotal float64
	PayNext    string
}

// Settle computes the settlement report for the given participants and
// expenses. Totals are sorted by amount descending; ties keep participant
// order. PayNext is the participant with the lowest total, first one
// encountered on ties. Expenses whose payer is no longer a participant
// still count toward the grand total.
func Settle(people []models.Person, expenses []models.Expense) (Report, error) {
	if len(people) == 0 {
		return Report{}, ErrNoPeople
	}
	if len(expenses) == 0 {
		return Report{}, ErrNoExpenses
	}

	totals := make(map[string]float64, len(people))
	for _, p := range people {
		totals[p.Name] = 0
	}

	var grand float64
	for _, e := range expenses {
		if _, ok := totals[e.PayerName]; ok {
			totals[e.PayerName] += e.Amount
		}
		grand += e.Amount
	}

	rows := make([]PersonTotal, 0, len(people))
	payNext := people[0].Name
	for _, p := range people {
		rows = append(rows, PersonTotal{Name: p.Name, Total: totals[p.Name]})
		if totals[p.Name] < totals[payNext] {
			payNext = p.Name
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return Report{
		Totals:     rows,
		GrandTotal: grand,
		PayNext:    payNext,
	}, nil
}

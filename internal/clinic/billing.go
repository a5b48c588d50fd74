package clinic

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/therapylog/internal/models"
)

// PatientBilling summarizes one patient's sessions and money owed
type PatientBilling struct {
	PatientID uint
	Name      string
	Held      int // sessions that took place
	Scheduled int // upcoming sessions, no money attached
	Minutes   int
	Paid      decimal.Decimal
	Pending   decimal.Decimal
	Overdue   decimal.Decimal
}

// Outstanding is what the patient still owes
func (b PatientBilling) Outstanding() decimal.Decimal {
	return b.Pending.Add(b.Overdue)
}

// BillingSummary groups every session by patient, in patient id order.
// Sessions pointing at an unknown patient are kept under "(unknown)".
func (c *Controller) BillingSummary() ([]PatientBilling, error) {
	patients, err := c.store.ListPatients()
	if err != nil {
		return nil, err
	}
	sessions, err := c.store.ListSessions()
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}

	byPatient := make(map[uint]*PatientBilling)
	for _, s := range sessions {
		b, ok := byPatient[s.PatientID]
		if !ok {
			name, known := names[s.PatientID]
			if !known {
				name = "(unknown)"
			}
			b = &PatientBilling{
				PatientID: s.PatientID,
				Name:      name,
				Paid:      decimal.Zero,
				Pending:   decimal.Zero,
				Overdue:   decimal.Zero,
			}
			byPatient[s.PatientID] = b
		}

		if s.IsScheduled() {
			b.Scheduled++
			continue
		}

		b.Held++
		b.Minutes += s.Duration
		if !s.Cost.Valid || s.PaymentStatus == nil {
			continue
		}
		switch *s.PaymentStatus {
		case models.PaymentPaid:
			b.Paid = b.Paid.Add(s.Cost.Decimal)
		case models.PaymentPending:
			b.Pending = b.Pending.Add(s.Cost.Decimal)
		case models.PaymentOverdue:
			b.Overdue = b.Overdue.Add(s.Cost.Decimal)
		}
	}

	summary := make([]PatientBilling, 0, len(byPatient))
	for _, b := range byPatient {
		summary = append(summary, *b)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].PatientID < summary[j].PatientID
	})

	return summary, nil
}

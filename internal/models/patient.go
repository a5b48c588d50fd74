package models

import "fmt"

// Patient represents a person receiving therapy
type Patient struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Age     *int   `json:"age"`
	Contact string `json:"contact"`
}

// Label returns the selector label used for picking a patient ("{id}: {name}")
func (p Patient) Label() string {
	return fmt.Sprintf("%d: %s", p.ID, p.Name)
}

package patient

import (
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
)

// Patient is a Person with a surrogate numeric identity, distinct from the
// doctor id space.
type Patient struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	clinic.Person `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Patient) TableName() string {
	return "clinical.patients"
}

// Equal reports whether two patients have the same identity and Person fields.
func (p *Patient) Equal(other *Patient) bool {
	return other != nil && p.ID == other.ID && p.Person.Equal(other.Person)
}

type CreatePatientCommand struct {
	FirstName string
	LastName  string
	Age       int
	Email     string
}

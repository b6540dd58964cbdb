package doctor

import (
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
)

// Doctor is a Person with a surrogate numeric identity. The id is assigned by
// the store on creation and is immutable afterwards.
type Doctor struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	clinic.Person `gorm:"embedded"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Doctor) TableName() string {
	return "clinical.doctors"
}

// Equal reports whether two doctors have the same identity and Person fields.
func (d *Doctor) Equal(other *Doctor) bool {
	return other != nil && d.ID == other.ID && d.Person.Equal(other.Person)
}

type CreateDoctorCommand struct {
	FirstName string
	LastName  string
	Age       int
	Email     string
}

package models

// Cafe is a single cafe listing. Columns follow the original cafes.db schema.
type Cafe struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(250);uniqueIndex;not null"`
	MapURL       string  `gorm:"column:map_url;type:varchar(500);not null"`
	ImgURL       string  `gorm:"column:img_url;type:varchar(500);not null"`
	Location     string  `gorm:"type:varchar(250);index;not null"`
	Seats        string  `gorm:"type:varchar(250);not null"`
	HasToilet    bool    `gorm:"not null"`
	HasWifi      bool    `gorm:"not null"`
	HasSockets   bool    `gorm:"not null"`
	CanTakeCalls bool    `gorm:"not null"`
	CoffeePrice  *string `gorm:"type:varchar(250)"`
}

func (Cafe) TableName() string {
	return "cafe"
}

// CafeInput carries the fields of a cafe about to be created.
// A nil string means the field was not supplied at all.
type CafeInput struct {
	Name         *string
	MapURL       *string
	ImgURL       *string
	Location     *string
	Seats        *string
	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool
	CoffeePrice  *string
}

// MissingColumn returns the first required column left nil, or "" when all are set.
func (in CafeInput) MissingColumn() string {
	required := []struct {
		column string
		value  *string
	}{
		{"name", in.Name},
		{"map_url", in.MapURL},
		{"img_url", in.ImgURL},
		{"location", in.Location},
		{"seats", in.Seats},
	}
	for _, r := range required {
		if r.value == nil {
			return r.column
		}
	}
	return ""
}

// Cafe builds the record to insert. Callers check MissingColumn first.
func (in CafeInput) Cafe() Cafe {
	return Cafe{
		Name:         deref(in.Name),
		MapURL:       deref(in.MapURL),
		ImgURL:       deref(in.ImgURL),
		Location:     deref(in.Location),
		Seats:        deref(in.Seats),
		HasToilet:    in.HasToilet,
		HasWifi:      in.HasWifi,
		HasSockets:   in.HasSockets,
		CanTakeCalls: in.CanTakeCalls,
		CoffeePrice:  in.CoffeePrice,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

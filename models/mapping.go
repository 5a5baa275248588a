package models

// CafeMapping is the transport form of a Cafe: every column, by its column
// name, in table order.
type CafeMapping struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

func (c Cafe) ToMapping() CafeMapping {
	return CafeMapping{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

// ToMappings serializes a list of cafes, never returning nil so an empty
// list encodes as [].
func ToMappings(cafes []Cafe) []CafeMapping {
	out := make([]CafeMapping, 0, len(cafes))
	for _, c := range cafes {
		out = append(out, c.ToMapping())
	}
	return out
}

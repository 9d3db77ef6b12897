package order

// Order is a single customer's food request, tied to a table.
type Order struct {
	CustomerName string `json:"customer_name" gorm:"size:128;not null"`
	Orders       string `json:"orders"        gorm:"type:text;not null"`
	ID           uint   `json:"id"            gorm:"primaryKey"`
	TableNumber  int    `json:"table_number"  gorm:"not null"`
}

// Record is the fixed-shape view of an Order used for rendering and transport.
type Record struct {
	CustomerName string `json:"customer_name"`
	Orders       string `json:"orders"`
	ID           uint   `json:"id"`
	TableNumber  int    `json:"table_number"`
}

// Record serializes o.
func (o Order) Record() Record {
	return Record{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		TableNumber:  o.TableNumber,
		Orders:       o.Orders,
	}
}

// Records serializes a list of orders, preserving order. A nil or empty input
// yields an empty, non-nil slice.
func Records(orders []Order) []Record {
	out := make([]Record, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Record())
	}
	return out
}

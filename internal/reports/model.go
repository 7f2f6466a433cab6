package reports

// Delivery statuses as the upstream feed spells them.
const (
	StatusDelivered = "entregue"
	StatusPending   = "pendente"
	StatusCanceled  = "cancelado"
)

// Delivery is one delivery entry from the reporting feed.
type Delivery struct {
	ID     any     `json:"id"`
	Value  float64 `json:"valor"`
	Status string  `json:"status"`
}

// Summary tallies a batch of deliveries.
type Summary struct {
	Total          int     `json:"total_entregas"`
	Delivered      int     `json:"entregues"`
	Pending        int     `json:"pendentes"`
	Canceled       int     `json:"canceladas"`
	TotalValue     float64 `json:"valor_total"`
	DeliveredValue float64 `json:"valor_entregue"`
	SuccessRate    float64 `json:"taxa_sucesso"`
}

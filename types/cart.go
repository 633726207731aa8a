package types

// CartItem 购物车条目，以 title 作为唯一键
type CartItem struct {
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	DriveLink string `json:"driveLink"`
}

type CartView struct {
	Items      []CartItem `json:"items"`
	TotalPrice int64      `json:"totalPrice"`
}

// CartTotal 合计金额 = Σ price × max(quantity, 1)
// 不做汇率、税费、折扣
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * qty
	}
	return total
}

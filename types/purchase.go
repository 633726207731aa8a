package types

// ConfirmPaymentRequest 提交支付单号（人工转账后的自由文本，不做任何校验对账）
type ConfirmPaymentRequest struct {
	PaymentID string `json:"paymentId"`
}

type PurchaseResult struct {
	PaymentID string `json:"paymentId"`
	Appended  int    `json:"appended"`
	// 按 (title, paymentId) 去重后跳过的条目数
	Skipped int `json:"skipped"`
}

package billing

type GenerateRequest struct {
	TenancyID int64 `json:"tenancy_id" binding:"required"`
}

type PayRequest struct {
	BillID         int64  `json:"bill_id" binding:"required"`
	CardNumber     string `json:"card_number" binding:"required"`
	CardholderName string `json:"cardholder_name" binding:"required"`
	ExpiryMonth    string `json:"expiry_month" binding:"required"`
	ExpiryYear     string `json:"expiry_year" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
}

type PayResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package dto

// TransferRequest is the request body for creating a transfer. Amount is a
// pointer so a missing field is a shape error while an explicit zero reaches
// the domain validation.
type TransferRequest struct {
	FromAccountID   string   `json:"fromAccountId" binding:"required"`
	ToAccountNumber string   `json:"toAccountNumber" binding:"required,account_number"`
	Amount          *float64 `json:"amount" binding:"required"`
	Description     string   `json:"description" binding:"omitempty,max=140"`
}

// TopUpRequest is the request body for crediting an account.
type TopUpRequest struct {
	AccountID   string   `json:"accountId" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Description string   `json:"description" binding:"omitempty,max=140"`
}

// ProductRequestCreate is the request body for submitting a product request.
type ProductRequestCreate struct {
	AccountID   string `json:"accountId" binding:"required"`
	ProductType string `json:"productType" binding:"required,oneof=card account"`
	ProductName string `json:"productName" binding:"required,min=1,max=100"`
	EtaDays     *int   `json:"etaDays" binding:"required"`
	Note        string `json:"note" binding:"omitempty,max=200"`
}

// ListMeta is the meta block for list responses.
type ListMeta struct {
	Total int `json:"total"`
}

package domain

import "time"

// ProductType is the kind of product a request asks for.
type ProductType string

const (
	ProductTypeCard    ProductType = "card"
	ProductTypeAccount ProductType = "account"
)

// RequestStatus is the lifecycle state of a product request. Requests are
// created pending; no background processor advances them in this sandbox.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusProcessing RequestStatus = "processing"
	RequestStatusReady      RequestStatus = "ready"
)

// ProductRequest is a customer request for a new card or account product.
type ProductRequest struct {
	ID               string        `json:"id"`
	AccountID        string        `json:"accountId"`
	ProductType      ProductType   `json:"productType"`
	ProductName      string        `json:"productName"`
	SubmittedAt      time.Time     `json:"submittedAt"`
	Status           RequestStatus `json:"status"`
	EstimatedReadyAt time.Time     `json:"estimatedReadyAt"`
	Note             string        `json:"note,omitempty"`
}

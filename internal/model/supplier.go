package model

import "github.com/google/uuid"

type Supplier struct {
	ID      uuid.UUID
	Name    string
	Address string
	WebURL  string
	Phone   string
	Email   string
}

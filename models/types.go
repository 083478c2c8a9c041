package models

import "time"

// Policy names
const (
	PolicyBalanced  = "balanced"
	PolicyExclusive = "exclusive"
)

// Request types

type CreateDrawRequest struct {
	Name string `json:"name"`
}

type CreateItemRequest struct {
	Name string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type DrawResponse struct {
	Item            string `json:"item"`
	AlreadyAssigned bool   `json:"alreadyAssigned"`
}

type DeleteItemResponse struct {
	Success bool `json:"success"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Domain types

type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// ItemUsage is a catalog item with the number of draws referencing it.
type ItemUsage struct {
	Item  Item
	Count int
}

type Draw struct {
	ID         string    `json:"id"`
	PersonName string    `json:"personName"`
	PersonKey  string    `json:"-"` // case-folded PersonName, unique
	ItemID     string    `json:"itemId"`
	ItemName   string    `json:"itemName"`
	Policy     string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DrawView is the public shape of a draw in listings and the live feed.
type DrawView struct {
	PersonName string    `json:"personName"`
	ItemName   string    `json:"itemName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (d Draw) View() DrawView {
	return DrawView{
		PersonName: d.PersonName,
		ItemName:   d.ItemName,
		CreatedAt:  d.CreatedAt,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package models

// InventoryCategories is the fixed category enumeration for inventory items
var InventoryCategories = []string{"Electronics", "Furniture", "Stationery", "Accessories", "Others"}

// InventoryRequest is the request body for creating/updating inventory items
type InventoryRequest struct {
	ItemName string  `json:"itemName" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Quantity float64 `json:"quantity"`
	Status   string  `json:"status" validate:"required,oneof=Available Assigned Damaged Lost 'Under Repair'"`
	Vendor   string  `json:"vendor"`
	Price    float64 `json:"price"`
}

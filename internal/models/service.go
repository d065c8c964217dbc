package models

// Service is a record from the remote services collection.
//
// ID is assigned by the store on insert and never changes. SelfID is the
// denormalized copy of the id stamped into the record by a second write
// right after creation. Name and Price are the only mutable fields;
// Creator and CreatedAt are frozen at creation time.
type Service struct {
	ID        string `json:"id"`
	SelfID    string `json:"selfId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Creator   string `json:"creator"`
	CreatedAt string `json:"createdAt"`
}

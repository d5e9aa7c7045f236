package model

// WheelCategory groups puzzle words
type WheelCategory struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
}

// WheelWord is a puzzle entry. Approved is only ever set by a bulk approval.
type WheelWord struct {
	ID         string `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryID string `json:"categoryID,omitempty" bson:"categoryID,omitempty"`
	Word       string `json:"word,omitempty" bson:"word,omitempty"`
	Approved   bool   `json:"approved" bson:"approved,omitempty"`
}

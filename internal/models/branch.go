package models

// Branch is one office location. ID is assigned by the store on creation and
// never changes afterwards.
type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

package model

// Telemetry is an externally-sourced point total for one start number,
// uploaded by the organizer as a full batch. The set is replaced wholesale
// on every upload, so rows carry no timestamps and no history.
type Telemetry struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	StartNumber string `json:"start_number" gorm:"not null;index"` // matches User.Name, not User.ID
	GroupName   string `json:"group" gorm:"column:group_name;not null"`
	Points      int    `json:"points" gorm:"not null"`
}

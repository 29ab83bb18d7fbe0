package model

// Booking one confirmed reservation of the conference room — table bookings
//
// Day, StartTime and EndTime reference the fixed calendar catalogs by name;
// they are validated against the catalogs at create time, never here.
type Booking struct {
	BookingID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	UserID     string `gorm:"type:uuid;not null"                             json:"user_id"`
	Professor  string `gorm:"type:varchar(100);not null"                     json:"professor"`
	Department string `gorm:"type:varchar(100);not null"                     json:"department"`
	School     string `gorm:"type:varchar(100);not null"                     json:"school"`
	Room       string `gorm:"type:varchar(50);not null"                      json:"room"`
	Day        string `gorm:"type:varchar(10);not null"                      json:"day"`
	StartTime  string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime    string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	SoftDeleteModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Booking) TableName() string { return "bookings" }

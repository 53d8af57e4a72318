package models

// ContactMessageModel is a message submitted through the public contact
// form. Only the read/replied flags ever change after creation.
type ContactMessageModel struct {
	Base
	Name      string `json:"name"      gorm:"not null"`
	Email     string `json:"email"     gorm:"not null"`
	Subject   string `json:"subject"   gorm:"not null"`
	Message   string `json:"message"   gorm:"type:text;not null"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent" gorm:"type:varchar(512)"`
	IsRead    bool   `json:"isRead"    gorm:"default:false;index"`
	IsReplied bool   `json:"isReplied" gorm:"default:false"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

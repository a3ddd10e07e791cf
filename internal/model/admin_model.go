package model

type AdminAccount struct {
	Username string `gorm:"type:varchar(128);primaryKey"`
	Password string `gorm:"type:varchar(255);not null"`
}

func (AdminAccount) TableName() string {
	return "system_admin"
}

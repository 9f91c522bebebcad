package user

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name" json:"name"`
	Email        string `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
}

func (User) TableName() string {
	return "users"
}

package group

// Group is a study group.
type Group struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	CreatedBy *int64 `gorm:"column:created_by" json:"createdBy,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// Member links a user to a group.
type Member struct {
	ID      int64 `gorm:"column:id;primaryKey" json:"id"`
	GroupID int64 `gorm:"column:group_id;index:idx_group_members_group" json:"groupId"`
	UserID  int64 `gorm:"column:user_id" json:"userId"`
}

func (Member) TableName() string {
	return "group_members"
}

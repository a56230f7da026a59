package entity

// Role represents a user role for role-based access control
type Role struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// Role IDs seeded by migrations
const (
	RoleIDAdmin     = 1
	RoleIDModerator = 2
	RoleIDDoctor    = 3
	RoleIDNurse     = 4
	RoleIDClient    = 5
)

package model

import "github.com/videomack/videomack/pkg/constants"

// User is the account/profile record. The social counters are denormalized:
// they are written as-is by SaveUser and are never recomputed from the
// subscriptions table.
type User struct {
	Id                 string  `gorm:"column:id;primaryKey" json:"id"`
	FullName           string  `gorm:"column:full_name" json:"full_name"`
	Username           string  `gorm:"column:username" json:"username"`
	Email              string  `gorm:"column:email" json:"email"`
	PhoneNumber        string  `gorm:"column:phone_number" json:"phone_number"`
	Country            string  `gorm:"column:country" json:"country"`
	CountryCode        string  `gorm:"column:country_code" json:"country_code"`
	Bio                string  `gorm:"column:bio" json:"bio"`
	IsAuthenticated    bool    `gorm:"column:is_authenticated" json:"is_authenticated"`
	IsActivated        bool    `gorm:"column:is_activated" json:"is_activated"`
	IsVerified         bool    `gorm:"column:is_verified" json:"is_verified"`
	VerificationType   string  `gorm:"column:verification_type" json:"verification_type"`
	Avatar             string  `gorm:"column:avatar" json:"avatar"`
	CoverPhoto         string  `gorm:"column:cover_photo" json:"cover_photo"`
	SubscriberCount    int64   `gorm:"column:subscriber_count" json:"subscriber_count"`
	FollowingCount     int64   `gorm:"column:following_count" json:"following_count"`
	WalletBalance      float64 `gorm:"column:wallet_balance" json:"wallet_balance"`
	IsTwoFactorEnabled bool    `gorm:"column:is_two_factor_enabled" json:"is_two_factor_enabled"`
	// Comma separated badge ids, see BadgeCatalog.
	Badges string `gorm:"column:badges" json:"badges"`
}

func (u *User) TableName() string {
	return constants.UserTableName
}

// Badge is an achievement definition. The catalog is fixed; users reference
// earned badges by id.
type Badge struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

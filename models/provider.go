package models

import "time"

// Provider is the venue-owning actor. Providers register as unapproved and
// may only list venues once an admin approves them.
type Provider struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	PhoneNumber  string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`

	IsApproved bool   `bson:"isApproved" json:"isApproved"`
	FCMToken   string `bson:"fcmToken,omitempty" json:"-"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

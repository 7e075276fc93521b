// token.go - Defines the auth Token model (one opaque key per user)

package models

// Token is the bearer credential handed out by /api/login. It is created
// lazily on the first successful login and reused on every login after that,
// so the same user always presents the same key.
type Token struct {
	ID     uint   `gorm:"primaryKey"`                                      // Unique token ID (primary key)
	Key    string `gorm:"unique;not null"`                                 // Opaque bearer key presented in the Authorization header
	UserID uint   `gorm:"unique;not null"`                                 // One token per user (unique foreign key)
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`  // Owning user; token dies with the user
}

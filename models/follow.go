package models

import "gorm.io/gorm"

// Follow links a follower to the user they follow.
// A pair may exist at most once.
type Follow struct {
    gorm.Model
    FollowerID uint `gorm:"uniqueIndex:idx_follower_followee;not null"`
    FolloweeID uint `gorm:"uniqueIndex:idx_follower_followee;not null"`
}

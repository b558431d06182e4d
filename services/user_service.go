package services

import (
	"errors"
	"sort"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"

	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// UserProfile is the public view of a user.
type UserProfile struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	HeightCm    float64   `json:"height_cm,omitempty"`
	Sex         string    `json:"sex,omitempty"`
	Birthday    time.Time `json:"birthday,omitempty"`
	FitnessGoal string    `json:"fitness_goal"`
	Followers   int64     `json:"followers"`
	Following   int64     `json:"following"`
}

func GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var followers, following int64
	config.DB.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&followers)
	config.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&following)

	return &UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		HeightCm:    user.HeightCm,
		Sex:         user.Sex,
		Birthday:    user.Birthday,
		FitnessGoal: user.FitnessGoal,
		Followers:   followers,
		Following:   following,
	}, nil
}

type ProfileUpdate struct {
	FullName    string    `json:"full_name"`
	Bio         string    `json:"bio"`
	HeightCm    float64   `json:"height_cm"`
	Sex         string    `json:"sex"`
	Birthday    time.Time `json:"birthday"`
	FitnessGoal string    `json:"fitness_goal"`
	MFAEnabled  *bool     `json:"mfa_enabled"`
}

func UpdateUserProfile(userID uint, upd ProfileUpdate) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	user.FullName = upd.FullName
	user.Bio = upd.Bio
	user.HeightCm = upd.HeightCm
	user.Sex = upd.Sex
	user.Birthday = upd.Birthday
	user.FitnessGoal = upd.FitnessGoal
	if upd.MFAEnabled != nil {
		user.MFAEnabled = *upd.MFAEnabled
	}

	return config.DB.Save(&user).Error
}

func SetAvatarURL(userID uint, url string) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error
}

// FollowUser creates the follower→followee edge; doing it twice is a no-op.
func FollowUser(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	var followee models.User
	if err := config.DB.First(&followee, followeeID).Error; err != nil {
		return err
	}

	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err := config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		FirstOrCreate(&follow).Error
	if err != nil {
		return err
	}

	EmitAlert(followeeID, "new_follower", "You have a new follower")
	return nil
}

func UnfollowUser(followerID, followeeID uint) error {
	return config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func ListFollowers(userID uint) ([]UserProfile, error) {
	return listFollowEdge(userID, "followee_id", "follower_id")
}

func ListFollowing(userID uint) ([]UserProfile, error) {
	return listFollowEdge(userID, "follower_id", "followee_id")
}

func listFollowEdge(userID uint, whereCol, selectCol string) ([]UserProfile, error) {
	var users []models.User
	err := config.DB.
		Joins("JOIN follows ON follows."+selectCol+" = users.id").
		Where("follows."+whereCol+" = ? AND follows.deleted_at IS NULL", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, UserProfile{
			ID:        u.ID,
			FullName:  u.FullName,
			Bio:       u.Bio,
			AvatarURL: u.AvatarURL,
		})
	}
	return out, nil
}

// FeedItem is one entry of the followed-users activity feed.
type FeedItem struct {
	UserID     uint      `json:"user_id"`
	FullName   string    `json:"full_name"`
	Kind       string    `json:"kind"` // "workout" | "activity"
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
	DistanceKm float64   `json:"distance_km,omitempty"`
}

// GetFeed returns recent workouts and GPS activities of followed users,
// newest first.
func GetFeed(userID uint, limit int) ([]FeedItem, error) {
	if limit <= 0 {
		limit = 20
	}

	var followeeIDs []uint
	if err := config.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &followeeIDs).Error; err != nil {
		return nil, err
	}
	if len(followeeIDs) == 0 {
		return []FeedItem{}, nil
	}

	names := map[uint]string{}
	var users []models.User
	if err := config.DB.Where("id IN ?", followeeIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	var workouts []models.Workout
	if err := config.DB.
		Where("user_id IN ?", followeeIDs).
		Order("performed_at DESC").
		Limit(limit).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	var activities []models.Activity
	if err := config.DB.
		Where("user_id IN ?", followeeIDs).
		Order("started_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}

	feed := make([]FeedItem, 0, len(workouts)+len(activities))
	for _, w := range workouts {
		feed = append(feed, FeedItem{
			UserID:     w.UserID,
			FullName:   names[w.UserID],
			Kind:       "workout",
			Title:      w.Name,
			OccurredAt: w.PerformedAt,
		})
	}
	for _, a := range activities {
		feed = append(feed, FeedItem{
			UserID:     a.UserID,
			FullName:   names[a.UserID],
			Kind:       "activity",
			Title:      a.Title,
			OccurredAt: a.StartedAt,
			DistanceKm: round2(a.DistanceKm),
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].OccurredAt.After(feed[j].OccurredAt)
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

// LatestWeight returns the most recent weight log, or nil when the user
// has never logged one.
func LatestWeight(userID uint) (*models.WeightLog, error) {
	var w models.WeightLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

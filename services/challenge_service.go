package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/varad16/fittrack-pro/models"
	"github.com/varad16/fittrack-pro/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidChallengeWindow = errors.New("challenge end date must not be before start date")
	ErrUnknownChallengeType   = errors.New("unknown challenge type")
	ErrAlreadyJoined          = errors.New("already joined this challenge")
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

type ChallengeRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" binding:"required"`
	GoalValue   float64   `json:"goal_value" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

func validChallengeType(t string) bool {
	switch models.ChallengeType(t) {
	case models.ChallengeDistance, models.ChallengeWorkoutCount,
		models.ChallengeWeightLoss, models.ChallengeSteps:
		return true
	}
	return false
}

func (s *ChallengeService) CreateChallenge(creatorID uint, req ChallengeRequest) (*models.Challenge, error) {
	if !validChallengeType(req.Type) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChallengeType, req.Type)
	}
	if req.GoalValue <= 0 {
		return nil, ErrInvalidGoal
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidChallengeWindow
	}

	ch := models.Challenge{
		Name:        req.Name,
		Description: req.Description,
		Type:        models.ChallengeType(req.Type),
		GoalValue:   req.GoalValue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatorID:   creatorID,
	}
	if err := s.db.Create(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *ChallengeService) GetChallenge(id uint) (*models.Challenge, error) {
	var ch models.Challenge
	if err := s.db.Preload("Participants").First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *ChallengeService) ListChallenges(activeOnly bool) ([]models.Challenge, error) {
	q := s.db.Order("start_date DESC")
	if activeOnly {
		now := time.Now().UTC()
		q = q.Where("start_date <= ? AND end_date >= ?", now, now)
	}

	var challenges []models.Challenge
	err := q.Find(&challenges).Error
	return challenges, err
}

// Join enrolls a user once; a second join is rejected, not duplicated.
func (s *ChallengeService) Join(userID, challengeID uint) (*models.ChallengeParticipant, error) {
	if _, err := s.GetChallenge(challengeID); err != nil {
		return nil, err
	}

	var existing models.ChallengeParticipant
	err := s.db.
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := models.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
		JoinedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ChallengeService) Leave(userID, challengeID uint) error {
	res := s.db.
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Delete(&models.ChallengeParticipant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// progressFor computes one participant's raw progress from their history,
// scoped to the challenge window.
func (s *ChallengeService) progressFor(ch *models.Challenge, userID uint) (float64, error) {
	from, to := ch.StartDate, ch.EndDate

	switch ch.Type {
	case models.ChallengeDistance:
		return SumDistanceInWindow(userID, from, to)
	case models.ChallengeWorkoutCount:
		n, err := CountWorkoutsInWindow(userID, from, to)
		return float64(n), err
	case models.ChallengeWeightLoss:
		return WeightLossInWindow(userID, from, to)
	case models.ChallengeSteps:
		return SumStepsInWindow(userID, from, to)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChallengeType, ch.Type)
}

// Leaderboard recomputes every participant's standing from source records.
// Nothing is cached between requests.
func (s *ChallengeService) Leaderboard(challengeID uint) ([]LeaderboardEntry, error) {
	ch, err := s.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}

	participants := make([]ParticipantProgress, 0, len(ch.Participants))
	for _, p := range ch.Participants {
		progress, err := s.progressFor(ch, p.UserID)
		if err != nil {
			return nil, err
		}

		var user models.User
		if err := s.db.First(&user, p.UserID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		participants = append(participants, ParticipantProgress{
			UserID:   p.UserID,
			FullName: user.FullName,
			Progress: progress,
			JoinedAt: p.JoinedAt,
		})
	}

	entries, err := ComputeLeaderboard(ch.GoalValue, participants)
	if err != nil {
		return nil, err
	}

	s.notifyNewCompletions(ch, entries)
	return entries, nil
}

// notifyNewCompletions marks first-time goal crossings and fans the alert
// out. Completion state only gates the notification; ranking never reads
// it.
func (s *ChallengeService) notifyNewCompletions(ch *models.Challenge, entries []LeaderboardEntry) {
	for _, e := range entries {
		if !e.IsCompleted {
			continue
		}

		var p models.ChallengeParticipant
		err := s.db.
			Where("challenge_id = ? AND user_id = ?", ch.ID, e.UserID).
			First(&p).Error
		if err != nil || p.CompletedAt != nil {
			continue
		}

		now := time.Now().UTC()
		p.CompletedAt = &now
		if err := s.db.Save(&p).Error; err != nil {
			log.Errorf("mark challenge completion: %v", err)
			continue
		}

		EmitAlert(e.UserID, "challenge_completed",
			fmt.Sprintf("You completed the challenge %q!", ch.Name))

		var u models.User
		if err := s.db.First(&u, e.UserID).Error; err == nil {
			if err := utils.SendChallengeCompletedEmail(u.Email, ch.Name); err != nil {
				log.Warnf("challenge completion email to %s: %v", u.Email, err)
			}
		}
	}
}

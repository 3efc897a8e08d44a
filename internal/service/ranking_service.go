package service

import (
	"sync"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RankingService recomputes stored ranks for an exam and serves the public
// ranking read. Both use the same ordering: score descending, ties broken by
// earliest start time.
type RankingService interface {
	RecomputeRanking(examID uint)
	GetRanking(examID uint) ([]dto.ParticipantResponse, error)
}

type rankingService struct {
	examRepo        repository.ExamRepository
	participantRepo repository.ParticipantRepository
	db              *gorm.DB

	// Per-exam locks serialize concurrent recomputations of the same exam;
	// different exams recompute independently.
	locks sync.Map // examID -> *sync.Mutex
}

func NewRankingService(
	examRepo repository.ExamRepository,
	participantRepo repository.ParticipantRepository,
	db *gorm.DB,
) RankingService {
	return &rankingService{
		examRepo:        examRepo,
		participantRepo: participantRepo,
		db:              db,
	}
}

func (s *rankingService) examLock(examID uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(examID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// RecomputeRanking assigns rank = 1-based position ordered by score
// descending, earliest started_at first on ties. The full rank set is
// computed and written inside one transaction, so readers never observe a
// partial assignment. Failure leaves prior ranks stale until the next run;
// ranks are read lazily so that is acceptable.
func (s *rankingService) RecomputeRanking(examID uint) {
	mu := s.examLock(examID)
	mu.Lock()
	defer mu.Unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var participants []model.Participant
		if err := tx.Where("exam_id = ?", examID).
			Order("score DESC, started_at ASC").
			Find(&participants).Error; err != nil {
			return err
		}
		for i := range participants {
			rank := uint(i + 1)
			if err := tx.Model(&model.Participant{}).
				Where("id = ?", participants[i].ID).
				UpdateColumn("rank", rank).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("RecomputeRanking: failed to update ranking")
		return
	}
	log.Info().Uint("examID", examID).Msg("Ranking recomputed")
}

// GetRanking returns the exam's participants ordered for the public read.
func (s *rankingService) GetRanking(examID uint) ([]dto.ParticipantResponse, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		return nil, model.ErrExamNotFound
	}
	participants, err := s.participantRepo.FindRanking(examID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ParticipantResponse, 0, len(participants))
	if err := copier.Copy(&resp, &participants); err != nil {
		return nil, err
	}
	return resp, nil
}

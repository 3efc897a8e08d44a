package service

import (
	"errors"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService is the asynchronous scoring path. It is invoked out-of-band
// by the task dispatcher after an answer is persisted, with at-least-once
// delivery, so the score credit must be idempotent per answer.
type GradingService interface {
	GradeAnswer(answerID uint)
}

type gradingService struct {
	answerRepo repository.AnswerRepository
	dispatcher *task.Dispatcher
	db         *gorm.DB
}

func NewGradingService(
	answerRepo repository.AnswerRepository,
	dispatcher *task.Dispatcher,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		answerRepo: answerRepo,
		dispatcher: dispatcher,
		db:         db,
	}
}

// GradeAnswer credits the participant's score for a correct, not yet graded
// answer, then queues a ranking refresh for the exam.
//
// Errors never propagate to the dispatcher. A missing answer is non-fatal:
// the synchronous path may have applied the update and the row vanished
// since. The graded flag is flipped with a guarded UPDATE (graded = false in
// the predicate), so running twice, or racing the synchronous path, never
// double-credits.
func (s *gradingService) GradeAnswer(answerID uint) {
	answer, err := s.answerRepo.FindByIDWithRelations(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Uint("answerID", answerID).Msg("GradeAnswer: answer not found")
		} else {
			log.Error().Err(err).Uint("answerID", answerID).Msg("GradeAnswer: failed to load answer")
		}
		return
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Answer{}).
			Where("id = ? AND graded = ?", answer.ID, false).
			UpdateColumn("graded", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already graded by the synchronous path or an earlier delivery.
			return nil
		}
		if answer.Choice != nil && answer.Choice.IsCorrect {
			return tx.Model(&model.Participant{}).
				Where("id = ?", answer.ParticipantID).
				UpdateColumn("score", gorm.Expr("score + ?", float64(answer.Question.Points))).Error
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("GradeAnswer: scoring transaction failed")
		return
	}

	// The participant preload is empty when the row was removed in the
	// meantime; there is no exam left to re-rank for this answer.
	if answer.Participant.ID == 0 {
		log.Warn().Uint("answerID", answerID).Msg("GradeAnswer: participant no longer exists, skipping ranking refresh")
		return
	}

	// Ranking refresh runs even when scoring was a no-op.
	s.dispatcher.Enqueue(task.UpdateRanking, answer.Participant.ExamID)
}

package service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
	"gorm.io/gorm"
)

func newAnswerService(db *gorm.DB) service.AnswerService {
	return service.NewAnswerService(
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		repository.NewParticipantRepository(db),
		repository.NewAnswerRepository(db),
		task.NewDispatcher(1, 16),
		db,
	)
}

func participantScore(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var participant model.Participant
	if err := db.First(&participant, id).Error; err != nil {
		t.Fatalf("failed to reload participant: %v", err)
	}
	return participant.Score
}

func TestSubmitCorrectAnswerScores(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	answer, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: choice.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !answer.IsCorrect {
		t.Fatal("expected answer to be marked correct")
	}
	if got := participantScore(t, db, participant.ID); got != 10 {
		t.Fatalf("expected score 10, got %f", got)
	}
}

func TestSubmitIncorrectAnswerLeavesScore(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	wrong := seedChoice(t, db, question.ID, false)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	answer, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: wrong.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if answer.IsCorrect {
		t.Fatal("expected answer to be marked incorrect")
	}
	if got := participantScore(t, db, participant.ID); got != 0 {
		t.Fatalf("expected score 0, got %f", got)
	}
}

func TestSubmitDuplicateAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	if _, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: choice.ID}); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	_, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: choice.ID})
	if !errors.Is(err, model.ErrDuplicateAnswer) {
		t.Fatalf("expected ErrDuplicateAnswer, got %v", err)
	}

	var count int64
	db.Model(&model.Answer{}).Where("participant_id = ? AND question_id = ?", participant.ID, question.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 answer row, got %d", count)
	}
	if got := participantScore(t, db, participant.ID); got != 10 {
		t.Fatalf("expected score 10 after duplicate rejection, got %f", got)
	}
}

func TestSubmitChoiceMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	other := seedQuestion(t, db, exam.ID, 5)
	choiceOfOther := seedChoice(t, db, other.ID, true)
	seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	_, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: choiceOfOther.ID})
	if !errors.Is(err, model.ErrChoiceMismatch) {
		t.Fatalf("expected ErrChoiceMismatch, got %v", err)
	}

	var count int64
	db.Model(&model.Answer{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no answer rows after mismatch, got %d", count)
	}
}

func TestSubmitNotRegistered(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)

	_, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: choice.ID})
	if !errors.Is(err, model.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestSubmitUnknownQuestionAndChoice(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	_, err := svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: 999, ChoiceID: 1})
	if !errors.Is(err, model.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}

	_, err = svc.Submit(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, ChoiceID: 999})
	if !errors.Is(err, model.ErrChoiceNotFound) {
		t.Fatalf("expected ErrChoiceNotFound, got %v", err)
	}
}

func TestConcurrentSubmissionsAccumulate(t *testing.T) {
	// Two simultaneous correct answers on different questions must both land:
	// the increment is applied in place, never read-then-written separately.
	db := newTestDB(t)
	svc := newAnswerService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	first := seedQuestion(t, db, exam.ID, 10)
	second := seedQuestion(t, db, exam.ID, 7)
	firstChoice := seedChoice(t, db, first.ID, true)
	secondChoice := seedChoice(t, db, second.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, req := range []dto.SubmitAnswerRequest{
		{QuestionID: first.ID, ChoiceID: firstChoice.ID},
		{QuestionID: second.ID, ChoiceID: secondChoice.ID},
	} {
		wg.Add(1)
		go func(r dto.SubmitAnswerRequest) {
			defer wg.Done()
			if _, err := svc.Submit(user.ID, r); err != nil {
				errs <- err
			}
		}(req)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent submit failed: %v", err)
	}

	if got := participantScore(t, db, participant.ID); got != 17 {
		t.Fatalf("expected score 17 after both submissions, got %f", got)
	}
}

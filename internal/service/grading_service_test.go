package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func newGradingService(db *gorm.DB) service.GradingService {
	return service.NewGradingService(
		repository.NewAnswerRepository(db),
		task.NewDispatcher(1, 16),
		db,
	)
}

func seedAnswer(t *testing.T, db *gorm.DB, participantID, questionID, choiceID uint, correct, graded bool) *model.Answer {
	t.Helper()
	answer := &model.Answer{
		ParticipantID: participantID,
		QuestionID:    questionID,
		ChoiceID:      &choiceID,
		IsCorrect:     correct,
		Graded:        graded,
	}
	if err := db.Create(answer).Error; err != nil {
		t.Fatalf("failed to seed answer: %v", err)
	}
	return answer
}

func TestGradeAnswerCreditsUngradedAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newGradingService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())
	answer := seedAnswer(t, db, participant.ID, question.ID, choice.ID, true, false)

	svc.GradeAnswer(answer.ID)

	if got := participantScore(t, db, participant.ID); got != 10 {
		t.Fatalf("expected score 10 after grading, got %f", got)
	}
	var reloaded model.Answer
	if err := db.First(&reloaded, answer.ID).Error; err != nil {
		t.Fatalf("failed to reload answer: %v", err)
	}
	if !reloaded.Graded {
		t.Fatal("expected answer to be marked graded")
	}
}

func TestGradeAnswerIsIdempotent(t *testing.T) {
	// At-least-once delivery means the same answer id can arrive twice; the
	// graded flag gates the increment so the score is credited exactly once.
	db := newTestDB(t)
	svc := newGradingService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())
	answer := seedAnswer(t, db, participant.ID, question.ID, choice.ID, true, false)

	svc.GradeAnswer(answer.ID)
	svc.GradeAnswer(answer.ID)

	if got := participantScore(t, db, participant.ID); got != 10 {
		t.Fatalf("expected score 10 after duplicate delivery, got %f", got)
	}
}

func TestGradeAnswerSkipsAlreadyGraded(t *testing.T) {
	// The synchronous submission path scores at insert time; the async task
	// must treat such answers as a no-op.
	db := newTestDB(t)
	svc := newGradingService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 10, time.Now())
	answer := seedAnswer(t, db, participant.ID, question.ID, choice.ID, true, true)

	svc.GradeAnswer(answer.ID)

	if got := participantScore(t, db, participant.ID); got != 10 {
		t.Fatalf("expected score to stay 10, got %f", got)
	}
}

func TestGradeAnswerIncorrectChoice(t *testing.T) {
	db := newTestDB(t)
	svc := newGradingService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	wrong := seedChoice(t, db, question.ID, false)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())
	answer := seedAnswer(t, db, participant.ID, question.ID, wrong.ID, false, false)

	svc.GradeAnswer(answer.ID)

	if got := participantScore(t, db, participant.ID); got != 0 {
		t.Fatalf("expected score 0 for incorrect answer, got %f", got)
	}
}

func TestGradeAnswerDeletedParticipantSkipsRankingRefresh(t *testing.T) {
	// A removed participant leaves the preload empty; the task must not queue
	// a ranking refresh for a zero exam id.
	db := newTestDB(t)
	d := task.NewDispatcher(1, 16)
	refreshed := make(chan uint, 4)
	d.Register(task.UpdateRanking, func(id uint) {
		refreshed <- id
	})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	svc := service.NewGradingService(repository.NewAnswerRepository(db), d, db)

	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)
	question := seedQuestion(t, db, exam.ID, 10)
	choice := seedChoice(t, db, question.ID, true)
	participant := seedParticipant(t, db, user.ID, exam.ID, 0, time.Now())
	answer := seedAnswer(t, db, participant.ID, question.ID, choice.ID, true, false)

	if err := repository.NewParticipantRepository(db).Delete(participant.ID); err != nil {
		t.Fatalf("failed to remove participant: %v", err)
	}

	svc.GradeAnswer(answer.ID)
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	select {
	case id := <-refreshed:
		t.Fatalf("expected no ranking refresh, got one for exam %d", id)
	default:
	}
}

func TestGradeAnswerMissingAnswerLogsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newGradingService(db)

	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	// Must not panic or surface an error to the dispatcher; the failure is
	// logged and the task ends.
	svc.GradeAnswer(999)

	if !strings.Contains(buf.String(), "not found") {
		t.Fatalf("expected a not-found log entry, got %q", buf.String())
	}
}

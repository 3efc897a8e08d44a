package service_test

import (
	"errors"
	"testing"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"gorm.io/gorm"
)

func newRegistrationService(db *gorm.DB) service.RegistrationService {
	return service.NewRegistrationService(
		repository.NewExamRepository(db),
		repository.NewParticipantRepository(db),
		db,
	)
}

func TestRegisterCreatesParticipant(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 3)

	participant, err := svc.Register(user.ID, exam.ID)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if participant.CurrentAttempt != 1 {
		t.Fatalf("expected attempt 1, got %d", participant.CurrentAttempt)
	}
	if participant.Score != 0 {
		t.Fatalf("expected score 0, got %f", participant.Score)
	}
	if participant.Rank != nil {
		t.Fatalf("expected nil rank, got %d", *participant.Rank)
	}
	if participant.StartedAt == nil {
		t.Fatal("expected started_at to be set")
	}
}

func TestRegisterAlreadyRegistered(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)

	if _, err := svc.Register(user.ID, exam.ID); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(user.ID, exam.ID)
	if !errors.Is(err, model.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	var count int64
	db.Model(&model.Participant{}).Where("user_id = ? AND exam_id = ?", user.ID, exam.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 participant row, got %d", count)
	}
}

func TestRegisterAttemptLimitBoundary(t *testing.T) {
	// The limit check is exclusive: next_attempt >= max_attempts rejects, so
	// an exam with max_attempts=1 rejects even the very first registration.
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Single shot", 1)

	_, err := svc.Register(user.ID, exam.ID)
	if !errors.Is(err, model.ErrAttemptLimitExceeded) {
		t.Fatalf("expected ErrAttemptLimitExceeded, got %v", err)
	}

	var count int64
	db.Model(&model.Participant{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no participant rows after rejection, got %d", count)
	}
}

func TestRegisterAfterRemovalAdvancesAttempt(t *testing.T) {
	// An admin-removed registration stays in the table as a soft-deleted row
	// holding its (user, exam, attempt) slot. Re-registering must advance to
	// the next attempt number instead of colliding with that slot.
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 5)

	first, err := svc.Register(user.ID, exam.ID)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	participantRepo := repository.NewParticipantRepository(db)
	if err := participantRepo.Delete(first.ID); err != nil {
		t.Fatalf("failed to remove participant: %v", err)
	}

	second, err := svc.Register(user.ID, exam.ID)
	if err != nil {
		t.Fatalf("register after removal failed: %v", err)
	}
	if second.CurrentAttempt != 2 {
		t.Fatalf("expected attempt 2 after removal, got %d", second.CurrentAttempt)
	}
}

func TestRegisterRemovedAttemptsCountTowardLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	exam := seedExam(t, db, "Logic", 2)

	first, err := svc.Register(user.ID, exam.ID)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	participantRepo := repository.NewParticipantRepository(db)
	if err := participantRepo.Delete(first.ID); err != nil {
		t.Fatalf("failed to remove participant: %v", err)
	}

	_, err = svc.Register(user.ID, exam.ID)
	if !errors.Is(err, model.ErrAttemptLimitExceeded) {
		t.Fatalf("expected ErrAttemptLimitExceeded, got %v", err)
	}
}

func TestRegisterExamNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.Register(user.ID, 999)
	if !errors.Is(err, model.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}
}

func TestRegisterIndependentExams(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService(db)
	user := seedUser(t, db, "alice")
	first := seedExam(t, db, "First", 2)
	second := seedExam(t, db, "Second", 2)

	if _, err := svc.Register(user.ID, first.ID); err != nil {
		t.Fatalf("register for first exam failed: %v", err)
	}
	if _, err := svc.Register(user.ID, second.ID); err != nil {
		t.Fatalf("register for second exam failed: %v", err)
	}
}

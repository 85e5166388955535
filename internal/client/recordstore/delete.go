package recordstore

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"dentaldesk-service/internal/app/models"
)

// ErrNoStagedDelete means ConfirmDelete ran without a prior StageDelete.
var ErrNoStagedDelete = errors.New("no patient staged for deletion")

// StageDelete opens the confirmation gate for a patient. Nothing is deleted
// until ConfirmDelete.
func (s *Store) StageDelete(patient models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged := patient
	s.pendingDelete = &staged
	s.view.DeleteConfirmOpen = true
}

// CancelDelete closes the confirmation gate without touching the patient.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = nil
	s.view.DeleteConfirmOpen = false
}

// StagedDelete reports the patient currently awaiting confirmation, if any.
func (s *Store) StagedDelete() *models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingDelete == nil {
		return nil
	}
	staged := *s.pendingDelete
	return &staged
}

// ConfirmDelete deletes the staged patient remotely. If it was the current
// selection, the selection and its dependent detail state are cleared before
// the collection reload, so a reader never sees details for a patient the
// list no longer contains. The confirmation gate is closed on every outcome.
func (s *Store) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if s.pendingDelete == nil {
		s.mu.Unlock()
		return ErrNoStagedDelete
	}
	staged := *s.pendingDelete
	s.mu.Unlock()

	if err := s.remote.DeletePatient(ctx, staged.ID); err != nil {
		s.log.Error("Patient delete failed", zap.Int("patientID", staged.ID), zap.Error(err))
		s.mu.Lock()
		s.pendingDelete = nil
		s.view.DeleteConfirmOpen = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == staged.ID {
		s.selectLocked(ctx, nil)
	}
	s.pendingDelete = nil
	s.view.DeleteConfirmOpen = false
	s.mu.Unlock()

	s.log.Info("Patient deleted", zap.Int("patientID", staged.ID))

	if err := s.LoadPatients(ctx, staged.UserID); err != nil {
		s.log.Error("Collection reload after delete failed", zap.Int("userID", staged.UserID), zap.Error(err))
	}
	return nil
}

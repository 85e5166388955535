package recordstore

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNameRequired is the pre-flight validation failure for a creation
	// submit with a blank first or last name. No remote call is made.
	ErrNameRequired = errors.New("first name and last name are required")

	// ErrCreateInFlight guards against double submission while a create
	// request is still pending.
	ErrCreateInFlight = errors.New("a patient creation is already in progress")
)

// SetFormField writes one creation form field by its canonical name.
func (s *Store) SetFormField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.set(name, value)
}

// FormField reads one creation form field by its canonical name.
func (s *Store) FormField(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.get(name)
}

// SubmitCreate runs the full creation workflow: validate names, create the
// bare patient, attempt the biodata from the form, reload the collection,
// select the new patient, and close the creation UI. A biodata failure is
// tolerated (the patient simply has no biodata); a patient-create failure
// aborts with the form and modal left as they were.
func (s *Store) SubmitCreate(ctx context.Context, userID int) error {
	s.mu.Lock()
	if s.creating {
		s.mu.Unlock()
		return ErrCreateInFlight
	}
	if strings.TrimSpace(s.form.get(FieldFirstName)) == "" || strings.TrimSpace(s.form.get(FieldLastName)) == "" {
		s.mu.Unlock()
		return ErrNameRequired
	}
	s.creating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.creating = false
		s.mu.Unlock()
	}()

	patient, err := s.remote.CreatePatient(ctx, userID)
	if err != nil {
		s.log.Error("Patient create failed", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	s.mu.Lock()
	payload, err := s.form.payload(patient.ID)
	s.mu.Unlock()
	if err != nil {
		s.log.Error("Biodata payload rejected, keeping patient without biodata", zap.Int("patientID", patient.ID), zap.Error(err))
	} else if _, err := s.remote.CreateBiodata(ctx, payload); err != nil {
		s.log.Error("Biodata create failed, keeping patient without biodata", zap.Int("patientID", patient.ID), zap.Error(err))
	}

	if err := s.LoadPatients(ctx, userID); err != nil {
		s.log.Error("Collection reload after create failed", zap.Int("userID", userID), zap.Error(err))
	}

	biodata, err := s.remote.GetBiodata(ctx, patient.ID)
	if err != nil {
		biodata = nil
	}

	s.mu.Lock()
	s.index.upsert(patient.ID, biodata)
	s.selectLocked(ctx, patient)
	s.form.reset()
	s.view.CreateOpen = false
	s.view.AddChoiceOpen = false
	s.mu.Unlock()

	s.log.Info("Patient created", zap.Int("patientID", patient.ID), zap.Int("userID", userID))
	return nil
}

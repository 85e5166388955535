package recordstore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"dentaldesk-service/internal/app/models"
)

// Store is the client-side source of truth for patient records: the patient
// collection, the current selection, and the selection's detail state. Every
// remote read or write that touches patient data goes through it, so readers
// never observe a torn in-between state.
type Store struct {
	remote RemoteAPI
	log    *zap.Logger

	mu       sync.Mutex
	inflight sync.WaitGroup

	patients []models.Patient
	loading  bool

	selected     *models.Patient
	selectionGen uint64

	biodata      *models.PatientBiodata
	visits       []models.Visit
	planners     []models.RecordPlanner
	detailsReady bool

	index biodataIndex

	form     form
	creating bool

	pendingDelete *models.Patient
	view          View
}

// Snapshot is a consistent copy of the renderable state, taken under the
// store lock so selection and details always belong together.
type Snapshot struct {
	Patients     []models.Patient
	Loading      bool
	Selected     *models.Patient
	Biodata      *models.PatientBiodata
	Visits       []models.Visit
	Planners     []models.RecordPlanner
	DetailsReady bool
}

func NewStore(remote RemoteAPI, logger *zap.Logger) *Store {
	return &Store{
		remote: remote,
		log:    logger,
		index:  newBiodataIndex(),
		form:   newForm(),
		view:   View{ActiveTab: TabOverview},
	}
}

// LoadPatients replaces the patient collection with the remote one for the
// given user. On failure the previous collection and selection stay as they
// were. Biodata for every returned patient is prefetched concurrently to keep
// the label index warm; an individual prefetch failure records an explicit
// "no biodata" entry rather than blocking the rest.
func (s *Store) LoadPatients(ctx context.Context, userID int) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	s.log.Info("Loading patient collection", zap.Int("userID", userID))

	patients, err := s.remote.ListPatientsByUser(ctx, userID)
	if err != nil {
		s.log.Error("Patient list fetch failed, keeping previous collection", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	// Unbounded fan-out: one fetch per patient. Collections are small in
	// practice, a single-chair clinic tops out in the low hundreds.
	prefetched := make([]*models.PatientBiodata, len(patients))
	var wg sync.WaitGroup
	for i := range patients {
		wg.Add(1)
		go func(i, patientID int) {
			defer wg.Done()
			biodata, err := s.remote.GetBiodata(ctx, patientID)
			if err != nil {
				s.log.Info("Biodata prefetch failed, recording absence", zap.Int("patientID", patientID), zap.Error(err))
				return
			}
			prefetched[i] = biodata
		}(i, patients[i].ID)
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients = patients
	for i := range patients {
		s.index.upsert(patients[i].ID, prefetched[i])
	}

	if s.selected != nil && !containsPatient(patients, s.selected.ID) {
		s.selectLocked(ctx, nil)
	}
	if s.selected == nil && len(patients) > 0 {
		s.selectLocked(ctx, &patients[0])
	}

	s.log.Info("Patient collection replaced", zap.Int("userID", userID), zap.Int("count", len(patients)))
	return nil
}

// Select changes the focused patient (nil clears focus). A new selection
// starts its detail load as part of the transition itself, so callers never
// have to remember to trigger it.
func (s *Store) Select(ctx context.Context, patient *models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(ctx, patient)
}

// selectLocked bumps the selection generation so any detail fetch still in
// flight for the previous selection is discarded when it settles. Caller
// holds s.mu.
func (s *Store) selectLocked(ctx context.Context, patient *models.Patient) {
	s.selectionGen++
	s.biodata = nil
	s.visits = nil
	s.planners = nil
	s.detailsReady = false

	if patient == nil {
		s.selected = nil
		return
	}

	selected := *patient
	s.selected = &selected

	generation := s.selectionGen
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.loadDetails(ctx, selected.ID, generation)
	}()
}

// loadDetails fetches biodata, visits, and planners for one patient as three
// concurrent reads. Each read degrades on its own (absent biodata, empty
// lists) instead of failing the others, and the joined result is applied in
// one step, only if the selection that asked for it is still current.
func (s *Store) loadDetails(ctx context.Context, patientID int, generation uint64) {
	var (
		biodata  *models.PatientBiodata
		visits   = []models.Visit{}
		planners = []models.RecordPlanner{}
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		result, err := s.remote.GetBiodata(ctx, patientID)
		if err != nil {
			s.log.Info("Biodata fetch failed, treating as absent", zap.Int("patientID", patientID), zap.Error(err))
			return
		}
		biodata = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.remote.ListVisits(ctx, patientID)
		if err != nil {
			s.log.Error("Visit list fetch failed, showing none", zap.Int("patientID", patientID), zap.Error(err))
			return
		}
		visits = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.remote.ListPlanners(ctx, patientID)
		if err != nil {
			s.log.Error("Planner list fetch failed, showing none", zap.Int("patientID", patientID), zap.Error(err))
			return
		}
		planners = result
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.selectionGen {
		s.log.Info("Discarding stale detail fetch", zap.Int("patientID", patientID))
		return
	}

	s.biodata = biodata
	s.visits = visits
	s.planners = planners
	s.detailsReady = true
	if biodata != nil {
		s.index.upsert(patientID, biodata)
	}
}

// Wait blocks until every in-flight detail load has settled. Meant for
// shutdown and for callers that need the detail state before reading it.
func (s *Store) Wait() {
	s.inflight.Wait()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		Patients:     append([]models.Patient(nil), s.patients...),
		Loading:      s.loading,
		Visits:       append([]models.Visit(nil), s.visits...),
		Planners:     append([]models.RecordPlanner(nil), s.planners...),
		DetailsReady: s.detailsReady,
	}
	if s.selected != nil {
		selected := *s.selected
		snapshot.Selected = &selected
	}
	if s.biodata != nil {
		biodata := *s.biodata
		snapshot.Biodata = &biodata
	}
	return snapshot
}

// Label renders the list label for a patient: the biodata name when known,
// otherwise a numbered placeholder.
func (s *Store) Label(patientID int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.label(patientID)
}

// KnownBiodata reports the cached biodata for a patient and whether an entry
// exists at all. A (nil, true) result is a patient known to have no biodata.
func (s *Store) KnownBiodata(patientID int) (*models.PatientBiodata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	biodata, ok := s.index.get(patientID)
	if biodata == nil {
		return nil, ok
	}
	copied := *biodata
	return &copied, ok
}

func containsPatient(patients []models.Patient, patientID int) bool {
	for i := range patients {
		if patients[i].ID == patientID {
			return true
		}
	}
	return false
}

package recordstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/dto/requests"
)

type fakeRemote struct {
	mu sync.Mutex

	listCalls          int
	createPatientCalls int
	createBiodataCalls int
	deleteCalls        int

	listFn          func(ctx context.Context, userID int) ([]models.Patient, error)
	createPatientFn func(ctx context.Context, userID int) (*models.Patient, error)
	deleteFn        func(ctx context.Context, patientID int) error
	getBiodataFn    func(ctx context.Context, patientID int) (*models.PatientBiodata, error)
	createBiodataFn func(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error)
	listVisitsFn    func(ctx context.Context, patientID int) ([]models.Visit, error)
	listPlannersFn  func(ctx context.Context, patientID int) ([]models.RecordPlanner, error)
}

func (f *fakeRemote) ListPatientsByUser(ctx context.Context, userID int) ([]models.Patient, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return []models.Patient{}, nil
	}
	return fn(ctx, userID)
}

func (f *fakeRemote) CreatePatient(ctx context.Context, userID int) (*models.Patient, error) {
	f.mu.Lock()
	f.createPatientCalls++
	fn := f.createPatientFn
	f.mu.Unlock()
	if fn == nil {
		return &models.Patient{ID: 1, UserID: userID}, nil
	}
	return fn(ctx, userID)
}

func (f *fakeRemote) DeletePatient(ctx context.Context, patientID int) error {
	f.mu.Lock()
	f.deleteCalls++
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, patientID)
}

func (f *fakeRemote) GetBiodata(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
	f.mu.Lock()
	fn := f.getBiodataFn
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("no biodata")
	}
	return fn(ctx, patientID)
}

func (f *fakeRemote) CreateBiodata(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error) {
	f.mu.Lock()
	f.createBiodataCalls++
	fn := f.createBiodataFn
	f.mu.Unlock()
	if fn == nil {
		return &models.PatientBiodata{PatientID: request.PatientID, FirstName: request.FirstName, LastName: request.LastName}, nil
	}
	return fn(ctx, request)
}

func (f *fakeRemote) ListVisits(ctx context.Context, patientID int) ([]models.Visit, error) {
	f.mu.Lock()
	fn := f.listVisitsFn
	f.mu.Unlock()
	if fn == nil {
		return []models.Visit{}, nil
	}
	return fn(ctx, patientID)
}

func (f *fakeRemote) ListPlanners(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
	f.mu.Lock()
	fn := f.listPlannersFn
	f.mu.Unlock()
	if fn == nil {
		return []models.RecordPlanner{}, nil
	}
	return fn(ctx, patientID)
}

func (f *fakeRemote) calls() (list, createPatient, createBiodata, deleted int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createPatientCalls, f.createBiodataCalls, f.deleteCalls
}

func patientsOf(ids ...int) []models.Patient {
	patients := make([]models.Patient, 0, len(ids))
	for _, id := range ids {
		patients = append(patients, models.Patient{ID: id, UserID: 7})
	}
	return patients
}

func biodataFor(patientID int, firstName, lastName string) *models.PatientBiodata {
	return &models.PatientBiodata{PatientID: patientID, FirstName: firstName, LastName: lastName}
}

func TestLoadPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Collection And Selects First", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2), nil
			},
			getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
				if patientID == 1 {
					return biodataFor(1, "Alice", "Archer"), nil
				}
				return nil, errors.New("boom")
			},
		}
		store := NewStore(remote, zap.NewNop())

		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		snapshot := store.Snapshot()
		assert.Equal(t, patientsOf(1, 2), snapshot.Patients)
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 1, snapshot.Selected.ID)
		assert.False(t, snapshot.Loading)
		assert.Equal(t, "Alice Archer", store.Label(1))
	})

	t.Run("Failed Biodata Prefetch Records Explicit Absence", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2), nil
			},
			getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
				if patientID == 1 {
					return biodataFor(1, "Alice", "Archer"), nil
				}
				return nil, errors.New("boom")
			},
		}
		store := NewStore(remote, zap.NewNop())

		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		biodata, known := store.KnownBiodata(2)
		assert.True(t, known, "failed prefetch should still record an entry")
		assert.Nil(t, biodata)
		assert.Equal(t, "Patient #2", store.Label(2))
	})

	t.Run("Failure Leaves Previous State Untouched", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2), nil
			},
			getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
				return biodataFor(patientID, "Alice", "Archer"), nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		remote.mu.Lock()
		remote.listFn = func(ctx context.Context, userID int) ([]models.Patient, error) {
			return nil, errors.New("network down")
		}
		remote.mu.Unlock()

		err := store.LoadPatients(ctx, 7)
		require.Error(t, err)

		snapshot := store.Snapshot()
		assert.Equal(t, patientsOf(1, 2), snapshot.Patients)
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 1, snapshot.Selected.ID)
		assert.False(t, snapshot.Loading)
	})

	t.Run("Keeps Existing Selection", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2, 3), nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		second := patientsOf(1, 2, 3)[1]
		store.Select(ctx, &second)
		store.Wait()

		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		snapshot := store.Snapshot()
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 2, snapshot.Selected.ID)
	})

	t.Run("Dropped Selection Falls Back To First", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2, 3), nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		third := patientsOf(1, 2, 3)[2]
		store.Select(ctx, &third)
		store.Wait()

		remote.mu.Lock()
		remote.listFn = func(ctx context.Context, userID int) ([]models.Patient, error) {
			return patientsOf(1, 2), nil
		}
		remote.mu.Unlock()

		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		snapshot := store.Snapshot()
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 1, snapshot.Selected.ID)
	})
}

func TestSelectStaleDetailFetchDiscarded(t *testing.T) {
	ctx := context.Background()

	releaseFirst := make(chan struct{})
	remote := &fakeRemote{
		getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
			if patientID == 1 {
				<-releaseFirst
				return biodataFor(1, "Slow", "Response"), nil
			}
			return biodataFor(2, "Bea", "Bright"), nil
		},
		listVisitsFn: func(ctx context.Context, patientID int) ([]models.Visit, error) {
			return []models.Visit{{ID: patientID * 10, PatientID: patientID}}, nil
		},
	}
	store := NewStore(remote, zap.NewNop())

	first := models.Patient{ID: 1, UserID: 7}
	second := models.Patient{ID: 2, UserID: 7}

	store.Select(ctx, &first)
	store.Select(ctx, &second)

	assert.Eventually(t, func() bool {
		return store.Snapshot().DetailsReady
	}, time.Second, 5*time.Millisecond)

	close(releaseFirst)
	store.Wait()

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.Selected)
	assert.Equal(t, 2, snapshot.Selected.ID)
	require.NotNil(t, snapshot.Biodata)
	assert.Equal(t, "Bea", snapshot.Biodata.FirstName)
	require.Len(t, snapshot.Visits, 1)
	assert.Equal(t, 2, snapshot.Visits[0].PatientID)

	_, known := store.KnownBiodata(1)
	assert.False(t, known, "a discarded fetch must not touch the label index")
}

func TestSelectDetailFailuresDegrade(t *testing.T) {
	ctx := context.Background()

	remote := &fakeRemote{
		getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
			return nil, errors.New("404")
		},
		listVisitsFn: func(ctx context.Context, patientID int) ([]models.Visit, error) {
			return nil, errors.New("boom")
		},
		listPlannersFn: func(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
			return []models.RecordPlanner{{ID: 5, PatientID: patientID, Title: "Crown prep", Status: "planned"}}, nil
		},
	}
	store := NewStore(remote, zap.NewNop())

	patient := models.Patient{ID: 3, UserID: 7}
	store.Select(ctx, &patient)
	store.Wait()

	snapshot := store.Snapshot()
	assert.True(t, snapshot.DetailsReady)
	assert.Nil(t, snapshot.Biodata)
	assert.Empty(t, snapshot.Visits)
	require.Len(t, snapshot.Planners, 1)
	assert.Equal(t, "Crown prep", snapshot.Planners[0].Title)
}

func TestSubmitCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Name Fails Without Remote Call", func(t *testing.T) {
		remote := &fakeRemote{}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.SetFormField(FieldLastName, "Doe"))

		err := store.SubmitCreate(ctx, 7)
		assert.ErrorIs(t, err, ErrNameRequired)

		_, createPatient, createBiodata, _ := remote.calls()
		assert.Zero(t, createPatient)
		assert.Zero(t, createBiodata)
		assert.Equal(t, "Doe", store.FormField(FieldLastName), "form should stay editable")
	})

	t.Run("Tolerated Biodata Failure Still Selects New Patient", func(t *testing.T) {
		remote := &fakeRemote{
			createPatientFn: func(ctx context.Context, userID int) (*models.Patient, error) {
				return &models.Patient{ID: 9, UserID: userID}, nil
			},
			createBiodataFn: func(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error) {
				return nil, errors.New("boom")
			},
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(9), nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		store.OpenCreate()
		require.NoError(t, store.SetFormField(FieldFirstName, "Jane"))
		require.NoError(t, store.SetFormField(FieldLastName, "Doe"))

		require.NoError(t, store.SubmitCreate(ctx, 7))
		store.Wait()

		snapshot := store.Snapshot()
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 9, snapshot.Selected.ID)

		biodata, known := store.KnownBiodata(9)
		assert.True(t, known)
		assert.Nil(t, biodata)

		assert.False(t, store.View().CreateOpen)
		assert.Empty(t, store.FormField(FieldFirstName), "form should be reset")
	})

	t.Run("Patient Create Failure Keeps Form And Modal", func(t *testing.T) {
		remote := &fakeRemote{
			createPatientFn: func(ctx context.Context, userID int) (*models.Patient, error) {
				return nil, errors.New("boom")
			},
		}
		store := NewStore(remote, zap.NewNop())
		store.OpenCreate()
		require.NoError(t, store.SetFormField(FieldFirstName, "Jane"))
		require.NoError(t, store.SetFormField(FieldLastName, "Doe"))

		err := store.SubmitCreate(ctx, 7)
		require.Error(t, err)

		assert.True(t, store.View().CreateOpen)
		assert.Equal(t, "Jane", store.FormField(FieldFirstName))
		_, _, createBiodata, _ := remote.calls()
		assert.Zero(t, createBiodata, "biodata must not be attempted after a failed create")
	})

	t.Run("Submission Guarded While In Flight", func(t *testing.T) {
		block := make(chan struct{})
		remote := &fakeRemote{
			createPatientFn: func(ctx context.Context, userID int) (*models.Patient, error) {
				<-block
				return &models.Patient{ID: 1, UserID: userID}, nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.SetFormField(FieldFirstName, "Jane"))
		require.NoError(t, store.SetFormField(FieldLastName, "Doe"))

		done := make(chan error, 1)
		go func() { done <- store.SubmitCreate(ctx, 7) }()

		assert.Eventually(t, func() bool {
			_, createPatient, _, _ := remote.calls()
			return createPatient == 1
		}, time.Second, 5*time.Millisecond)

		err := store.SubmitCreate(ctx, 7)
		assert.ErrorIs(t, err, ErrCreateInFlight)

		close(block)
		require.NoError(t, <-done)
		store.Wait()
	})

	t.Run("Payload Normalizes Blank Fields And Date Of Birth", func(t *testing.T) {
		var captured *requests.CreateBiodata
		remote := &fakeRemote{
			createBiodataFn: func(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error) {
				captured = request
				return biodataFor(request.PatientID, request.FirstName, request.LastName), nil
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.SetFormField(FieldFirstName, "Jane"))
		require.NoError(t, store.SetFormField(FieldLastName, "Doe"))
		require.NoError(t, store.SetFormField(FieldDateOfBirth, "1990-01-01"))
		require.NoError(t, store.SetFormField(FieldPhone, ""))
		require.NoError(t, store.SetFormField(FieldEmail, "jane@example.com"))

		require.NoError(t, store.SubmitCreate(ctx, 7))
		store.Wait()

		require.NotNil(t, captured)
		assert.Equal(t, "Jane", captured.FirstName)
		assert.Equal(t, "Doe", captured.LastName)
		require.NotNil(t, captured.DateOfBirth)
		assert.Equal(t, "1990-01-01T00:00:00Z", *captured.DateOfBirth)
		assert.Nil(t, captured.Phone, "blank phone must be absent, not empty string")
		require.NotNil(t, captured.Email)
		assert.Equal(t, "jane@example.com", *captured.Email)
	})
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirm Without Stage Fails", func(t *testing.T) {
		store := NewStore(&fakeRemote{}, zap.NewNop())
		assert.ErrorIs(t, store.ConfirmDelete(ctx), ErrNoStagedDelete)
	})

	t.Run("Deleting Selection Clears Details Before Reload", func(t *testing.T) {
		remote := &fakeRemote{
			getBiodataFn: func(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
				return biodataFor(patientID, "Alice", "Archer"), nil
			},
		}
		store := NewStore(remote, zap.NewNop())

		remote.mu.Lock()
		remote.listFn = func(ctx context.Context, userID int) ([]models.Patient, error) {
			return patientsOf(1, 2), nil
		}
		remote.mu.Unlock()
		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		snapshot := store.Snapshot()
		require.NotNil(t, snapshot.Selected)
		require.Equal(t, 1, snapshot.Selected.ID)
		require.NotNil(t, snapshot.Biodata)

		var duringReload Snapshot
		remote.mu.Lock()
		remote.listFn = func(ctx context.Context, userID int) ([]models.Patient, error) {
			duringReload = store.Snapshot()
			return patientsOf(2), nil
		}
		remote.mu.Unlock()

		store.StageDelete(*snapshot.Selected)
		assert.True(t, store.View().DeleteConfirmOpen)

		require.NoError(t, store.ConfirmDelete(ctx))
		store.Wait()

		assert.Nil(t, duringReload.Selected, "selection must be cleared before the reload")
		assert.Nil(t, duringReload.Biodata)
		assert.Empty(t, duringReload.Visits)
		assert.Empty(t, duringReload.Planners)

		snapshot = store.Snapshot()
		assert.Equal(t, patientsOf(2), snapshot.Patients)
		require.NotNil(t, snapshot.Selected)
		assert.Equal(t, 2, snapshot.Selected.ID)
		assert.False(t, store.View().DeleteConfirmOpen)
		assert.Nil(t, store.StagedDelete())
	})

	t.Run("Failure Clears Gate And Keeps Collection", func(t *testing.T) {
		remote := &fakeRemote{
			listFn: func(ctx context.Context, userID int) ([]models.Patient, error) {
				return patientsOf(1, 2), nil
			},
			deleteFn: func(ctx context.Context, patientID int) error {
				return errors.New("boom")
			},
		}
		store := NewStore(remote, zap.NewNop())
		require.NoError(t, store.LoadPatients(ctx, 7))
		store.Wait()

		store.StageDelete(patientsOf(1, 2)[1])
		err := store.ConfirmDelete(ctx)
		require.Error(t, err)

		assert.False(t, store.View().DeleteConfirmOpen)
		assert.Nil(t, store.StagedDelete())
		assert.Equal(t, patientsOf(1, 2), store.Snapshot().Patients)
	})
}

func TestSetFormFieldRejectsUnknownName(t *testing.T) {
	store := NewStore(&fakeRemote{}, zap.NewNop())
	assert.Error(t, store.SetFormField("favourite_color", "blue"))
}

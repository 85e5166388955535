package recordstore

import (
	"fmt"
	"strings"

	"dentaldesk-service/internal/app/models"
)

// biodataIndex caches display biodata per patient id. A nil value is an
// explicit "no biodata" marker, distinct from a patient that was never cached.
// Entries are only ever merged in; bulk loads and single-patient refreshes
// both go through upsert so neither can discard the other's entries.
type biodataIndex struct {
	entries map[int]*models.PatientBiodata
}

func newBiodataIndex() biodataIndex {
	return biodataIndex{entries: make(map[int]*models.PatientBiodata)}
}

func (x *biodataIndex) upsert(patientID int, biodata *models.PatientBiodata) {
	x.entries[patientID] = biodata
}

// get reports the cached biodata and whether the patient has an entry at all.
// A (nil, true) result means the patient is known to have no biodata.
func (x *biodataIndex) get(patientID int) (*models.PatientBiodata, bool) {
	biodata, ok := x.entries[patientID]
	return biodata, ok
}

func (x *biodataIndex) label(patientID int) string {
	biodata, ok := x.entries[patientID]
	if !ok || biodata == nil {
		return fmt.Sprintf("Patient #%d", patientID)
	}

	name := strings.TrimSpace(biodata.FirstName + " " + biodata.LastName)
	if name == "" {
		return fmt.Sprintf("Patient #%d", patientID)
	}
	return name
}

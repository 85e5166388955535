package routers

import (
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/services/imaging"
	"dentaldesk-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	imagingController *imaging.ImagingController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.Get("/user/{userId}", patientController.ListPatientsByUser)

	router.Route("/biodata", func(r chi.Router) {
		r.Post("/", patientController.CreateBiodata)
		r.Get("/{patientId}", patientController.GetBiodata)
		r.Put("/{patientId}", patientController.UpdateBiodata)
	})

	router.Route("/visits", func(r chi.Router) {
		r.Post("/", patientController.CreateVisit)
		r.Get("/{patientId}", patientController.ListVisits)
		r.Get("/detail/{visitId}", patientController.GetVisit)
		r.Put("/{visitId}", patientController.UpdateVisit)
		r.Delete("/{visitId}", patientController.DeleteVisit)
	})

	router.Route("/record-planner", func(r chi.Router) {
		r.Post("/", patientController.CreatePlanner)
		r.Get("/{patientId}", patientController.ListPlanners)
		r.Put("/{plannerId}", patientController.UpdatePlanner)
		r.Delete("/{plannerId}", patientController.DeletePlanner)
	})

	router.Route("/intraoral-pictures", func(r chi.Router) {
		r.Post("/", imagingController.UploadPicture)
		r.Get("/{patientId}", imagingController.ListPictures)
		r.Delete("/{pictureId}", imagingController.DeletePicture)
	})

	router.Route("/xrays", func(r chi.Router) {
		r.Post("/", imagingController.UploadXRay)
		r.Get("/{patientId}", imagingController.ListXRays)
		r.Delete("/{xrayId}", imagingController.DeleteXRay)
	})

	// Bare id routes go last so the named groups above win the match.
	router.Get("/{patientId}", patientController.GetPatient)
	router.Delete("/{patientId}", patientController.DeletePatient)
}

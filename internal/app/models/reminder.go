package models

import "time"

// ReminderMessage is the queue payload for one upcoming planner item.
type ReminderMessage struct {
	PlannerID    int       `json:"planner_id"`
	PatientID    int       `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	Title        string    `json:"title"`
	PlannedDate  time.Time `json:"planned_date"`
}

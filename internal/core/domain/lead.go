package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadStatus is the triage label on a lead. Any status may follow any
// other; the label carries no workflow machine.
type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadInProgress LeadStatus = "in_progress"
	LeadCompleted  LeadStatus = "completed"
	LeadRejected   LeadStatus = "rejected"
)

// Valid reports whether s is one of the four known triage labels.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadInProgress, LeadCompleted, LeadRejected:
		return true
	}
	return false
}

// Lead is a contact-form submission awaiting triage.
type Lead struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ObjectType  string             `json:"object_type" bson:"object_type"`
	Area        float64            `json:"area" bson:"area"`
	CurrentFuel string             `json:"current_fuel" bson:"current_fuel"`
	Needs       []string           `json:"needs" bson:"needs"`
	Timeline    string             `json:"timeline" bson:"timeline"`
	Name        string             `json:"name" bson:"name"`
	Phone       string             `json:"phone" bson:"phone"`
	Email       string             `json:"email" bson:"email"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Status      LeadStatus         `json:"status" bson:"status"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// LeadStats is the per-status breakdown shown on the admin dashboard.
// The five counts come from independent queries, so under concurrent
// writes they may not sum exactly to Total.
type LeadStats struct {
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Rejected   int64 `json:"rejected"`
	Total      int64 `json:"total"`
}

// DashboardStats aggregates headline numbers across collections.
type DashboardStats struct {
	TotalLeads        int64 `json:"total_leads"`
	NewLeads          int64 `json:"new_leads"`
	CompletedProjects int64 `json:"completed_projects"`
	ActiveServices    int64 `json:"active_services"`
	TotalContentItems int64 `json:"total_content_items"`
}

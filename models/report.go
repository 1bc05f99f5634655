package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PriorityNormal is the only priority the overlay submits
const PriorityNormal = "normal"

// Reporter holds the identity of the player filing a report
type Reporter struct {
	FivemID     int               `json:"fivemId" bson:"fivemId"`
	Name        string            `json:"name" bson:"name"`
	Identifiers map[string]string `json:"identifiers" bson:"identifiers"`
	Position    *Position         `json:"position" bson:"position"`
}

// Target holds a reported player picked from the nearby list
type Target struct {
	FivemID int    `json:"fivemId" bson:"fivemId"`
	Name    string `json:"name" bson:"name"`
}

// Report is the payload sent with the submitReport call
type Report struct {
	Category     string            `json:"category" bson:"category"`
	Subject      string            `json:"subject" bson:"subject"`
	Description  string            `json:"description" bson:"description"`
	Priority     string            `json:"priority" bson:"priority"`
	Reporter     Reporter          `json:"reporter" bson:"reporter"`
	Targets      []Target          `json:"targets" bson:"targets"`
	Attachments  []string          `json:"attachments" bson:"attachments"`
	CustomFields map[string]string `json:"customFields" bson:"customFields"`
	EvidenceURLs []string          `json:"evidenceUrls" bson:"evidenceUrls"`
}

// Ticket holds the structure for the tickets collection in mongo
type Ticket struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	TicketID     string             `json:"ticketId" bson:"ticketId"`
	TicketNumber int64              `json:"ticketNumber" bson:"ticketNumber"`
	TicketURL    string             `json:"ticketUrl" bson:"ticketUrl"`
	Report       Report             `json:"report" bson:"report"`
	CreatedAt    primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

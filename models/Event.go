package models

import "time"

// Symposium names. Each symposium keeps its events and rounds in its own tables.
const (
	SymposiumEnigma       = "Enigma"
	SymposiumCarteblanche = "Carteblanche"
)

// ValidSymposium reports whether name is one of the two known symposium tracks
func ValidSymposium(name string) bool {
	return name == SymposiumEnigma || name == SymposiumCarteblanche
}

// EventCore holds the columns shared by both symposium event tables
type EventCore struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	EventName               string    `gorm:"type:varchar(255);not null" json:"eventName"`
	EventCategory           string    `gorm:"type:varchar(255);not null" json:"eventCategory"`
	EventDescription        string    `gorm:"type:text;not null" json:"eventDescription"`
	NumberOfRounds          int       `gorm:"not null" json:"numberOfRounds"`
	TeamOrIndividual        string    `gorm:"type:varchar(20);not null" json:"teamOrIndividual"`
	Location                string    `gorm:"type:varchar(255);not null" json:"location"`
	RegistrationFees        float64   `gorm:"type:decimal(10,2);not null" json:"registrationFees"`
	CoordinatorName         string    `gorm:"type:varchar(255);not null" json:"coordinatorName"`
	CoordinatorContactNo    string    `gorm:"type:varchar(20);not null" json:"coordinatorContactNo"`
	CoordinatorMail         string    `gorm:"type:varchar(255);not null" json:"coordinatorMail"`
	LastDateForRegistration string    `gorm:"type:varchar(50);not null" json:"lastDateForRegistration"`
	PosterImage             []byte    `gorm:"type:longblob" json:"-"`
	CreatedAt               time.Time `json:"createdAt"`
}

// EnigmaEvent is an event belonging to the Enigma symposium
type EnigmaEvent struct {
	EventCore
	Rounds []EnigmaRound `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"rounds"`
}

func (EnigmaEvent) TableName() string { return "enigma_events" }

// CarteBlancheEvent is an event belonging to the Carteblanche symposium
type CarteBlancheEvent struct {
	EventCore
	Rounds []CarteBlancheRound `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"rounds"`
}

func (CarteBlancheEvent) TableName() string { return "carte_blanche_events" }

package models

// RoundCore holds the columns shared by both symposium rounds tables
type RoundCore struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	EventID       uint   `gorm:"not null;index" json:"eventId"`
	RoundNumber   int    `gorm:"not null" json:"roundNumber"`
	RoundDetails  string `gorm:"type:text;not null" json:"roundDetails"`
	RoundDateTime string `gorm:"type:varchar(50);not null" json:"roundDateTime"`
}

// EnigmaRound is a stage of an Enigma event
type EnigmaRound struct {
	RoundCore
}

func (EnigmaRound) TableName() string { return "enigma_rounds" }

// CarteBlancheRound is a stage of a Carteblanche event
type CarteBlancheRound struct {
	RoundCore
}

func (CarteBlancheRound) TableName() string { return "carte_blanche_rounds" }

package models

import (
	"time"
)

// Record is a QR-coded assessment record for a certification center.
// Each record belongs to the user who created it.
type Record struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CenterName     string    `json:"centerName"`
	SerialNo       string    `json:"serialNo"`
	CourseName     string    `json:"courseName"`
	Level          string    `json:"level"`
	UnitCode       string    `json:"unitCode"`
	UnitName       string    `json:"unitName"`
	TotalTools     int       `json:"totalTools"`
	Candidate1Name string    `json:"c1name"`
	Candidate1Reg  string    `json:"c1reg"`
	Candidate2Name string    `json:"c2name"`
	Candidate2Reg  string    `json:"c2reg"`
	HeadName       string    `json:"headName"`
	SupervisorName string    `json:"supervisorName"`
	UserID         uint      `gorm:"not null;index" json:"user"`
	DateCreated    time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}

func (Record) TableName() string {
	return "qr_codes"
}

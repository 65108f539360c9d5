package model

import (
	"time"
)

// Client categories.
const (
	ClientTypeDeveloper  = "Developer"
	ClientTypeAgent      = "Agent"
	ClientTypeLitigation = "Litigation"
)

// Work status values. The column is nullable: a client with no recorded
// progress has no work status at all.
const (
	WorkStatusNotStarted = "Not Started"
	WorkStatusInProgress = "In Progress"
	WorkStatusCompleted  = "Completed"
)

// Client is a tracked regulated project/entity record. Field names follow
// the stored contract and must not be renamed.
type Client struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	Type            string     `json:"type" gorm:"type:varchar(50);not null"`
	Name            string     `json:"name" gorm:"type:varchar(255);not null"`
	PromoterName    string     `json:"promoterName" gorm:"type:varchar(255)"`
	Location        string     `json:"location" gorm:"type:varchar(255)"`
	PlotNo          string     `json:"plotNo" gorm:"type:varchar(255)"`
	PlotArea        string     `json:"plotArea" gorm:"type:varchar(255)"`
	TotalUnits      *int       `json:"totalUnits,omitempty"`
	BookedUnits     *int       `json:"bookedUnits,omitempty"`
	WorkStatus      *string    `json:"workStatus,omitempty" gorm:"type:varchar(50)"`
	UserID          uint       `json:"userId" gorm:"index;not null"`
	ReraNumber      string     `json:"reraNumber" gorm:"type:varchar(255)"`
	CertificateDate *time.Time `json:"certificateDate,omitempty"`
	Mobile          string     `json:"mobile" gorm:"type:varchar(50);not null"`
	OfficeNumber    string     `json:"officeNumber" gorm:"type:varchar(50)"`
	Email           string     `json:"email" gorm:"type:varchar(255)"`
	CaName          string     `json:"caName" gorm:"type:varchar(255)"`
	EngineerName    string     `json:"engineerName" gorm:"type:varchar(255)"`
	ArchitectName   string     `json:"architectName" gorm:"type:varchar(255)"`
	Reference       string     `json:"reference" gorm:"type:varchar(255)"`
	CompletionDate  *time.Time `json:"completionDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ValidClientType reports whether t is one of the fixed client categories.
func ValidClientType(t string) bool {
	switch t {
	case ClientTypeDeveloper, ClientTypeAgent, ClientTypeLitigation:
		return true
	}
	return false
}

// ValidWorkStatus reports whether s is one of the fixed work status values.
func ValidWorkStatus(s string) bool {
	switch s {
	case WorkStatusNotStarted, WorkStatusInProgress, WorkStatusCompleted:
		return true
	}
	return false
}

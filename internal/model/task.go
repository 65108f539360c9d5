package model

import (
	"time"
)

// Task is a free-form work item against a client. No settlement rules apply;
// it is a plain owned CRUD entity, removed when its client is removed.
type Task struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	ClientID         uint      `json:"clientId" gorm:"index;not null"`
	UserID           uint      `json:"userId" gorm:"index;not null"`
	Title            string    `json:"title" gorm:"type:varchar(255)"`
	Service          string    `json:"service" gorm:"type:varchar(255)"`
	AllocatedMembers string    `json:"allocatedMembers" gorm:"type:varchar(255)"`
	AssignedMembers  string    `json:"assignedMembers" gorm:"type:varchar(255)"`
	Priority         string    `json:"priority" gorm:"type:varchar(50)"`
	DueDate          string    `json:"dueDate" gorm:"type:varchar(50)"`
	Team             string    `json:"team" gorm:"type:varchar(255)"`
	ClientSource     string    `json:"clientSource" gorm:"type:varchar(255)"`
	Status           string    `json:"status" gorm:"type:varchar(50)"`
	GovernmentFees   string    `json:"governmentFees" gorm:"type:varchar(50)"`
	SroFees          string    `json:"sroFees" gorm:"type:varchar(50)"`
	BillAmount       string    `json:"billAmount" gorm:"type:varchar(50)"`
	Gst              string    `json:"gst" gorm:"type:varchar(50)"`
	Branch           string    `json:"branch" gorm:"type:varchar(255)"`
	Remark           string    `json:"remark" gorm:"type:text"`
	Note             string    `json:"note" gorm:"type:text"`
	Description      string    `json:"description" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

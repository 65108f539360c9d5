package service

import (
	"context"
	"fmt"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
)

// TaskFields carries a partial set of task attributes for create and update.
type TaskFields struct {
	Title            *string `json:"title"`
	Service          *string `json:"service"`
	AllocatedMembers *string `json:"allocatedMembers"`
	AssignedMembers  *string `json:"assignedMembers"`
	Priority         *string `json:"priority"`
	DueDate          *string `json:"dueDate"`
	Team             *string `json:"team"`
	ClientSource     *string `json:"clientSource"`
	Status           *string `json:"status"`
	GovernmentFees   *string `json:"governmentFees"`
	SroFees          *string `json:"sroFees"`
	BillAmount       *string `json:"billAmount"`
	Gst              *string `json:"gst"`
	Branch           *string `json:"branch"`
	Remark           *string `json:"remark"`
	Note             *string `json:"note"`
	Description      *string `json:"description"`
}

// TaskService is plain owned CRUD over work items. Unlike payments there are
// no settlement rules; tasks disappear with their client.
type TaskService struct {
	store Store
}

// NewTaskService constructs a TaskService backed by the given store.
func NewTaskService(store Store) *TaskService {
	return &TaskService{store: store}
}

// Create records a new task against a client.
func (s *TaskService) Create(ctx context.Context, ownerID, clientID uint, fields TaskFields) (*model.Task, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	task := &model.Task{ClientID: clientID, UserID: ownerID}
	applyTaskFields(task, fields)
	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListForClient returns all tasks recorded against one client.
func (s *TaskService) ListForClient(ctx context.Context, clientID uint) ([]model.Task, error) {
	return s.store.TasksByClient(ctx, clientID)
}

// Update applies a partial update to an owned task.
func (s *TaskService) Update(ctx context.Context, taskID, ownerID uint, fields TaskFields) (*model.Task, error) {
	task, err := s.store.TaskByID(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	applyTaskFields(task, fields)
	if err := s.store.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, taskID, ownerID uint) error {
	deleted, err := s.store.DeleteTask(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}
	return nil
}

func applyTaskFields(t *model.Task, f TaskFields) {
	if f.Title != nil {
		t.Title = *f.Title
	}
	if f.Service != nil {
		t.Service = *f.Service
	}
	if f.AllocatedMembers != nil {
		t.AllocatedMembers = *f.AllocatedMembers
	}
	if f.AssignedMembers != nil {
		t.AssignedMembers = *f.AssignedMembers
	}
	if f.Priority != nil {
		t.Priority = *f.Priority
	}
	if f.DueDate != nil {
		t.DueDate = *f.DueDate
	}
	if f.Team != nil {
		t.Team = *f.Team
	}
	if f.ClientSource != nil {
		t.ClientSource = *f.ClientSource
	}
	if f.Status != nil {
		t.Status = *f.Status
	}
	if f.GovernmentFees != nil {
		t.GovernmentFees = *f.GovernmentFees
	}
	if f.SroFees != nil {
		t.SroFees = *f.SroFees
	}
	if f.BillAmount != nil {
		t.BillAmount = *f.BillAmount
	}
	if f.Gst != nil {
		t.Gst = *f.Gst
	}
	if f.Branch != nil {
		t.Branch = *f.Branch
	}
	if f.Remark != nil {
		t.Remark = *f.Remark
	}
	if f.Note != nil {
		t.Note = *f.Note
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
}

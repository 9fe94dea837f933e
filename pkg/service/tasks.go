package service

import (
	"github.com/polyrpc/demoapi/pkg/resource"
)

// ListTasks returns all tasks in insertion order.
func (s *Service) ListTasks() []resource.Task {
	return s.store.Tasks.List()
}

// GetTask retrieves a task by id.
func (s *Service) GetTask(id int) (resource.Task, error) {
	t, ok := s.store.Tasks.Get(id)
	if !ok {
		return resource.Task{}, notFound("Task not found")
	}
	return t, nil
}

// CreateTask creates a task. Omitted fields take their defaults: status
// pending, priority medium.
func (s *Service) CreateTask(req resource.CreateTaskRequest) (resource.Task, error) {
	if err := req.Validate().Err(); err != nil {
		return resource.Task{}, err
	}

	t := resource.Task{
		Title:    req.Title,
		Status:   resource.StatusPending,
		Priority: resource.PriorityMedium,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	t = s.store.Tasks.Insert(t)
	s.log.Info("task created", "id", t.ID, "title", t.Title)
	return t, nil
}

// SetTaskStatus replaces a task's status wholesale. Any status may
// follow any other; there is no transition graph.
func (s *Service) SetTaskStatus(id int, status string) (resource.Task, error) {
	st, err := resource.ParseStatus(status)
	if err != nil {
		return resource.Task{}, err
	}

	t, ok := s.store.Tasks.Update(id, func(t *resource.Task) {
		t.Status = st
	})
	if !ok {
		return resource.Task{}, notFound("Task not found")
	}
	s.log.Info("task status updated", "id", id, "status", st)
	return t, nil
}

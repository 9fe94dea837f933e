package service

import (
	"errors"
	"testing"

	"github.com/polyrpc/demoapi/pkg/resource"
	"github.com/polyrpc/demoapi/pkg/validation"
)

func TestCreateTask_DefaultsAndRoundTrip(t *testing.T) {
	svc := New(NewStore())

	created, err := svc.CreateTask(resource.CreateTaskRequest{Title: "write docs"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if created.Status != resource.StatusPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.Priority != resource.PriorityMedium {
		t.Errorf("Priority = %q, want medium", created.Priority)
	}

	got, err := svc.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask(%d) error = %v", created.ID, err)
	}
	if got != created {
		t.Errorf("GetTask() = %+v, want %+v", got, created)
	}
}

func TestCreateTask_ExplicitFields(t *testing.T) {
	svc := New(NewStore())

	desc := "ship it"
	prio := resource.PriorityHigh
	created, err := svc.CreateTask(resource.CreateTaskRequest{
		Title:       "release",
		Description: &desc,
		Priority:    &prio,
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if created.Description != desc {
		t.Errorf("Description = %q, want %q", created.Description, desc)
	}
	if created.Priority != resource.PriorityHigh {
		t.Errorf("Priority = %q, want high", created.Priority)
	}
}

func TestCreateTask_UniqueIDs(t *testing.T) {
	svc := New(NewSeededStore())

	seen := make(map[int]bool)
	for _, tk := range svc.ListTasks() {
		seen[tk.ID] = true
	}
	for i := 0; i < 10; i++ {
		created, err := svc.CreateTask(resource.CreateTaskRequest{Title: "t"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("id %d assigned twice", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestCreateTask_EmptyTitleRejected(t *testing.T) {
	svc := New(NewStore())

	_, err := svc.CreateTask(resource.CreateTaskRequest{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *validation.Error", err)
	}
	if len(svc.ListTasks()) != 0 {
		t.Error("failed create mutated the collection")
	}
}

func TestGetTask_NotFound(t *testing.T) {
	svc := New(NewStore())

	_, err := svc.GetTask(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Task not found" {
		t.Errorf("message = %q, want %q", err.Error(), "Task not found")
	}
}

func TestSetTaskStatus(t *testing.T) {
	svc := New(NewSeededStore())

	got, err := svc.SetTaskStatus(3, "completed")
	if err != nil {
		t.Fatalf("SetTaskStatus() error = %v", err)
	}
	if got.Status != resource.StatusCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if got.Title != "Deploy to production" {
		t.Errorf("Title = %q changed by status update", got.Title)
	}
}

func TestSetTaskStatus_AnyTransitionAllowed(t *testing.T) {
	svc := New(NewStore())
	created, _ := svc.CreateTask(resource.CreateTaskRequest{Title: "t"})

	// pending can jump straight to completed, and back again.
	for _, status := range []string{"completed", "pending", "failed", "running"} {
		if _, err := svc.SetTaskStatus(created.ID, status); err != nil {
			t.Errorf("SetTaskStatus(%q) error = %v", status, err)
		}
	}
}

func TestSetTaskStatus_NotFoundDoesNotMutate(t *testing.T) {
	svc := New(NewSeededStore())
	before := svc.ListTasks()

	_, err := svc.SetTaskStatus(99, "completed")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Task not found" {
		t.Errorf("message = %q, want %q", err.Error(), "Task not found")
	}

	after := svc.ListTasks()
	if len(before) != len(after) {
		t.Fatal("collection size changed by failed status update")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("task %d mutated by failed status update", before[i].ID)
		}
	}
}

func TestSetTaskStatus_UnknownTagRejected(t *testing.T) {
	svc := New(NewSeededStore())

	_, err := svc.SetTaskStatus(1, "done")
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *validation.Error", err)
	}
}

func TestListTasks_SeededOrder(t *testing.T) {
	svc := New(NewSeededStore())

	tasks := svc.ListTasks()
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	if tasks[0].Title != "Learn PolyRPC" || tasks[0].Status != resource.StatusCompleted {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
}

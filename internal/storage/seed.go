package storage

import (
	"time"

	"github.com/polyrpc/demoapi/pkg/resource"
)

// Demo seed data, matching the reference backends.

// SeedTasks returns the demo task list.
func SeedTasks() []resource.Task {
	return []resource.Task{
		{ID: 1, Title: "Learn PolyRPC", Status: resource.StatusCompleted, Priority: resource.PriorityHigh},
		{ID: 2, Title: "Build Electron app", Status: resource.StatusRunning, Priority: resource.PriorityMedium},
		{ID: 3, Title: "Deploy to production", Status: resource.StatusPending, Priority: resource.PriorityMedium},
	}
}

// SeedUsers returns the demo user list.
func SeedUsers() []resource.User {
	now := time.Now()
	return []resource.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: resource.RoleAdmin, CreatedAt: now},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: resource.RoleUser, IsPremium: true, CreatedAt: now},
	}
}

// SeedModels returns the demo model catalog.
func SeedModels() []resource.ModelInfo {
	return []resource.ModelInfo{
		{Name: "gpt-mini", Version: "1.0", Loaded: true, MemoryUsageMB: 512.5},
		{Name: "sentiment", Version: "2.1", Loaded: false, MemoryUsageMB: 0},
	}
}

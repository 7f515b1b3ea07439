package domain

import "context"

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// PlatformStats aggregates marketplace-wide counters for the admin dashboard.
type PlatformStats struct {
	UsersByRole          []RoleCount   `json:"users_by_role"`
	TotalJobs            int64         `json:"total_jobs"`
	ApplicationsByStatus []StatusCount `json:"applications_by_status"`
	ActiveJobs           int64         `json:"active_jobs"`
}

type AdminRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id int64) error
	DeleteJob(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*PlatformStats, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	RemoveUser(ctx context.Context, id int64) error
	RemoveJob(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*PlatformStats, error)
}

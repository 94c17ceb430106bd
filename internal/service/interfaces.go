package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Directory resolves people that have no account yet
type Directory interface {
	Enabled() bool
	Search(query string) ([]DirectoryUser, error)
	LookupByEmail(email string) (*DirectoryUser, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(actorID uuid.UUID, limit, offset int) (*UserListResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error)
	ListForUser(actorID uuid.UUID) (*ProjectListResponse, error)
	GetDetail(actorID, id uuid.UUID) (*ProjectDetailResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(actorID, id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	List(actorID, projectID uuid.UUID) ([]MemberResponse, error)
	Add(actorID, projectID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	Remove(actorID, projectID, memberID uuid.UUID) error
}

// TestCaseServiceInterface defines the interface for test case service
type TestCaseServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateTestCaseRequest) (*TestCaseResponse, error)
	List(actorID uuid.UUID, projectID *uuid.UUID, status string) ([]TestCaseResponse, error)
	GetDetail(actorID, id uuid.UUID) (*TestCaseDetailResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateTestCaseRequest) (*TestCaseResponse, error)
	Delete(actorID, id uuid.UUID) error
	History(actorID, id uuid.UUID, limit int) ([]HistoryResponse, error)
}

// ExecutionServiceInterface defines the interface for execution service
type ExecutionServiceInterface interface {
	Record(actorID, testCaseID uuid.UUID, req *RecordExecutionRequest) (*ExecutionResponse, error)
	List(actorID, testCaseID uuid.UUID, limit int) ([]ExecutionResponse, error)
}

// BugServiceInterface defines the interface for bug service
type BugServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateBugRequest) (*BugResponse, error)
	List(actorID uuid.UUID, projectID *uuid.UUID, status string) ([]BugResponse, error)
	GetDetail(actorID, id uuid.UUID) (*BugDetailResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateBugRequest) (*BugResponse, error)
	Delete(actorID, id uuid.UUID) error
	History(actorID, id uuid.UUID, limit int) ([]HistoryResponse, error)
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	Add(actorID, bugID uuid.UUID, req *AddCommentRequest) (*CommentResponse, error)
	List(actorID, bugID uuid.UUID) ([]CommentResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	Generate(actorID uuid.UUID, projectID *uuid.UUID) (*ReportResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Get(actorID uuid.UUID) (*DashboardResponse, error)
}

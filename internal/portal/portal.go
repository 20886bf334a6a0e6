// Package portal implements the session/dashboard orchestration for the gym
// portal client: the state machine that moves a client between the anonymous,
// admin and member views under asynchronous auth events, manual member login,
// restored sessions and CRUD completions.
package portal

import (
	"context"
	"strings"

	"github.com/gymms/portal/internal/models"
)

// Role is the UI mode currently granted to a client.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleAdmin     Role = "admin"
	RoleMember    Role = "member"
)

// Section identifiers, matching the client's hash-based routing.
const (
	SectionHome   = "#home"
	SectionAdmin  = "#admin"
	SectionMember = "#member"
)

// Severity classifies a toast notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// AuthGateway is the authentication provider boundary. Logout is best-effort;
// WatchAuthState invokes the callback with the current state immediately and
// again on every sign-in and sign-out. The role passed to the callback is the
// stored role claim of the signed-in user, or models.UserRoleGuest when no
// user is signed in.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	WatchAuthState(fn func(user *models.User, role string))
}

// MemberStore is the document-store boundary for member records.
type MemberStore interface {
	AddMember(ctx context.Context, m *models.Member) (string, error)
	UpdateMember(ctx context.Context, id string, u models.MemberUpdate) error
	DeleteMember(ctx context.Context, id string) error
	ListMembers(ctx context.Context, sortField, sortDir string) ([]models.Member, error)
	FindMemberByNameAndID(ctx context.Context, name, memberID string) (*models.Member, error)
}

// BillStore is the document-store boundary for billing records.
type BillStore interface {
	CreateBill(ctx context.Context, b *models.Bill) (string, error)
	ListBillsForMember(ctx context.Context, memberID string) ([]models.Bill, error)
}

// DataGateway combines the member and bill store boundaries.
type DataGateway interface {
	MemberStore
	BillStore
}

// CombineGateways builds a DataGateway from separate member and bill stores.
func CombineGateways(members MemberStore, bills BillStore) DataGateway {
	return struct {
		MemberStore
		BillStore
	}{members, bills}
}

// Observer receives orchestration events for instrumentation. Implementations
// must be safe for concurrent use.
type Observer interface {
	RoleTransition(from, to string)
	ToastShown(severity string)
}

type noopObserver struct{}

func (noopObserver) RoleTransition(string, string) {}
func (noopObserver) ToastShown(string)             {}

// MemberForm carries the member add/edit form fields. All fields are
// required.
type MemberForm struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Package   string `json:"package"`
	StartDate string `json:"startDate"`
}

func (f *MemberForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Package = strings.TrimSpace(f.Package)
	f.StartDate = strings.TrimSpace(f.StartDate)
}

func (f MemberForm) complete() bool {
	return f.Name != "" && f.Phone != "" && f.Package != "" && f.StartDate != ""
}

// BillForm carries the add-bill form fields. MemberID, Amount and Date are
// required; Status defaults to paid.
type BillForm struct {
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

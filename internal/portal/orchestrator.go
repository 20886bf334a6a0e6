package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gymms/portal/internal/dashboard"
	"github.com/gymms/portal/internal/models"
)

// Config wires an orchestrator's collaborators. Auth, Data, Sink and
// Sessions are required; the rest default sensibly.
type Config struct {
	Auth     AuthGateway
	Data     DataGateway
	Sink     RenderSink
	Sessions SessionStore
	Logger   *slog.Logger
	Observer Observer
	Now      func() time.Time
}

// RenderSink is the rendering boundary the orchestrator drives: section
// switching, toasts, and list/profile/chart rendering. *View implements it.
type RenderSink interface {
	ShowSection(id string)
	Toast(message string, severity Severity)
	RenderMemberList(members []models.Member)
	RenderMemberProfile(name, memberID string)
	RenderBills(bills []models.Bill)
	RenderCharts(revenue map[string]float64, activity dashboard.Activity)
	ClearAdminDashboard()
	ClearMemberDashboard()
}

// Orchestrator owns one client's UI role and drives every transition between
// the anonymous, admin and member states. Role-setting flows are fenced by a
// monotonic generation counter: a flow that completes after a newer flow has
// started discards its result instead of rendering stale state, and the
// admin and member views are never populated at the same time.
type Orchestrator struct {
	mu         sync.Mutex
	role       Role
	gen        uint64
	memberID   string
	memberName string
	sortField  string
	sortDir    string

	ctx      context.Context
	auth     AuthGateway
	data     DataGateway
	sink     RenderSink
	sessions SessionStore
	logger   *slog.Logger
	obs      Observer
	now      func() time.Time
}

// New builds an orchestrator in the anonymous state with the default member
// list ordering (name ascending).
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	obs := cfg.Observer
	if obs == nil {
		obs = noopObserver{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		role:      RoleAnonymous,
		sortField: "name",
		sortDir:   "asc",
		ctx:       context.Background(),
		auth:      cfg.Auth,
		data:      cfg.Data,
		sink:      cfg.Sink,
		sessions:  cfg.Sessions,
		logger:    logger,
		obs:       obs,
		now:       now,
	}
}

// Start registers for auth state changes and restores a persisted member
// session, if one exists. Flows triggered later by auth state notifications
// outlive the caller, so they run on a context detached from the given one's
// cancellation.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	o.ctx = context.WithoutCancel(ctx)
	o.mu.Unlock()

	o.auth.WatchAuthState(func(user *models.User, role string) {
		o.handleAuthState(user, role)
	})
	o.restoreSession(ctx)
	o.logger.Info("portal client started")
}

// Role returns the currently granted role.
func (o *Orchestrator) Role() Role {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.role
}

// beginFlow starts a new role-setting flow and returns its generation.
func (o *Orchestrator) beginFlow() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gen++
	return o.gen
}

func (o *Orchestrator) stale(gen uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return gen != o.gen
}

// setRole records a transition and notifies the observer. Callers hold o.mu.
func (o *Orchestrator) setRole(to Role) {
	from := o.role
	o.role = to
	o.obs.RoleTransition(string(from), string(to))
}

// handleAuthState reacts to provider state notifications. A signed-in user
// whose stored claim is admin enters the admin view; a sign-out leaves the
// admin view. Member sessions are not provider-backed, so a sign-out
// notification never evicts an active member.
func (o *Orchestrator) handleAuthState(user *models.User, role string) {
	o.mu.Lock()
	ctx := o.ctx
	o.mu.Unlock()

	if user != nil && role == models.UserRoleAdmin {
		gen := o.beginFlow()

		o.mu.Lock()
		if gen != o.gen {
			o.mu.Unlock()
			return
		}
		o.sink.ClearMemberDashboard()
		o.memberID = ""
		o.memberName = ""
		o.setRole(RoleAdmin)
		o.sink.ShowSection(SectionAdmin)
		o.mu.Unlock()

		o.logger.Info("auth state changed", "email", user.Email, "role", role)
		o.loadAdminDashboard(ctx, gen)
		return
	}

	o.mu.Lock()
	if o.role != RoleAdmin {
		o.mu.Unlock()
		return
	}
	o.gen++
	o.sink.ClearAdminDashboard()
	o.setRole(RoleAnonymous)
	o.sink.ShowSection(SectionHome)
	o.mu.Unlock()
	o.logger.Info("auth state changed (signed out)")
}

// AdminLogin authenticates against the auth provider. The transition into
// the admin view is driven by the resulting auth state notification, not
// here.
func (o *Orchestrator) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		o.sink.Toast("Please enter email and password", SeverityError)
		return nil, fmt.Errorf("%w: email and password", ErrMissingFields)
	}

	user, err := o.auth.Login(ctx, email, password)
	if err != nil {
		o.toastAuthError(err, "Login failed")
		o.logger.Error("login failed", "email", email, "error", err)
		return nil, err
	}

	o.sink.Toast("Welcome back, "+user.Email, SeveritySuccess)
	o.logger.Info("user logged in", "email", user.Email)
	return user, nil
}

// AdminSignup creates an account with the auth provider. Like AdminLogin,
// the view transition follows from the auth state notification.
func (o *Orchestrator) AdminSignup(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		o.sink.Toast("Please enter email and password", SeverityError)
		return nil, fmt.Errorf("%w: email and password", ErrMissingFields)
	}

	user, err := o.auth.Signup(ctx, email, password)
	if err != nil {
		o.toastAuthError(err, "Signup failed")
		o.logger.Error("signup failed", "email", email, "error", err)
		return nil, err
	}

	o.sink.Toast("Account created for "+user.Email, SeveritySuccess)
	o.logger.Info("new user signed up", "email", user.Email)
	return user, nil
}

func (o *Orchestrator) toastAuthError(err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		o.sink.Toast("This email is not registered", SeverityError)
	case errors.Is(err, ErrInvalidCredentials):
		o.sink.Toast("Incorrect password", SeverityError)
	case errors.Is(err, ErrEmailInUse):
		o.sink.Toast("This email is already registered", SeverityError)
	case errors.Is(err, ErrInvalidEmail):
		o.sink.Toast("Invalid email address", SeverityError)
	case errors.Is(err, ErrWeakPassword):
		o.sink.Toast("Password should be at least 6 characters", SeverityError)
	default:
		o.sink.Toast(fallback, SeverityError)
	}
}

// MemberLogin matches the submitted (name, memberId) pair against stored
// member records. On a match the session is persisted and the member view
// loads; on zero matches the attempt fails and no session is written.
func (o *Orchestrator) MemberLogin(ctx context.Context, name, memberID string) error {
	name = strings.TrimSpace(name)
	memberID = strings.TrimSpace(memberID)
	if name == "" || memberID == "" {
		o.sink.Toast("Please enter both Name and Member ID", SeverityError)
		return fmt.Errorf("%w: name and member id", ErrMissingFields)
	}

	gen := o.beginFlow()

	member, err := o.data.FindMemberByNameAndID(ctx, name, memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			o.sink.Toast("No member found with this Name and ID", SeverityError)
		} else {
			o.sink.Toast("Member login failed", SeverityError)
		}
		o.logger.Error("member login failed", "name", name, "memberId", memberID, "error", err)
		return err
	}

	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		o.logger.Info("member login superseded", "memberId", member.MemberID)
		return nil
	}
	o.sink.ClearAdminDashboard()
	o.memberID = member.MemberID
	o.memberName = member.Name
	o.setRole(RoleMember)
	if err := o.sessions.Save(&models.Session{ID: member.MemberID, Name: member.Name}); err != nil {
		o.logger.Error("persist session failed", "error", err)
	}
	o.sink.ShowSection(SectionMember)
	o.sink.Toast("Welcome, "+member.Name, SeveritySuccess)
	o.mu.Unlock()

	o.logger.Info("member logged in", "memberId", member.MemberID, "name", member.Name)
	o.loadMemberDashboard(ctx, gen, member.MemberID, member.Name)
	return nil
}

// restoreSession enters the member view from a persisted session without
// re-validating it against the store. The result is provisional: a later
// admin auth notification supersedes it through the generation counter.
func (o *Orchestrator) restoreSession(ctx context.Context) {
	saved, err := o.sessions.Load()
	if err != nil {
		o.logger.Error("restore session failed", "error", err)
		return
	}
	if saved == nil {
		return
	}

	gen := o.beginFlow()

	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		return
	}
	o.memberID = saved.ID
	o.memberName = saved.Name
	o.setRole(RoleMember)
	o.sink.ShowSection(SectionMember)
	o.mu.Unlock()

	o.logger.Info("restored member session", "memberId", saved.ID)
	o.loadMemberDashboard(ctx, gen, saved.ID, saved.Name)
}

// Logout returns the client to the anonymous state: the persisted session is
// removed and both dashboards are cleared, regardless of the prior role.
// Provider sign-out failures are swallowed.
func (o *Orchestrator) Logout(ctx context.Context) {
	gen := o.beginFlow()

	if err := o.auth.Logout(ctx); err != nil {
		o.logger.Error("provider sign-out failed", "error", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen {
		return
	}
	if err := o.sessions.Clear(); err != nil {
		o.logger.Error("clear session failed", "error", err)
	}
	o.sink.ClearAdminDashboard()
	o.sink.ClearMemberDashboard()
	o.memberID = ""
	o.memberName = ""
	o.setRole(RoleAnonymous)
	o.sink.ShowSection(SectionHome)
	o.sink.Toast("Logged out successfully", SeverityInfo)
	o.logger.Info("logged out")
}

// SetSort changes the member list ordering and, in the admin view, re-renders
// the list.
func (o *Orchestrator) SetSort(ctx context.Context, field, dir string) error {
	if field == "" {
		field = "name"
	}
	if dir != "desc" {
		dir = "asc"
	}

	o.mu.Lock()
	o.sortField = field
	o.sortDir = dir
	role := o.role
	gen := o.gen
	o.mu.Unlock()

	if role != RoleAdmin {
		return nil
	}

	members, err := o.data.ListMembers(ctx, field, dir)
	if err != nil {
		o.sink.Toast("Failed to load admin dashboard", SeverityError)
		o.logger.Error("sorted list failed", "field", field, "dir", dir, "error", err)
		return err
	}
	if o.stale(gen) {
		return nil
	}
	o.sink.RenderMemberList(members)
	o.sink.Toast(fmt.Sprintf("Sorted by %s (%s)", field, dir), SeverityInfo)
	return nil
}

// Reload refreshes the dashboard for the current role. Reloading twice with
// no intervening mutation renders identical content.
func (o *Orchestrator) Reload(ctx context.Context) error {
	o.mu.Lock()
	role := o.role
	gen := o.gen
	id := o.memberID
	name := o.memberName
	o.mu.Unlock()

	switch role {
	case RoleAdmin:
		return o.loadAdminDashboard(ctx, gen)
	case RoleMember:
		return o.loadMemberDashboard(ctx, gen, id, name)
	default:
		return nil
	}
}

// loadAdminDashboard fetches the member list and renders it along with the
// revenue and activity charts. On failure the previously rendered content is
// left in place.
func (o *Orchestrator) loadAdminDashboard(ctx context.Context, gen uint64) error {
	o.mu.Lock()
	field, dir := o.sortField, o.sortDir
	o.mu.Unlock()

	members, err := o.data.ListMembers(ctx, field, dir)
	if err != nil {
		o.sink.Toast("Failed to load admin dashboard", SeverityError)
		o.logger.Error("admin dashboard load failed", "error", err)
		return err
	}
	if o.stale(gen) {
		return nil
	}

	o.sink.RenderMemberList(members)
	o.sink.RenderCharts(
		dashboard.RevenueByPackage(members),
		dashboard.ActivitySplit(members, o.now()),
	)
	o.logger.Info("admin dashboard loaded", "members", len(members))
	return nil
}

// loadMemberDashboard renders the profile, then fetches and renders the
// member's bills. A bills failure leaves the rendered profile in place.
func (o *Orchestrator) loadMemberDashboard(ctx context.Context, gen uint64, memberID, name string) error {
	if o.stale(gen) {
		return nil
	}
	o.sink.RenderMemberProfile(name, memberID)

	bills, err := o.data.ListBillsForMember(ctx, memberID)
	if err != nil {
		o.sink.Toast("Failed to load member dashboard", SeverityError)
		o.logger.Error("member dashboard load failed", "memberId", memberID, "error", err)
		return err
	}
	if o.stale(gen) {
		return nil
	}
	o.sink.RenderBills(bills)
	o.logger.Info("member dashboard loaded", "memberId", memberID, "bills", len(bills))
	return nil
}

// SaveMember adds a new member (empty id) or updates an existing one, then
// reloads the admin dashboard. A validation failure returns before any
// gateway call; a gateway failure leaves the submitted values with the
// caller so the form can stay open.
func (o *Orchestrator) SaveMember(ctx context.Context, id string, form MemberForm) error {
	form.trim()
	if !form.complete() {
		o.sink.Toast("Please fill in all fields", SeverityError)
		return fmt.Errorf("%w: member form", ErrMissingFields)
	}

	var err error
	if id == "" {
		_, err = o.data.AddMember(ctx, &models.Member{
			Name:      form.Name,
			Phone:     form.Phone,
			Package:   form.Package,
			StartDate: form.StartDate,
		})
	} else {
		err = o.data.UpdateMember(ctx, id, models.MemberUpdate{
			Name:      form.Name,
			Phone:     form.Phone,
			Package:   form.Package,
			StartDate: form.StartDate,
		})
	}
	if err != nil {
		o.sink.Toast("Error saving member", SeverityError)
		o.logger.Error("save member failed", "id", id, "error", err)
		return err
	}

	if id == "" {
		o.sink.Toast("Member added successfully", SeveritySuccess)
	} else {
		o.sink.Toast("Member updated successfully", SeveritySuccess)
	}
	return o.Reload(ctx)
}

// DeleteMember removes a member and reloads the admin dashboard. Bills
// referencing the member are not cascaded.
func (o *Orchestrator) DeleteMember(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		o.sink.Toast("Please select a member", SeverityError)
		return fmt.Errorf("%w: member id", ErrMissingFields)
	}

	if err := o.data.DeleteMember(ctx, id); err != nil {
		o.sink.Toast("Failed to delete member", SeverityError)
		o.logger.Error("delete member failed", "id", id, "error", err)
		return err
	}

	o.sink.Toast("Member deleted", SeverityInfo)
	o.logger.Info("member deleted", "id", id)
	return o.Reload(ctx)
}

// AddBill records a bill for a member and reloads the current dashboard.
func (o *Orchestrator) AddBill(ctx context.Context, form BillForm) error {
	form.MemberID = strings.TrimSpace(form.MemberID)
	form.Date = strings.TrimSpace(form.Date)
	if form.Status == "" {
		form.Status = models.BillStatusPaid
	}
	if form.MemberID == "" || form.Date == "" {
		o.sink.Toast("Please fill in all fields", SeverityError)
		return fmt.Errorf("%w: bill form", ErrMissingFields)
	}
	if form.Amount < 0 {
		o.sink.Toast("Bill amount cannot be negative", SeverityError)
		return fmt.Errorf("%w: amount", ErrMissingFields)
	}
	if form.Status != models.BillStatusPaid && form.Status != models.BillStatusUnpaid {
		o.sink.Toast("Bill status must be paid or unpaid", SeverityError)
		return fmt.Errorf("%w: status", ErrMissingFields)
	}

	_, err := o.data.CreateBill(ctx, &models.Bill{
		MemberID: form.MemberID,
		Amount:   form.Amount,
		Status:   form.Status,
		Date:     form.Date,
	})
	if err != nil {
		o.sink.Toast("Failed to add bill", SeverityError)
		o.logger.Error("add bill failed", "memberId", form.MemberID, "error", err)
		return err
	}

	o.sink.Toast("Bill added successfully", SeveritySuccess)
	o.logger.Info("bill added", "memberId", form.MemberID, "amount", form.Amount)
	return o.Reload(ctx)
}

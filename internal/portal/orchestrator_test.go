package portal

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gymms/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth is an in-memory AuthGateway with the same notification contract as
// the real one: the watch callback fires immediately with the current state
// and again on every sign-in and sign-out.
type fakeAuth struct {
	mu        sync.Mutex
	cb        func(user *models.User, role string)
	current   *models.User
	loginErr  error
	signupErr error
	logoutErr error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	user := &models.User{Email: email, Role: models.UserRoleAdmin}
	f.signIn(user)
	return user, nil
}

func (f *fakeAuth) Signup(ctx context.Context, email, password string) (*models.User, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	user := &models.User{Email: email, Role: models.UserRoleAdmin}
	f.signIn(user)
	return user, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.signOut()
	return nil
}

func (f *fakeAuth) WatchAuthState(fn func(user *models.User, role string)) {
	f.mu.Lock()
	f.cb = fn
	user := f.current
	f.mu.Unlock()

	role := models.UserRoleGuest
	if user != nil {
		role = user.Role
	}
	fn(user, role)
}

func (f *fakeAuth) signIn(user *models.User) {
	f.mu.Lock()
	f.current = user
	cb := f.cb
	f.mu.Unlock()
	if cb != nil {
		cb(user, user.Role)
	}
}

func (f *fakeAuth) signOut() {
	f.mu.Lock()
	f.current = nil
	cb := f.cb
	f.mu.Unlock()
	if cb != nil {
		cb(nil, models.UserRoleGuest)
	}
}

// fakeData is an in-memory DataGateway with error injection and an onFind
// hook that runs while a member lookup is in flight.
type fakeData struct {
	mu        sync.Mutex
	members   []models.Member
	bills     map[string][]models.Bill
	listErr   error
	findErr   error
	billsErr  error
	writeErr  error
	onFind    func()
	listCalls int
	updates   []models.MemberUpdate
	deleted   []string
}

func (f *fakeData) AddMember(ctx context.Context, m *models.Member) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m.MemberID = "generated"
	f.members = append(f.members, *m)
	return m.MemberID, nil
}

func (f *fakeData) UpdateMember(ctx context.Context, id string, u models.MemberUpdate) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, u)
	return nil
}

func (f *fakeData) DeleteMember(ctx context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeData) ListMembers(ctx context.Context, sortField, sortDir string) ([]models.Member, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Member(nil), f.members...), nil
}

func (f *fakeData) FindMemberByNameAndID(ctx context.Context, name, memberID string) (*models.Member, error) {
	if f.onFind != nil {
		f.onFind()
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.members {
		if f.members[i].Name == name && f.members[i].MemberID == memberID {
			m := f.members[i]
			return &m, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (f *fakeData) CreateBill(ctx context.Context, b *models.Bill) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bills == nil {
		f.bills = make(map[string][]models.Bill)
	}
	f.bills[b.MemberID] = append(f.bills[b.MemberID], *b)
	return "bill-id", nil
}

func (f *fakeData) ListBillsForMember(ctx context.Context, memberID string) ([]models.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.billsErr != nil {
		return nil, f.billsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Bill(nil), f.bills[memberID]...), nil
}

type fixture struct {
	auth     *fakeAuth
	data     *fakeData
	view     *View
	sessions *MemorySessionStore
	orch     *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		auth:     &fakeAuth{},
		data:     &fakeData{},
		view:     NewView(nil),
		sessions: &MemorySessionStore{},
	}
	f.orch = New(Config{
		Auth:     f.auth,
		Data:     f.data,
		Sink:     f.view,
		Sessions: f.sessions,
	})
	return f
}

func lastToast(t *testing.T, v *View) Toast {
	t.Helper()
	toasts := v.Snapshot().Toasts
	require.NotEmpty(t, toasts)
	return toasts[len(toasts)-1]
}

func TestStartShowsHomeForAnonymousClient(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	assert.Equal(t, SectionHome, f.view.Snapshot().Section)
}

func TestAdminLoginEntersAdminView(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice", Package: "Gold", StartDate: "2026-01-01"}}
	f.orch.Start(context.Background())

	user, err := f.orch.AdminLogin(context.Background(), "admin@mygym.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, RoleAdmin, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionAdmin, snap.Section)
	assert.Contains(t, toastMessages(snap.Toasts), "Welcome back, admin@mygym.com")
}

func TestAdminLoginMissingFields(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	_, err := f.orch.AdminLogin(context.Background(), "  ", "secret1")
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, "Please enter email and password", lastToast(t, f.view).Message)
}

func TestAdminLoginToastsByCause(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unknown email", ErrUserNotFound, "This email is not registered"},
		{"wrong password", ErrInvalidCredentials, "Incorrect password"},
		{"provider failure", errors.New("boom"), "Login failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.auth.loginErr = tc.err
			f.orch.Start(context.Background())

			_, err := f.orch.AdminLogin(context.Background(), "admin@mygym.com", "secret1")
			require.Error(t, err)
			assert.Equal(t, tc.want, lastToast(t, f.view).Message)
			assert.Equal(t, RoleAnonymous, f.orch.Role())
		})
	}
}

func TestAdminSignupToastsByCause(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"email in use", ErrEmailInUse, "This email is already registered"},
		{"invalid email", ErrInvalidEmail, "Invalid email address"},
		{"weak password", ErrWeakPassword, "Password should be at least 6 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.auth.signupErr = tc.err
			f.orch.Start(context.Background())

			_, err := f.orch.AdminSignup(context.Background(), "admin@mygym.com", "secret1")
			require.Error(t, err)
			assert.Equal(t, tc.want, lastToast(t, f.view).Message)
		})
	}
}

func TestAdminSignupSuccess(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	user, err := f.orch.AdminSignup(context.Background(), "admin@mygym.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, RoleAdmin, f.orch.Role())
	assert.Contains(t, toastMessages(f.view.Snapshot().Toasts), "Account created for admin@mygym.com")
}

func TestMemberLoginSuccess(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{
		{MemberID: "m1", Name: "Alice", Phone: "123", Package: "Gold", StartDate: "2026-03-01"},
	}
	f.data.bills = map[string][]models.Bill{
		"m1": {{MemberID: "m1", Amount: 1500, Status: models.BillStatusPaid, Date: "2026-03-01"}},
	}
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "Alice", "m1")
	require.NoError(t, err)

	assert.Equal(t, RoleMember, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionMember, snap.Section)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Alice", snap.Profile.Name)
	assert.Equal(t, "m1", snap.Profile.MemberID)
	require.Len(t, snap.Bills, 1)
	assert.Equal(t, 1500.0, snap.Bills[0].Amount)
	assert.Equal(t, "Welcome, Alice", lastToast(t, f.view).Message)

	saved, err := f.sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "m1", saved.ID)
	assert.Equal(t, "Alice", saved.Name)
}

func TestMemberLoginTrimsInput(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "  Alice  ", " m1 ")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, f.orch.Role())
}

func TestMemberLoginNotFound(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "Nobody", "m9")
	require.ErrorIs(t, err, ErrMemberNotFound)

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	assert.Equal(t, "No member found with this Name and ID", lastToast(t, f.view).Message)

	saved, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestMemberLoginMissingFields(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "   ", "m1")
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, "Please enter both Name and Member ID", lastToast(t, f.view).Message)
	assert.Equal(t, RoleAnonymous, f.orch.Role())
}

func TestAdminSignInEntersAdminView(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice", Package: "Gold", StartDate: "2026-01-01"}}
	f.orch.Start(context.Background())

	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	assert.Equal(t, RoleAdmin, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionAdmin, snap.Section)
	require.Len(t, snap.Members, 1)
	require.NotNil(t, snap.Revenue)
	require.NotNil(t, snap.Activity)
	assert.Equal(t, "Revenue by Package", snap.Revenue.Title)
}

func TestAuthFlowsOutliveStartContext(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice", Package: "Gold", StartDate: "2026-01-01"}}

	// Clients register inside an HTTP request whose context dies with the
	// handler; a later sign-in must still be able to load the dashboard.
	startCtx, cancel := context.WithCancel(context.Background())
	f.orch.Start(startCtx)
	cancel()

	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	assert.Equal(t, RoleAdmin, f.orch.Role())
	snap := f.view.Snapshot()
	require.Len(t, snap.Members, 1)
	require.NotNil(t, snap.Revenue)
	assert.NotContains(t, toastMessages(snap.Toasts), "Failed to load admin dashboard")
}

func TestGuestSignInDoesNotEnterAdminView(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	f.auth.signIn(&models.User{Email: "someone@example.com", Role: models.UserRoleGuest})

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	assert.Equal(t, SectionHome, f.view.Snapshot().Section)
}

func TestAdminSignInEvictsMember(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.orch.Start(context.Background())
	require.NoError(t, f.orch.MemberLogin(context.Background(), "Alice", "m1"))

	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	assert.Equal(t, RoleAdmin, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionAdmin, snap.Section)
	assert.Nil(t, snap.Profile)
	assert.Empty(t, snap.Bills)
}

func TestSignOutExitsAdminOnly(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})
	require.Equal(t, RoleAdmin, f.orch.Role())

	f.auth.signOut()

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionHome, snap.Section)
	assert.Empty(t, snap.Members)
	assert.Nil(t, snap.Revenue)
}

func TestSignOutDoesNotEvictMember(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.orch.Start(context.Background())
	require.NoError(t, f.orch.MemberLogin(context.Background(), "Alice", "m1"))

	f.auth.signOut()

	assert.Equal(t, RoleMember, f.orch.Role())
	assert.Equal(t, SectionMember, f.view.Snapshot().Section)
}

func TestRestoreSessionEntersMemberView(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(&models.Session{ID: "m1", Name: "Alice"}))

	f.orch.Start(context.Background())

	assert.Equal(t, RoleMember, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionMember, snap.Section)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Alice", snap.Profile.Name)
}

func TestRestoredSessionSupersededByAdminSignIn(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(&models.Session{ID: "m1", Name: "Alice"}))
	f.orch.Start(context.Background())
	require.Equal(t, RoleMember, f.orch.Role())

	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	assert.Equal(t, RoleAdmin, f.orch.Role())
	assert.Nil(t, f.view.Snapshot().Profile)
}

func TestMemberLoginSupersededMidFlight(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	// An admin signs in while the member lookup is still in flight; the
	// lookup result must be discarded.
	f.data.onFind = func() {
		f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})
	}
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "Alice", "m1")
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionAdmin, snap.Section)
	assert.Nil(t, snap.Profile)

	saved, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.orch.Start(context.Background())
	require.NoError(t, f.orch.MemberLogin(context.Background(), "Alice", "m1"))

	f.orch.Logout(context.Background())

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	snap := f.view.Snapshot()
	assert.Equal(t, SectionHome, snap.Section)
	assert.Nil(t, snap.Profile)
	assert.Empty(t, snap.Members)
	assert.Equal(t, Toast{Message: "Logged out successfully", Severity: SeverityInfo}, lastToast(t, f.view))

	saved, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLogoutSwallowsProviderFailure(t *testing.T) {
	f := newFixture(t)
	f.auth.logoutErr = errors.New("provider down")
	f.orch.Start(context.Background())

	f.orch.Logout(context.Background())

	assert.Equal(t, RoleAnonymous, f.orch.Role())
	assert.Equal(t, "Logged out successfully", lastToast(t, f.view).Message)
}

func TestSetSortRerendersAdminList(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	require.NoError(t, f.orch.SetSort(context.Background(), "package", "desc"))

	assert.Equal(t, "Sorted by package (desc)", lastToast(t, f.view).Message)
}

func TestSetSortOutsideAdminViewOnlyRecords(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	calls := f.data.listCalls

	require.NoError(t, f.orch.SetSort(context.Background(), "phone", "asc"))

	assert.Equal(t, calls, f.data.listCalls)
}

func TestSetSortDefaultsInvalidDirection(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	require.NoError(t, f.orch.SetSort(context.Background(), "", "sideways"))

	assert.Equal(t, "Sorted by name (asc)", lastToast(t, f.view).Message)
}

func TestSaveMemberAddsAndReloads(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	err := f.orch.SaveMember(context.Background(), "", MemberForm{
		Name:      "  Bob ",
		Phone:     "555",
		Package:   "Silver",
		StartDate: "2026-04-01",
	})
	require.NoError(t, err)

	require.Len(t, f.data.members, 1)
	assert.Equal(t, "Bob", f.data.members[0].Name)
	snap := f.view.Snapshot()
	require.Len(t, snap.Members, 1)
	assert.Contains(t, toastMessages(snap.Toasts), "Member added successfully")
}

func TestSaveMemberUpdates(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	err := f.orch.SaveMember(context.Background(), "m1", MemberForm{
		Name:      "Bob",
		Phone:     "555",
		Package:   "Gold",
		StartDate: "2026-04-01",
	})
	require.NoError(t, err)

	require.Len(t, f.data.updates, 1)
	assert.Equal(t, "Gold", f.data.updates[0].Package)
	assert.Contains(t, toastMessages(f.view.Snapshot().Toasts), "Member updated successfully")
}

func TestSaveMemberRejectsIncompleteForm(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.SaveMember(context.Background(), "", MemberForm{Name: "Bob", Phone: "  "})
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, "Please fill in all fields", lastToast(t, f.view).Message)
	assert.Empty(t, f.data.members)
}

func TestSaveMemberKeepsFormOnGatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.data.writeErr = errors.New("store down")
	f.orch.Start(context.Background())

	err := f.orch.SaveMember(context.Background(), "", MemberForm{
		Name: "Bob", Phone: "555", Package: "Gold", StartDate: "2026-04-01",
	})
	require.Error(t, err)
	assert.Equal(t, "Error saving member", lastToast(t, f.view).Message)
}

func TestDeleteMember(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	require.NoError(t, f.orch.DeleteMember(context.Background(), "m1"))

	assert.Equal(t, []string{"m1"}, f.data.deleted)
	assert.Contains(t, toastMessages(f.view.Snapshot().Toasts), "Member deleted")
}

func TestAddBillDefaultsStatusToPaid(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.AddBill(context.Background(), BillForm{MemberID: "m1", Amount: 100, Date: "2026-04-01"})
	require.NoError(t, err)

	require.Len(t, f.data.bills["m1"], 1)
	assert.Equal(t, models.BillStatusPaid, f.data.bills["m1"][0].Status)
}

func TestAddBillRejectsNegativeAmount(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.AddBill(context.Background(), BillForm{MemberID: "m1", Amount: -5, Date: "2026-04-01"})
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, "Bill amount cannot be negative", lastToast(t, f.view).Message)
}

func TestAddBillRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	f.orch.Start(context.Background())

	err := f.orch.AddBill(context.Background(), BillForm{MemberID: "m1", Amount: 5, Date: "2026-04-01", Status: "pending"})
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, f.data.bills)
}

func TestReloadIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice", Package: "Gold", StartDate: "2026-01-01"}}
	f.orch.Start(context.Background())
	f.auth.signIn(&models.User{Email: "admin@mygym.com", Role: models.UserRoleAdmin})

	require.NoError(t, f.orch.Reload(context.Background()))
	first := f.view.Snapshot()
	require.NoError(t, f.orch.Reload(context.Background()))
	second := f.view.Snapshot()

	assert.Equal(t, first.Members, second.Members)
	assert.Equal(t, first.Revenue.Labels, second.Revenue.Labels)
	assert.Equal(t, first.Revenue.Values, second.Revenue.Values)
}

func TestMemberDashboardKeepsProfileOnBillsFailure(t *testing.T) {
	f := newFixture(t)
	f.data.members = []models.Member{{MemberID: "m1", Name: "Alice"}}
	f.data.billsErr = errors.New("store down")
	f.orch.Start(context.Background())

	err := f.orch.MemberLogin(context.Background(), "Alice", "m1")
	require.NoError(t, err)

	snap := f.view.Snapshot()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Alice", snap.Profile.Name)
	assert.Contains(t, toastMessages(snap.Toasts), "Failed to load member dashboard")
}

func toastMessages(toasts []Toast) []string {
	messages := make([]string, len(toasts))
	for i, toast := range toasts {
		messages[i] = toast.Message
	}
	return messages
}

package portal

import (
	"sync"

	"github.com/gymms/portal/internal/dashboard"
	"github.com/gymms/portal/internal/models"
)

// maxToasts bounds the toast buffer; older toasts fall off the front.
const maxToasts = 20

// Toast is one user-facing notification.
type Toast struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Profile is the rendered member profile.
type Profile struct {
	Name     string `json:"name"`
	MemberID string `json:"memberId"`
}

// BillLine is one rendered bill list entry. Date is the explicit bill date
// or, when absent, the server creation timestamp.
type BillLine struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Date   string  `json:"date"`
}

// Snapshot is a point-in-time copy of everything the view has rendered.
type Snapshot struct {
	Section  string           `json:"section"`
	Toasts   []Toast          `json:"toasts"`
	Members  []models.Member  `json:"members,omitempty"`
	Profile  *Profile         `json:"profile,omitempty"`
	Bills    []BillLine       `json:"bills,omitempty"`
	Revenue  *dashboard.Chart `json:"revenueChart,omitempty"`
	Activity *dashboard.Chart `json:"activityChart,omitempty"`
}

// View is the render sink for one client: the active section, the toast
// buffer, the rendered lists and the two chart slots. It owns the chart
// instances; each render replaces the slot contents and the previous
// instance is released.
type View struct {
	mu       sync.Mutex
	section  string
	toasts   []Toast
	members  []models.Member
	profile  *Profile
	bills    []BillLine
	revenue  dashboard.Slot
	activity dashboard.Slot
	obs      Observer
}

// NewView returns a view showing the home section. obs may be nil.
func NewView(obs Observer) *View {
	if obs == nil {
		obs = noopObserver{}
	}
	return &View{section: SectionHome, obs: obs}
}

// ShowSection makes the given section the single visible one.
func (v *View) ShowSection(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.section = id
}

// Toast appends a notification to the buffer.
func (v *View) Toast(message string, severity Severity) {
	v.mu.Lock()
	v.toasts = append(v.toasts, Toast{Message: message, Severity: severity})
	if len(v.toasts) > maxToasts {
		v.toasts = v.toasts[len(v.toasts)-maxToasts:]
	}
	v.mu.Unlock()
	v.obs.ToastShown(string(severity))
}

// RenderMemberList replaces the admin member list.
func (v *View) RenderMemberList(members []models.Member) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.members = append([]models.Member(nil), members...)
}

// RenderMemberProfile replaces the member profile.
func (v *View) RenderMemberProfile(name, memberID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.profile = &Profile{Name: name, MemberID: memberID}
}

// RenderBills replaces the member bill list.
func (v *View) RenderBills(bills []models.Bill) {
	lines := make([]BillLine, len(bills))
	for i := range bills {
		lines[i] = BillLine{
			Amount: bills[i].Amount,
			Status: bills[i].Status,
			Date:   bills[i].DisplayDate(),
		}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bills = lines
}

// RenderCharts installs fresh chart instances for the revenue and activity
// slots, disposing the previous ones.
func (v *View) RenderCharts(revenue map[string]float64, activity dashboard.Activity) {
	v.revenue.Replace(dashboard.NewBarChart("Revenue by Package", revenue))
	v.activity.Replace(dashboard.NewDoughnutChart(
		"Active vs Inactive Members",
		[]string{"Active Members", "Inactive"},
		[]float64{float64(activity.Active), float64(activity.Inactive)},
	))
}

// ClearAdminDashboard empties the member list and both chart slots.
func (v *View) ClearAdminDashboard() {
	v.mu.Lock()
	v.members = nil
	v.mu.Unlock()
	v.revenue.Dispose()
	v.activity.Dispose()
}

// ClearMemberDashboard empties the profile and bill list.
func (v *View) ClearMemberDashboard() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.profile = nil
	v.bills = nil
}

// Snapshot returns a copy of the current view state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Section:  v.section,
		Toasts:   append([]Toast(nil), v.toasts...),
		Members:  append([]models.Member(nil), v.members...),
		Bills:    append([]BillLine(nil), v.bills...),
		Revenue:  v.revenue.Chart(),
		Activity: v.activity.Chart(),
	}
	if v.profile != nil {
		p := *v.profile
		snap.Profile = &p
	}
	return snap
}

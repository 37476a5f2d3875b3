package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
)

type Tab int

const (
	TabPendaftar Tab = iota
	TabKTA
	TabUsers
	TabAbsensi
	TabStatistics
	tabCount
)

var tabTitles = [tabCount]string{"Pendaftar", "Nomor KTA", "Users", "Absensi", "Statistik"}

func (t Tab) String() string { return tabTitles[t] }

type focus int

const (
	focusList focus = iota
	focusSearch
	focusDates
	focusPassword
	focusDetail
)

// Pages are the dashboard pages shown as tabs.
type Pages struct {
	Pendaftar  *dashboard.PendaftarPage
	KTA        *dashboard.PendaftarPage
	Users      *dashboard.UsersPage
	Absensi    *dashboard.AbsensiPage
	Statistics *dashboard.StatisticsPage
}

type Config struct {
	Pages     Pages
	Session   dashboard.Session
	Toasts    *Toasts
	UploadURL string
}

// Messages delivered by commands.
type (
	fetchedMsg struct {
		tab Tab
		err error
	}
	mutatedMsg struct {
		tab Tab
		err error
	}
	detailMsg    struct{ err error }
	loggedOutMsg struct{ err error }
	toastFadeMsg struct{}
)

// Model is the root bubbletea model of the admin dashboard.
type Model struct {
	ctx       context.Context
	keys      KeyMap
	theme     Theme
	session   dashboard.Session
	toasts    *Toasts
	pages     Pages
	uploadURL string

	lists       [tabCount]listing
	pendaftarLs *listTab[dashboard.PendaftarFilter, pendaftar.PendaftarResponse]
	ktaLs       *listTab[dashboard.PendaftarFilter, pendaftar.PendaftarResponse]
	usersLs     *listTab[dashboard.UserFilter, user.UserResponse]
	absensiLs   *listTab[dashboard.AbsensiFilter, absensi.AbsensiResponse]

	active  Tab
	cursors [tabCount]int
	started [tabCount]bool
	stale   [tabCount]bool

	focus    focus
	input    textinput.Model
	password textinput.Model
	detail   viewport.Model

	width    int
	height   int
	quitting bool
}

func NewModel(ctx context.Context, cfg Config) Model {
	input := textinput.New()
	input.CharLimit = 100

	password := textinput.New()
	password.Prompt = "Password baru: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 72

	model := Model{
		ctx:       ctx,
		keys:      DefaultKeyMap,
		theme:     DefaultTheme,
		session:   cfg.Session,
		toasts:    cfg.Toasts,
		pages:     cfg.Pages,
		uploadURL: cfg.UploadURL,
		input:     input,
		password:  password,
		detail:    viewport.New(80, 20),
	}

	model.pendaftarLs = &listTab[dashboard.PendaftarFilter, pendaftar.PendaftarResponse]{
		tab:     TabPendaftar,
		ctrl:    cfg.Pages.Pendaftar.Controller,
		columns: pendaftarColumns,
		cells:   pendaftarCells,
		id:      func(p pendaftar.PendaftarResponse) string { return p.ID },
		search: func(f dashboard.PendaftarFilter, term string) dashboard.PendaftarFilter {
			f.Search = term
			return f
		},
		term: func(f dashboard.PendaftarFilter) string { return f.Search },
	}
	model.ktaLs = &listTab[dashboard.PendaftarFilter, pendaftar.PendaftarResponse]{
		tab:     TabKTA,
		ctrl:    cfg.Pages.KTA.Controller,
		columns: ktaColumns,
		cells:   ktaCells,
		id:      model.pendaftarLs.id,
		search:  model.pendaftarLs.search,
		term:    model.pendaftarLs.term,
	}
	model.usersLs = &listTab[dashboard.UserFilter, user.UserResponse]{
		tab:     TabUsers,
		ctrl:    cfg.Pages.Users.Controller,
		columns: userColumns,
		cells:   userCells,
		id:      func(u user.UserResponse) string { return u.ID },
		search: func(f dashboard.UserFilter, term string) dashboard.UserFilter {
			f.Search = term
			return f
		},
		term: func(f dashboard.UserFilter) string { return f.Search },
	}
	absensiPage := cfg.Pages.Absensi
	model.absensiLs = &listTab[dashboard.AbsensiFilter, absensi.AbsensiResponse]{
		tab:     TabAbsensi,
		ctrl:    absensiPage.Controller,
		columns: absensiColumns,
		cells: func(theme Theme, a absensi.AbsensiResponse) []string {
			return absensiCells(theme, a, absensiPage.PhotoURL(a))
		},
		id: func(a absensi.AbsensiResponse) string { return a.ID },
		search: func(f dashboard.AbsensiFilter, term string) dashboard.AbsensiFilter {
			f.Search = term
			return f
		},
		term: func(f dashboard.AbsensiFilter) string { return f.Search },
	}

	model.lists = [tabCount]listing{
		TabPendaftar: model.pendaftarLs,
		TabKTA:       model.ktaLs,
		TabUsers:     model.usersLs,
		TabAbsensi:   model.absensiLs,
	}
	model.started[TabPendaftar] = true
	return model
}

// Init loads the first tab; the others load when first opened.
func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, model.pendaftarLs.Load(model.ctx))
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.detail.Width = max(20, message.Width-4)
		model.detail.Height = max(5, message.Height-8)
		return model, nil

	case fetchedMsg:
		model.clampCursor(message.tab)
		return model, model.fadeToast()

	case mutatedMsg:
		model.clampCursor(message.tab)
		if message.tab == TabUsers && model.focus == focusPassword && !model.pages.Users.Dialog().Open {
			model.focus = focusList
			model.password.Blur()
		}
		cmds := []tea.Cmd{model.fadeToast()}
		if message.tab == TabPendaftar || message.tab == TabKTA {
			for _, tab := range []Tab{TabPendaftar, TabKTA, TabStatistics} {
				if tab != message.tab {
					cmds = append(cmds, model.invalidate(tab))
				}
			}
		}
		return model, tea.Batch(cmds...)

	case detailMsg:
		if message.err == nil {
			if d := model.pages.Pendaftar.Detail(); d != nil {
				model.detail.SetContent(renderDetail(*d, model.uploadURL))
				model.detail.GotoTop()
				model.focus = focusDetail
			}
		}
		return model, model.fadeToast()

	case loggedOutMsg:
		model.quitting = true
		model.closePages()
		return model, tea.Quit

	case toastFadeMsg:
		return model, nil

	case tea.KeyMsg:
		switch model.focus {
		case focusSearch, focusDates:
			return model.handleInputKeys(message)
		case focusPassword:
			return model.handlePasswordKeys(message)
		case focusDetail:
			return model.handleDetailKeys(message)
		}
		return model.handleListKeys(message)
	}

	var cmd tea.Cmd
	switch model.focus {
	case focusSearch, focusDates:
		model.input, cmd = model.input.Update(message)
	case focusPassword:
		model.password, cmd = model.password.Update(message)
	}
	return model, cmd
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := model.ctx
	list := model.lists[model.active]

	switch {
	case key.Matches(message, model.keys.Quit):
		model.quitting = true
		model.closePages()
		return model, tea.Quit

	case key.Matches(message, model.keys.Logout):
		session := model.session
		return model, func() tea.Msg {
			return loggedOutMsg{err: session.Logout(ctx)}
		}

	case key.Matches(message, model.keys.TabPendaftar):
		return model.switchTab(TabPendaftar)
	case key.Matches(message, model.keys.TabKTA):
		return model.switchTab(TabKTA)
	case key.Matches(message, model.keys.TabUsers):
		return model.switchTab(TabUsers)
	case key.Matches(message, model.keys.TabAbsensi):
		return model.switchTab(TabAbsensi)
	case key.Matches(message, model.keys.TabStatistics):
		return model.switchTab(TabStatistics)
	case key.Matches(message, model.keys.NextTab):
		return model.switchTab((model.active + 1) % tabCount)

	case key.Matches(message, model.keys.Up):
		if model.cursors[model.active] > 0 {
			model.cursors[model.active]--
		}
	case key.Matches(message, model.keys.Down):
		if list != nil && model.cursors[model.active] < list.Len()-1 {
			model.cursors[model.active]++
		}

	case key.Matches(message, model.keys.NextPage):
		if list != nil {
			if cmd := list.Next(ctx); cmd != nil {
				model.cursors[model.active] = 0
				return model, cmd
			}
		}
	case key.Matches(message, model.keys.PrevPage):
		if list != nil {
			if cmd := list.Prev(ctx); cmd != nil {
				model.cursors[model.active] = 0
				return model, cmd
			}
		}

	case key.Matches(message, model.keys.Refresh):
		return model, model.load(model.active)

	case key.Matches(message, model.keys.Search):
		if list != nil {
			model.focus = focusSearch
			model.input.Prompt = "Cari: "
			model.input.Placeholder = "nama, username atau email"
			model.input.SetValue(list.SearchTerm())
			model.input.CursorEnd()
			cmd := model.input.Focus()
			return model, cmd
		}

	case key.Matches(message, model.keys.DateRange):
		if model.active == TabAbsensi {
			f := model.pages.Absensi.Snapshot().Query.Filter
			model.focus = focusDates
			model.input.Prompt = "Tanggal: "
			model.input.Placeholder = "YYYY-MM-DD YYYY-MM-DD"
			model.input.SetValue(strings.TrimSpace(f.StartDate + " " + f.EndDate))
			model.input.CursorEnd()
			cmd := model.input.Focus()
			return model, cmd
		}

	case key.Matches(message, model.keys.CycleFilter):
		cmd := model.cycleFilter()
		return model, cmd

	case key.Matches(message, model.keys.Detail):
		if id := model.selectedID(); id != "" && (model.active == TabPendaftar || model.active == TabKTA) {
			page := model.pages.Pendaftar
			return model, func() tea.Msg {
				return detailMsg{err: page.OpenDetail(ctx, id)}
			}
		}

	case key.Matches(message, model.keys.Accept), key.Matches(message, model.keys.Reject):
		if model.active != TabPendaftar {
			break
		}
		id := model.selectedID()
		page := model.pages.Pendaftar
		if id == "" || page.Pending(id) {
			break
		}
		status := pendaftar.StatusDiterima
		if key.Matches(message, model.keys.Reject) {
			status = pendaftar.StatusDitolak
		}
		return model, func() tea.Msg {
			return mutatedMsg{tab: TabPendaftar, err: page.UpdateStatus(ctx, id, status)}
		}

	case key.Matches(message, model.keys.GenerateKTA):
		var page *dashboard.PendaftarPage
		switch model.active {
		case TabPendaftar:
			page = model.pages.Pendaftar
		case TabKTA:
			page = model.pages.KTA
		}
		id := model.selectedID()
		if page == nil || id == "" || page.Pending(id) {
			break
		}
		tab := model.active
		return model, func() tea.Msg {
			return mutatedMsg{tab: tab, err: page.GenerateKTA(ctx, id)}
		}

	case key.Matches(message, model.keys.ResetPasswd):
		if model.active != TabUsers {
			break
		}
		u, ok := model.usersLs.ItemAt(model.cursors[TabUsers])
		if !ok || model.pages.Users.Pending(u.ID) {
			break
		}
		model.pages.Users.OpenReset(u)
		model.focus = focusPassword
		model.password.Reset()
		cmd := model.password.Focus()
		return model, cmd
	}
	return model, nil
}

func (model Model) handleInputKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Cancel):
		model.focus = focusList
		model.input.Blur()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		value := strings.TrimSpace(model.input.Value())
		if model.focus == focusDates {
			start, end, ok := parseDateRange(value)
			if !ok {
				model.toasts.Error("Format tanggal harus YYYY-MM-DD")
				return model, model.fadeToast()
			}
			model.focus = focusList
			model.input.Blur()
			model.cursors[TabAbsensi] = 0
			return model, model.absensiLs.Filter(model.ctx, func(f dashboard.AbsensiFilter) dashboard.AbsensiFilter {
				f.StartDate, f.EndDate = start, end
				return f
			})
		}
		model.focus = focusList
		model.input.Blur()
		model.cursors[model.active] = 0
		if list := model.lists[model.active]; list != nil {
			return model, list.Search(model.ctx, value)
		}
		return model, nil
	}

	var cmd tea.Cmd
	model.input, cmd = model.input.Update(message)
	return model, cmd
}

func (model Model) handlePasswordKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := model.pages.Users
	switch {
	case key.Matches(message, model.keys.Cancel):
		users.CancelReset()
		model.focus = focusList
		model.password.Blur()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		if users.Pending(users.Dialog().UserID) {
			return model, nil
		}
		users.SetPassword(model.password.Value())
		ctx := model.ctx
		return model, func() tea.Msg {
			return mutatedMsg{tab: TabUsers, err: users.SubmitReset(ctx)}
		}
	}

	var cmd tea.Cmd
	model.password, cmd = model.password.Update(message)
	return model, cmd
}

func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.Cancel) || key.Matches(message, model.keys.Quit) {
		model.pages.Pendaftar.CloseDetail()
		model.focus = focusList
		return model, nil
	}
	var cmd tea.Cmd
	model.detail, cmd = model.detail.Update(message)
	return model, cmd
}

func (model Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	model.active = tab
	if model.started[tab] && !model.stale[tab] {
		return model, nil
	}
	model.started[tab] = true
	model.stale[tab] = false
	return model, model.load(tab)
}

// invalidate marks a tab whose data another tab's mutation changed. The active
// tab reloads at once; a hidden one reloads when it is next opened.
func (model *Model) invalidate(tab Tab) tea.Cmd {
	if !model.started[tab] {
		return nil
	}
	if tab == model.active {
		return model.load(tab)
	}
	model.stale[tab] = true
	return nil
}

func (model Model) load(tab Tab) tea.Cmd {
	if tab == TabStatistics {
		page, ctx := model.pages.Statistics, model.ctx
		return func() tea.Msg {
			return fetchedMsg{tab: TabStatistics, err: page.Load(ctx)}
		}
	}
	return model.lists[tab].Load(model.ctx)
}

var (
	statusCycle = []string{pendaftar.StatusAll, string(pendaftar.StatusPending), string(pendaftar.StatusDiterima), string(pendaftar.StatusDitolak)}
	roleCycle   = []string{user.RoleAll, string(user.RoleAdmin), string(user.RoleAnggota)}
	periodCycle = []statistics.Period{statistics.PeriodAll, statistics.PeriodWeek, statistics.PeriodMonth, statistics.PeriodYear}
)

func (model *Model) cycleFilter() tea.Cmd {
	ctx := model.ctx
	switch model.active {
	case TabPendaftar:
		model.cursors[TabPendaftar] = 0
		return model.pendaftarLs.Filter(ctx, func(f dashboard.PendaftarFilter) dashboard.PendaftarFilter {
			f.Status = nextOf(statusCycle, f.Status)
			return f
		})
	case TabUsers:
		model.cursors[TabUsers] = 0
		return model.usersLs.Filter(ctx, func(f dashboard.UserFilter) dashboard.UserFilter {
			f.Role = nextOf(roleCycle, f.Role)
			return f
		})
	case TabStatistics:
		page := model.pages.Statistics
		period := nextOf(periodCycle, page.View().Period)
		return func() tea.Msg {
			return fetchedMsg{tab: TabStatistics, err: page.SetPeriod(ctx, period)}
		}
	}
	return nil
}

func nextOf[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (model *Model) clampCursor(tab Tab) {
	list := model.lists[tab]
	if list == nil {
		return
	}
	if n := list.Len(); model.cursors[tab] >= n {
		model.cursors[tab] = max(0, n-1)
	}
}

func (model Model) selectedID() string {
	list := model.lists[model.active]
	if list == nil {
		return ""
	}
	return list.IDAt(model.cursors[model.active])
}

func (model Model) fadeToast() tea.Cmd {
	if model.toasts.current() == nil {
		return nil
	}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastFadeMsg{} })
}

func (model Model) closePages() {
	for _, list := range model.lists {
		if list != nil {
			list.Close()
		}
	}
}

// parseDateRange accepts "", "START" or "START END" in YYYY-MM-DD.
func parseDateRange(value string) (string, string, bool) {
	fields := strings.Fields(value)
	if len(fields) > 2 {
		return "", "", false
	}
	for _, f := range fields {
		if _, ok := validator.IsValidDate(f); !ok {
			return "", "", false
		}
	}
	switch len(fields) {
	case 0:
		return "", "", true
	case 1:
		return fields[0], "", true
	default:
		return fields[0], fields[1], true
	}
}

package cli

import (
	"testing"

	"github.com/aqibjaved/showcase/internal/browser"
	"github.com/aqibjaved/showcase/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDashboard builds a driven dashboard over a seeded catalog.
// Display order: Python Drills (week 1, completed, undeployed),
// Movie Agent (week 2, live, deployed), Document Q&A (week 3, in progress).
func newDashboard(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newDashboardModel(app.Catalog, app.Opener), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestDashboard_LoadsCatalog(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	view := d.View()
	assert.NotContains(t, view, "Loading")
	assert.Contains(t, view, "3 projects found")
	assert.Contains(t, view, "WEEK 1")
	assert.Contains(t, view, "WEEK 3")
	assert.Contains(t, view, "Python Drills")
	assert.Contains(t, view, "Movie Agent")
}

func TestDashboard_SearchFiltersButStatsStay(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressKey('/')
	d.Type("ai")

	view := d.View()
	assert.Contains(t, view, "2 projects found")
	assert.NotContains(t, view, "Python Drills")
	assert.NotContains(t, view, "WEEK 1")
	// The stats strip describes the whole catalog, not the filtered view.
	assert.Contains(t, view, "3 projects")
}

func TestDashboard_SearchEscClears(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressKey('/')
	d.Type("ai")
	assert.Contains(t, d.View(), "2 projects found")

	d.PressEsc()
	assert.Contains(t, d.View(), "3 projects found")
}

func TestDashboard_EmptyState(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressKey('/')
	d.Type("zzz")

	view := d.View()
	assert.Contains(t, view, "0 projects found")
	assert.Contains(t, view, "No projects match your search.")
}

func TestDashboard_EnterOpensDeployment(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressDown() // Movie Agent
	d.PressEnter()

	opener := app.Opener.(*browser.CaptureOpener)
	require.Len(t, opener.Opened, 1)
	assert.Equal(t, "https://example.com/movies", opener.Opened[0])
	// Successful navigation shows no notification.
	assert.NotContains(t, d.View(), "not deployed")
}

func TestDashboard_EnterUndeployedNotifies(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressEnter() // Python Drills, completed but undeployed

	assert.Contains(t, d.View(), "completed but not deployed")
	assert.Empty(t, app.Opener.(*browser.CaptureOpener).Opened)
}

func TestDashboard_NotificationAutoHides(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	// The driver skips the 3s tea.Tick; deliver its message by hand.
	// Presenter tokens count up from 1.
	d.PressEnter()
	assert.Contains(t, d.View(), "completed but not deployed")

	d.Send(notifyExpiredMsg{token: 1})
	assert.NotContains(t, d.View(), "completed but not deployed")
}

func TestDashboard_ReplaceRestartsTimer(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressEnter() // token 1: "completed but not deployed"
	d.PressDown()
	d.PressDown()
	d.PressEnter() // token 2: "still in progress"

	view := d.View()
	assert.Contains(t, view, "still in progress")
	assert.NotContains(t, view, "completed but not deployed")

	// The first notification's timer firing must not hide the second.
	d.Send(notifyExpiredMsg{token: 1})
	assert.Contains(t, d.View(), "still in progress")

	d.Send(notifyExpiredMsg{token: 2})
	assert.NotContains(t, d.View(), "still in progress")
}

func TestDashboard_EscDismissesNotification(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressEnter()
	assert.Contains(t, d.View(), "completed but not deployed")

	d.PressEsc()
	assert.NotContains(t, d.View(), "completed but not deployed")

	// The dismissed notification's timer is stale and stays a no-op.
	d.Send(notifyExpiredMsg{token: 1})
	assert.NotContains(t, d.View(), "completed but not deployed")
}

func TestDashboard_SourceAlwaysNavigates(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	// Python Drills carries the "#" placeholder; the source action is not
	// guarded the way the deploy action is.
	d.PressKey('g')

	opener := app.Opener.(*browser.CaptureOpener)
	require.Len(t, opener.Opened, 1)
	assert.Equal(t, "#", opener.Opened[0])
}

func TestDashboard_CursorClampsAfterFilter(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressDown()
	d.PressDown() // Document Q&A
	d.PressKey('/')
	d.Type("drills") // one result; cursor must clamp to it
	assert.Contains(t, d.View(), "1 project found")

	d.PressEsc() // blur and clear
	d.PressEnter()
	// Clamped cursor selects the only match, the undeployed Python Drills.
	assert.Contains(t, d.View(), "completed but not deployed")
}

func TestDashboard_Quit(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestDashboard_QuitCtrlC(t *testing.T) {
	app := testApp(t)
	seedCatalog(t, app)
	d := newDashboard(t, app)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

package models

// Store keys mirror the localStorage schema of the Monastery360 web app, so a
// backup taken in the browser restores cleanly into this service and back.
const (
	KeyCurrentUser = "currentUser"
	KeyUsers       = "monastery360Users"
	KeyMonasteries = "monasteries"
	KeyArchives    = "archives"
	KeyEvents      = "calendarEvents"
	KeyActivities  = "adminActivities"
	KeyAnalytics   = "analytics"
)

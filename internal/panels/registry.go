package panels

import (
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
)

// Factories returns a constructor for every navigation entry. Each call
// builds a panel with fresh local state.
func Factories() map[nav.PanelID]core.PanelFactory {
	return map[nav.PanelID]core.PanelFactory{
		nav.Dashboard:     func() core.Panel { return NewDashboardPanel() },
		nav.Triage:        func() core.Panel { return NewTriagePanel() },
		nav.Appointments:  func() core.Panel { return NewAppointmentsPanel() },
		nav.Prescriptions: func() core.Panel { return NewPrescriptionsPanel() },
		nav.Insights:      func() core.Panel { return NewInsightsPanel() },
		nav.Workflow:      func() core.Panel { return NewWorkflowPanel() },
	}
}

package recordstore

// Tab identifies which slice of the selected patient's record is rendered.
type Tab string

const (
	TabOverview Tab = "overview"
	TabBiodata  Tab = "biodata"
	TabVisits   Tab = "visits"
	TabPlanner  Tab = "planner"
)

// View is presentation-only state. None of it touches remote resources; it
// just gates what the store's data is rendered as.
type View struct {
	ActiveTab         Tab
	CreateOpen        bool
	AddChoiceOpen     bool
	DeleteConfirmOpen bool
	SettingsOpen      bool
}

func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) SetActiveTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ActiveTab = tab
}

func (s *Store) OpenAddChoice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.AddChoiceOpen = true
}

func (s *Store) CloseAddChoice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.AddChoiceOpen = false
}

func (s *Store) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CreateOpen = true
	s.view.AddChoiceOpen = false
}

// CancelCreate closes the creation modal and wipes the form, matching the
// reset-on-cancel contract.
func (s *Store) CancelCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CreateOpen = false
	s.form.reset()
}

func (s *Store) ToggleSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SettingsOpen = !s.view.SettingsOpen
}

// CloseSettings is the outside-interaction hook: any click outside the menu
// closes it.
func (s *Store) CloseSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SettingsOpen = false
}

package navstate

import "sync"

const (
	DropdownCategories = "categories"
	DropdownProfile    = "profile"
)

// State is the navigation shell state for one session: at most one dropdown
// open at a time, and the mobile menu never open together with a dropdown.
type State struct {
	mu         sync.Mutex
	dropdown   string
	mobileMenu bool
}

type Snapshot struct {
	Dropdown   string `json:"dropdown"`
	MobileMenu bool   `json:"mobileMenu"`
}

func New() *State {
	return &State{}
}

// ToggleDropdown closes the named dropdown if it is already open, otherwise
// opens it and closes the mobile menu.
func (s *State) ToggleDropdown(menu string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dropdown == menu {
		s.dropdown = ""
		return
	}
	s.dropdown = menu
	s.mobileMenu = false
}

// ToggleMobileMenu flips the mobile menu and closes any open dropdown.
func (s *State) ToggleMobileMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileMenu = !s.mobileMenu
	s.dropdown = ""
}

// ClickOutside closes everything.
func (s *State) ClickOutside() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropdown = ""
	s.mobileMenu = false
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Dropdown: s.dropdown, MobileMenu: s.mobileMenu}
}

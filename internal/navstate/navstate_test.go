package navstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleDropdownOpensAndCloses(t *testing.T) {
	s := New()

	s.ToggleDropdown(DropdownCategories)
	assert.Equal(t, DropdownCategories, s.Snapshot().Dropdown)

	s.ToggleDropdown(DropdownCategories)
	assert.Equal(t, "", s.Snapshot().Dropdown)
}

func TestToggleDropdownSwitchesMenus(t *testing.T) {
	s := New()

	s.ToggleDropdown(DropdownCategories)
	s.ToggleDropdown(DropdownProfile)

	snap := s.Snapshot()
	assert.Equal(t, DropdownProfile, snap.Dropdown)
	assert.False(t, snap.MobileMenu)
}

func TestDropdownClosesMobileMenu(t *testing.T) {
	s := New()

	s.ToggleMobileMenu()
	assert.True(t, s.Snapshot().MobileMenu)

	s.ToggleDropdown(DropdownProfile)
	snap := s.Snapshot()
	assert.Equal(t, DropdownProfile, snap.Dropdown)
	assert.False(t, snap.MobileMenu)
}

func TestMobileMenuClosesDropdown(t *testing.T) {
	s := New()

	s.ToggleDropdown(DropdownCategories)
	s.ToggleMobileMenu()

	snap := s.Snapshot()
	assert.True(t, snap.MobileMenu)
	assert.Equal(t, "", snap.Dropdown)
}

func TestClickOutsideClosesEverything(t *testing.T) {
	s := New()

	s.ToggleDropdown(DropdownCategories)
	s.ClickOutside()
	snap := s.Snapshot()
	assert.Equal(t, "", snap.Dropdown)
	assert.False(t, snap.MobileMenu)

	s.ToggleMobileMenu()
	s.ClickOutside()
	snap = s.Snapshot()
	assert.Equal(t, "", snap.Dropdown)
	assert.False(t, snap.MobileMenu)
}

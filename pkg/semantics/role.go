// Package semantics defines the toolkit-neutral accessibility vocabulary that
// application listeners speak: roles, states, relations and text styles.
//
// The native protocol has its own vocabulary (see package protocol); the
// bridge translates between the two with static tables.
package semantics

// Role is the semantic role of a node.
type Role int

const (
	// RoleUnspecified means no listener supplied a role.
	RoleUnspecified Role = iota - 1
	RoleClientArea
	RoleWindow
	RoleMenuBar
	RoleMenu
	RoleMenuItem
	RoleSeparator
	RoleToolTip
	RoleScrollBar
	RoleDialog
	RoleLabel
	RolePushButton
	RoleCheckButton
	RoleRadioButton
	RoleSplitButton
	RoleComboBox
	RoleText
	RoleToolBar
	RoleList
	RoleListItem
	RoleTable
	RoleTableCell
	RoleTableColumnHeader
	RoleTableRowHeader
	RoleTree
	RoleTreeItem
	RoleTabFolder
	RoleTabItem
	RoleProgressBar
	RoleSlider
	RoleLink
	RoleAlert
	RoleAnimation
	RoleCanvas
	RoleColumn
	RoleDocument
	RoleGraphic
	RoleGroup
	RoleRow
	RoleSpinButton
	RoleStatusBar
	RoleCheckMenuItem
	RoleRadioMenuItem
	RoleClock
	RoleCalendar
	RoleDateTime
	RoleFooter
	RoleForm
	RoleHeader
	RoleHeading
	RolePage
	RoleParagraph
	RoleSection

	roleCount
)

var roleNames = [...]string{
	"client-area", "window", "menu-bar", "menu", "menu-item", "separator",
	"tool-tip", "scroll-bar", "dialog", "label", "push-button", "check-button",
	"radio-button", "split-button", "combo-box", "text", "tool-bar", "list",
	"list-item", "table", "table-cell", "table-column-header",
	"table-row-header", "tree", "tree-item", "tab-folder", "tab-item",
	"progress-bar", "slider", "link", "alert", "animation", "canvas", "column",
	"document", "graphic", "group", "row", "spin-button", "status-bar",
	"check-menu-item", "radio-menu-item", "clock", "calendar", "date-time",
	"footer", "form", "header", "heading", "page", "paragraph", "section",
}

// String returns the kebab-case role name.
func (r Role) String() string {
	if r == RoleUnspecified {
		return "unspecified"
	}
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Valid reports whether r is a concrete role.
func (r Role) Valid() bool {
	return r >= 0 && r < roleCount
}

// Roles returns every concrete role in declaration order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ParseRole looks up a role by its kebab-case name.
func ParseRole(name string) (Role, bool) {
	if name == "unspecified" {
		return RoleUnspecified, true
	}
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return RoleUnspecified, false
}

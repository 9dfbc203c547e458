// Package protocol holds the native assistive-technology vocabulary (roles,
// states, relation types, coordinate systems, text boundaries and text
// attribute names) and the static tables that translate the semantics
// vocabulary into it.
//
// The tables are configuration, not algorithm: every lookup is a plain map
// or slice access, and missing entries are reported with an ok flag so the
// caller can fall back to inherited behavior.
package protocol

import "github.com/go-drift/accessbridge/pkg/semantics"

// Role is a native protocol role.
type Role int

const (
	RoleInvalid Role = iota
	RoleAlert
	RoleAnimation
	RoleCalendar
	RoleCanvas
	RoleCheckBox
	RoleCheckMenuItem
	RoleComboBox
	RoleDateEditor
	RoleDialog
	RoleDocumentFrame
	RoleFiller
	RoleFooter
	RoleForm
	RoleFrame
	RoleHeader
	RoleHeading
	RoleImage
	RoleLabel
	RoleLayeredPane
	RoleLink
	RoleList
	RoleListItem
	RoleMenu
	RoleMenuBar
	RoleMenuItem
	RolePage
	RolePageTab
	RolePageTabList
	RolePanel
	RoleParagraph
	RoleProgressBar
	RolePushButton
	RoleRadioButton
	RoleRadioMenuItem
	RoleScrollBar
	RoleSection
	RoleSeparator
	RoleSlider
	RoleSpinButton
	RoleStatusbar
	RoleTable
	RoleTableCell
	RoleTableColumnHeader
	RoleTableRow
	RoleTableRowHeader
	RoleText
	RoleToggleButton
	RoleToolBar
	RoleToolTip
	RoleTreeItem
	RoleTreeTable
	RoleUnknown
	RoleWindow

	roleCount
)

var roleNames = [...]string{
	"invalid", "alert", "animation", "calendar", "canvas", "check box",
	"check menu item", "combo box", "date editor", "dialog", "document frame",
	"filler", "footer", "form", "frame", "header", "heading", "image", "label",
	"layered pane", "link", "list", "list item", "menu", "menu bar",
	"menu item", "page", "page tab", "page tab list", "panel", "paragraph",
	"progress bar", "push button", "radio button", "radio menu item",
	"scroll bar", "section", "separator", "slider", "spin button", "statusbar",
	"table", "table cell", "table column header", "table row",
	"table row header", "text", "toggle button", "tool bar", "tool tip",
	"tree item", "tree table", "unknown", "window",
}

// String returns the protocol's display name for the role.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "invalid"
	}
	return roleNames[r]
}

var roleTable = map[semantics.Role]Role{
	semantics.RoleClientArea:        RolePanel,
	semantics.RoleWindow:            RoleWindow,
	semantics.RoleMenuBar:           RoleMenuBar,
	semantics.RoleMenu:              RoleMenu,
	semantics.RoleMenuItem:          RoleMenuItem,
	semantics.RoleSeparator:         RoleSeparator,
	semantics.RoleToolTip:           RoleToolTip,
	semantics.RoleScrollBar:         RoleScrollBar,
	semantics.RoleDialog:            RoleDialog,
	semantics.RoleLabel:             RoleLabel,
	semantics.RolePushButton:        RolePushButton,
	semantics.RoleCheckButton:       RoleCheckBox,
	semantics.RoleRadioButton:       RoleRadioButton,
	semantics.RoleSplitButton:       RolePushButton,
	semantics.RoleComboBox:          RoleComboBox,
	semantics.RoleText:              RoleText,
	semantics.RoleToolBar:           RoleToolBar,
	semantics.RoleList:              RoleList,
	semantics.RoleListItem:          RoleListItem,
	semantics.RoleTable:             RoleTable,
	semantics.RoleTableCell:         RoleTableCell,
	semantics.RoleTableColumnHeader: RoleTableColumnHeader,
	semantics.RoleTableRowHeader:    RoleTableRowHeader,
	semantics.RoleTree:              RoleTreeTable,
	semantics.RoleTreeItem:          RoleTreeItem,
	semantics.RoleTabFolder:         RolePageTabList,
	semantics.RoleTabItem:           RolePageTab,
	semantics.RoleProgressBar:       RoleProgressBar,
	semantics.RoleSlider:            RoleSlider,
	semantics.RoleLink:              RoleLink,
	semantics.RoleAlert:             RoleAlert,
	semantics.RoleAnimation:         RoleAnimation,
	semantics.RoleCanvas:            RoleCanvas,
	semantics.RoleDocument:          RoleDocumentFrame,
	semantics.RoleGraphic:           RoleImage,
	semantics.RoleGroup:             RolePanel,
	semantics.RoleRow:               RoleTableRow,
	semantics.RoleSpinButton:        RoleSpinButton,
	semantics.RoleStatusBar:         RoleStatusbar,
	semantics.RoleCheckMenuItem:     RoleCheckMenuItem,
	semantics.RoleRadioMenuItem:     RoleRadioMenuItem,
	semantics.RoleCalendar:          RoleCalendar,
	semantics.RoleDateTime:          RoleDateEditor,
	semantics.RoleFooter:            RoleFooter,
	semantics.RoleForm:              RoleForm,
	semantics.RoleHeader:            RoleHeader,
	semantics.RoleHeading:           RoleHeading,
	semantics.RolePage:              RolePage,
	semantics.RoleParagraph:         RoleParagraph,
	semantics.RoleSection:           RoleSection,
}

// TranslateRole maps a semantic role to the protocol role.
// Roles without a protocol equivalent (column, clock) report ok=false.
func TranslateRole(r semantics.Role) (Role, bool) {
	pr, ok := roleTable[r]
	return pr, ok
}

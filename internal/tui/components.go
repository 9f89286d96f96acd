package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casey/azdo/internal/azdourl"
)

// Notification displays temporary success or error messages
type Notification struct {
	Message string
	IsError bool
	Visible bool
}

// Show sets the notification message
func (n *Notification) Show(message string, isError bool) {
	n.Message = message
	n.IsError = isError
	n.Visible = true
}

// Clear clears the notification
func (n *Notification) Clear() {
	n.Visible = false
	n.Message = ""
}

// View renders the notification
func (n *Notification) View() string {
	if !n.Visible || n.Message == "" {
		return ""
	}

	style := NotificationSuccessStyle
	icon := "✓"
	if n.IsError {
		style = NotificationErrorStyle
		icon = "✗"
	}

	return style.Render(fmt.Sprintf("%s %s", icon, n.Message))
}

// Field is a label/value pair rendered by RenderFields
type Field struct {
	Label string
	Value string
}

// RenderFields renders aligned label/value rows, muting empty values
func RenderFields(fields []Field) string {
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		value := NormalStyle.Render(f.Value)
		if f.Value == "" {
			value = MutedStyle.Render("-")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(f.Label), value))
	}
	return strings.Join(rows, "\n")
}

// DescriptorFields lists the parsed fields of a descriptor
func DescriptorFields(d azdourl.Descriptor) []Field {
	return []Field{
		{Label: "Organization", Value: d.OrganizationName},
		{Label: "Project", Value: d.ProjectName},
		{Label: "Organization URL", Value: d.OrganizationURL},
		{Label: "Project URL", Value: d.ProjectURL},
	}
}

// RenderDescriptor renders a parsed descriptor, or an error line when invalid
func RenderDescriptor(d azdourl.Descriptor) string {
	if !d.IsValid() {
		return RenderError("✗ Not an Azure DevOps organization or project URL")
	}
	return RenderFields(DescriptorFields(d))
}

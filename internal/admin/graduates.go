package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

// graduateState is the state machine for the graduates section.
type graduateState int

const (
	gListing graduateState = iota
	gAdding                // create form open
	gSaving                // create + photo uploads in flight
)

// dateLayout is the format operators type ceremony times in, day first.
const dateLayout = "02/01/2006 15:04"

// Form field order. photos takes local file paths separated by commas.
const (
	fieldName = iota
	fieldDegree
	fieldDepartment
	fieldDatetime
	fieldVenueName
	fieldVenueAddress
	fieldParking
	fieldEmail
	fieldPhone
	fieldTemplate
	fieldPhotos
	fieldCount
)

// -- messages --

type graduatesLoadedMsg struct {
	graduates []domain.Graduate
	err       error
}

// graduateSavedMsg reports the whole create flow: the POST, then one upload
// per staged photo path with failures collected rather than aborting, then
// the PUT attaching whatever uploaded.
type graduateSavedMsg struct {
	id       string
	name     string
	attached int
	failed   []string
	err      error
}

type graduatesModel struct {
	client *client.Client
	loc    *i18n.Localizer

	graduates []domain.Graduate
	cursor    int
	state     graduateState
	inputs    []textinput.Model
	focus     int
	status    string
	width     int
	height    int
}

func newGraduatesModel(c *client.Client, loc *i18n.Localizer) graduatesModel {
	return graduatesModel{client: c, loc: loc}
}

func (m graduatesModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		graduates, err := c.ListGraduates(context.Background())
		return graduatesLoadedMsg{graduates: graduates, err: err}
	}
}

func (m graduatesModel) fieldLabels() []string {
	return []string{
		m.loc.T("admin.field_name"),
		m.loc.T("admin.field_degree"),
		m.loc.T("admin.field_department"),
		m.loc.T("admin.field_datetime"),
		m.loc.T("admin.field_venue_name"),
		m.loc.T("admin.field_venue_address"),
		m.loc.T("admin.field_parking"),
		m.loc.T("admin.field_email"),
		m.loc.T("admin.field_phone"),
		m.loc.T("admin.field_template"),
		m.loc.T("admin.field_photos"),
	}
}

func (m graduatesModel) openForm() graduatesModel {
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 48
		m.inputs[i] = ti
	}
	m.inputs[fieldDatetime].Placeholder = dateLayout
	m.inputs[fieldName].Focus()
	m.focus = fieldName
	m.state = gAdding
	m.status = ""
	return m
}

func (m graduatesModel) setFocus(i int) graduatesModel {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	m.inputs[i].Focus()
	return m
}

// save validates the form and runs the create flow as one command.
// Photo uploads are sequential and each failure is recorded; the PUT
// only attaches the URLs that made it.
func (m graduatesModel) save() (graduatesModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	if name == "" {
		m.status = m.loc.T("admin.name_required")
		return m, nil
	}
	when, err := time.ParseInLocation(dateLayout, strings.TrimSpace(m.inputs[fieldDatetime].Value()), time.Local)
	if err != nil {
		m.status = m.loc.TData("admin.bad_datetime", map[string]any{"Layout": dateLayout})
		return m, nil
	}

	req := client.CreateGraduateRequest{
		Name:         name,
		Degree:       strings.TrimSpace(m.inputs[fieldDegree].Value()),
		Department:   strings.TrimSpace(m.inputs[fieldDepartment].Value()),
		GraduationAt: when,
		Venue: domain.Venue{
			Name:    strings.TrimSpace(m.inputs[fieldVenueName].Value()),
			Address: strings.TrimSpace(m.inputs[fieldVenueAddress].Value()),
			Parking: strings.TrimSpace(m.inputs[fieldParking].Value()),
		},
		Contact: domain.Contact{
			Email: strings.TrimSpace(m.inputs[fieldEmail].Value()),
			Phone: strings.TrimSpace(m.inputs[fieldPhone].Value()),
		},
		InvitationTemplate: strings.TrimSpace(m.inputs[fieldTemplate].Value()),
	}
	paths := splitPaths(m.inputs[fieldPhotos].Value())

	m.state = gSaving
	m.status = m.loc.T("admin.uploading")
	c := m.client
	return m, func() tea.Msg {
		ctx := context.Background()
		id, err := c.CreateGraduate(ctx, req)
		if err != nil {
			return graduateSavedMsg{err: err}
		}
		var urls []string
		var failed []string
		for _, p := range paths {
			url, err := c.UploadPhoto(ctx, id, p)
			if err != nil {
				failed = append(failed, p)
				continue
			}
			urls = append(urls, url)
		}
		if len(urls) > 0 {
			if err := c.UpdateGraduatePhotos(ctx, id, urls); err != nil {
				return graduateSavedMsg{id: id, name: name, failed: failed, err: err}
			}
		}
		return graduateSavedMsg{id: id, name: name, attached: len(urls), failed: failed}
	}
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (m graduatesModel) Update(msg tea.Msg) (graduatesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case graduatesLoadedMsg:
		if msg.err != nil {
			m.graduates = nil
			return m, nil
		}
		m.graduates = msg.graduates
		if m.cursor >= len(m.graduates) {
			m.cursor = 0
		}
		return m, nil

	case graduateSavedMsg:
		if msg.err != nil {
			m.state = gAdding
			m.status = errorText(msg.err, m.loc)
			return m, nil
		}
		m.state = gListing
		m.status = m.loc.TData("admin.created_graduate", map[string]any{"Name": msg.name})
		if len(msg.failed) > 0 {
			m.status += "  " + errStyle.Render(m.loc.TData("admin.upload_failed", map[string]any{
				"File": strings.Join(msg.failed, ", "),
			}))
		}
		return m, m.load()

	case tea.KeyMsg:
		switch m.state {
		case gAdding:
			return m.handleFormKey(msg)
		case gSaving:
			return m, nil
		default:
			return m.handleListKey(msg)
		}
	}

	if m.state == gAdding {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m graduatesModel) handleListKey(msg tea.KeyMsg) (graduatesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.graduates)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		return m.openForm(), textinput.Blink
	case "r":
		return m, m.load()
	}
	return m, nil
}

func (m graduatesModel) handleFormKey(msg tea.KeyMsg) (graduatesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = gListing
		m.status = ""
		return m, nil
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount), nil
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
	case "enter":
		if m.focus < fieldCount-1 {
			return m.setFocus(m.focus + 1), nil
		}
		return m.save()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m graduatesModel) View() string {
	var b strings.Builder
	if m.state == gAdding || m.state == gSaving {
		m.renderForm(&b)
	} else {
		m.renderList(&b)
	}
	if m.status != "" {
		b.WriteString("\n  " + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m graduatesModel) renderList(b *strings.Builder) {
	b.WriteString("\n")
	if len(m.graduates) == 0 {
		b.WriteString("  " + dimStyle.Render(m.loc.T("admin.empty_graduates")) + "\n")
		return
	}
	for i, g := range m.graduates {
		line := fmt.Sprintf("%s  %s · %s", g.Name, g.Degree, g.GraduationAt.Format(dateLayout))
		if i == m.cursor {
			b.WriteString("  " + selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + normalStyle.Render(line) + "\n")
		}
		if i == m.cursor {
			b.WriteString("      " + dimStyle.Render(g.Venue.Name+" · "+g.Venue.Address) + "\n")
			if len(g.PhotoURLs) > 0 {
				b.WriteString("      " + dimStyle.Render(m.loc.TData("admin.photo_count", map[string]any{"Count": len(g.PhotoURLs)})) + "\n")
			}
		}
	}
}

func (m graduatesModel) renderForm(b *strings.Builder) {
	b.WriteString("\n")
	labels := m.fieldLabels()
	for i, ti := range m.inputs {
		label := labelStyle.Render(fmt.Sprintf("%-16s", labels[i]))
		b.WriteString("  " + label + ti.View() + "\n")
	}
}

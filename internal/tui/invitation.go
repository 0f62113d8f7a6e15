package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/browser"
	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

// stockPhotos pad the gallery when the graduate uploaded fewer than
// gallerySize pictures of their own.
var stockPhotos = []string{
	"https://images.unsplash.com/photo-1523580494863-6f3031224c94?q=80&w=800",
	"https://demoda.vn/wp-content/uploads/2022/01/hinh-anh-tot-nghiep-chup-bong.jpeg",
	"https://image.slidesdocs.com/responsive-images/background/academic-theme-back-to-school-image-with-degree-cap-and-3d-science-render-powerpoint-background_bfa4589875__960_540.jpg",
	"https://caodangduochoc.edu.vn/wp-content/uploads/5a480ee895bbbd848fd72f7095dbaa56.jpg",
}

const gallerySize = 4

// invitationModel renders the invitation itself: greeting, schedule,
// venue, gallery, plus the fireworks and reaction layers.
type invitationModel struct {
	guest     domain.VerifiedGuest
	loc       *i18n.Localizer
	fireworks fireworksModel
	reactions reactionModel
	scroll    int
	width     int
	height    int
}

func newInvitationModel(guest domain.VerifiedGuest, loc *i18n.Localizer, rng *rand.Rand) invitationModel {
	return invitationModel{
		guest:     guest,
		loc:       loc,
		fireworks: newFireworksModel(rng),
		reactions: newReactionModel(rng),
	}
}

// galleryURLs is the graduate's own photos padded with stock shots,
// always exactly gallerySize entries.
func galleryURLs(own []string) []string {
	urls := append(append([]string{}, own...), stockPhotos...)
	return urls[:gallerySize]
}

func (m invitationModel) Update(msg tea.Msg) (invitationModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fireworks.width = msg.Width
		m.reactions.width = msg.Width
		return m, nil

	case burstSpawnMsg, burstExpireMsg:
		var cmd tea.Cmd
		m.fireworks, cmd = m.fireworks.Update(msg)
		return m, cmd

	case reactionFrameMsg:
		var cmd tea.Cmd
		m.reactions, cmd = m.reactions.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			if m.fireworks.active {
				m.fireworks = m.fireworks.stop()
				return m, nil
			}
			var cmd tea.Cmd
			m.fireworks, cmd = m.fireworks.start()
			return m, cmd
		case "1", "2", "3":
			idx := int(msg.String()[0] - '1')
			var cmd tea.Cmd
			m.reactions, cmd = m.reactions.tap(reactionEmojis[idx])
			return m, cmd
		case "o":
			if addr := m.guest.Graduate.Venue.Address; addr != "" {
				_ = browser.OpenMap(addr) //nolint:errcheck // best-effort
			}
			return m, nil
		case "j", "down":
			m.scroll++
			return m, nil
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		}
	}
	return m, nil
}

func (m invitationModel) View() string {
	width := m.width
	if width < 40 {
		width = 40
	}
	g := m.guest.Graduate

	var b strings.Builder
	b.WriteString(m.fireworks.View() + "\n")

	b.WriteString(centerLine(brightGoldStyle.Render(m.loc.TData("invitation.greeting", map[string]any{"Guest": m.guest.GuestName})), width) + "\n")
	b.WriteString(centerLine(selectedStyle.Render(g.Name), width) + "\n")
	if g.Degree != "" || g.Department != "" {
		b.WriteString(centerLine(metaStyle.Render(strings.TrimSpace(g.Degree+" · "+g.Department)), width) + "\n")
	}
	if g.InvitationTemplate != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(hardWrap(g.InvitationTemplate, width-8), "\n") {
			b.WriteString(centerLine(normalStyle.Render(line), width) + "\n")
		}
	}
	b.WriteString("\n")

	when := g.GraduationAt
	b.WriteString("  " + goldStyle.Render(m.loc.T("invitation.schedule")) + "\n")
	b.WriteString("    " + normalStyle.Render(when.Format("15:04, 02/01/2006")) + "\n")
	b.WriteString("    " + dimStyle.Render(m.loc.TData("invitation.until", map[string]any{"End": g.EstimatedEnd().Format("15:04")})) + "\n\n")

	b.WriteString("  " + goldStyle.Render(m.loc.T("invitation.venue")) + "\n")
	b.WriteString("    " + normalStyle.Render(g.Venue.Name) + "\n")
	b.WriteString("    " + dimStyle.Render(g.Venue.Address) + "\n")
	if g.Venue.Parking != "" {
		b.WriteString("    " + dimStyle.Render(m.loc.T("invitation.parking")+": "+g.Venue.Parking) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + goldStyle.Render(m.loc.T("invitation.gallery")) + "\n")
	for i, u := range galleryURLs(g.PhotoURLs) {
		b.WriteString("    " + dimStyle.Render(fmt.Sprintf("%d. %s", i+1, u)) + "\n")
	}
	b.WriteString("\n")

	if g.Contact.Email != "" || g.Contact.Phone != "" {
		b.WriteString("  " + goldStyle.Render(m.loc.T("invitation.contact")) + "\n")
		if g.Contact.Email != "" {
			b.WriteString("    " + dimStyle.Render(g.Contact.Email) + "\n")
		}
		if g.Contact.Phone != "" {
			b.WriteString("    " + dimStyle.Render(g.Contact.Phone) + "\n")
		}
	}

	b.WriteString(m.reactions.View() + "\n")

	body := b.String()
	lines := strings.Split(body, "\n")
	if m.scroll >= len(lines) {
		m.scroll = len(lines) - 1
	}
	if m.scroll > 0 {
		lines = lines[m.scroll:]
	}
	return truncateToHeight(strings.Join(lines, "\n"), m.height-3)
}

package meeting

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
)

// inviteEmail builds the subject and bodies for an invitation email. The
// link carries the (meeting, token, email) triple that authorizes the
// recipient to act on the meeting.
func inviteEmail(title, ownerName string, role entities.InvitationRole, link string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("You're invited to %q on MiddleGround", title)

	greeting := "Hello,"
	if role == entities.InvitationRoleOwner && ownerName != "" {
		greeting = fmt.Sprintf("Hello %s,", html.EscapeString(ownerName))
	}

	htmlBody = fmt.Sprintf(`<p>%s</p>
<p>You have an invitation to <strong>%s</strong>.</p>
<p>Please click below to confirm your location and see suggestions:</p>
<p><a href=%q>%s</a></p>
<p>Thanks,<br/>MiddleGround</p>`,
		greeting, html.EscapeString(title), link, html.EscapeString(link))

	textBody = fmt.Sprintf("You're invited to %q. Open: %s", title, link)
	return subject, htmlBody, textBody
}

// finalizedEmail builds the subject and bodies for the finalized-venue
// notification sent to every participant.
func finalizedEmail(m *entities.Meeting, place entities.Venue, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Finalized: %s", m.Title)
	mapLink := googleMapsLink(place)
	detailLink := fmt.Sprintf("%s/meet.html?mid=%s", baseURL, m.ID)

	mapRow := ""
	if mapLink != "" {
		mapRow = fmt.Sprintf("<p><a href=%q>Open in Google Maps</a></p>", mapLink)
	}

	htmlBody = fmt.Sprintf(`<p>The meeting <strong>%s</strong> is finalized.</p>
<p>Meet at: <strong>%s</strong><br/>%s</p>
%s<p>Details: <a href=%q>%s</a></p>`,
		html.EscapeString(m.Title),
		html.EscapeString(place.Name),
		html.EscapeString(place.Location.FormattedAddress),
		mapRow,
		detailLink, html.EscapeString(detailLink))

	textBody = fmt.Sprintf("Finalized: %s\n%s\n%s\n%s",
		m.Title, place.Name, place.Location.FormattedAddress, mapLink)
	return subject, htmlBody, textBody
}

// googleMapsLink builds a maps search link for the chosen venue.
func googleMapsLink(place entities.Venue) string {
	parts := make([]string, 0, 2)
	if place.Name != "" {
		parts = append(parts, url.QueryEscape(place.Name))
	}
	if place.Location.FormattedAddress != "" {
		parts = append(parts, url.QueryEscape(place.Location.FormattedAddress))
	}
	if len(parts) == 0 {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + strings.Join(parts, "%20")
}

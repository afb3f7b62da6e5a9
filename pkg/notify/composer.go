package notify

import (
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/foundlab/lostfound/pkg/lostitem"
)

// Message is a transport-ready notification.
type Message struct {
	Subject  string
	BodyHTML string
	Tag      string
}

const (
	subjectCreated = "[Lost & Found] New Lost Item Reported"
	subjectUpdated = "[Lost & Found] Lost Item Updated"

	tagCreated = "lost-item-created"
	tagUpdated = "lost-item-updated"
)

// bodyTemplate renders the notification card. Absent optional fields get
// explicit placeholders ("None", "No image") so the rendered message never
// shows an empty field.
var bodyTemplate = template.Must(template.New("notification").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="margin: 0; color: #111827;">{{.Headline}}</h2>
    <p style="color: #6b7280; margin: 5px 0 0 0; font-size: 14px;">
      A lost item has been {{.Action}} in the system
    </p>
  </div>

  <div style="background-color: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px; margin-bottom: 20px;">
    <div style="display: flex; justify-content: space-between; align-items: start; margin-bottom: 15px;">
      <h3 style="margin: 0; color: #111827; font-size: 18px;">{{.Description}}</h3>
      <span style="background-color: {{.StatusColor}}; color: white; padding: 4px 12px; border-radius: 12px; font-size: 12px; font-weight: 600;">
        {{.StatusText}}
      </span>
    </div>

    {{if .ImageRef}}
    <div style="margin: 15px 0; background-color: #f3f4f6; border-radius: 8px; overflow: hidden;">
      <img src="{{.ImageRef}}" alt="Lost item" style="width: 100%; height: auto; display: block;" />
    </div>
    {{else}}
    <div style="margin: 15px 0; background-color: #f3f4f6; border-radius: 8px; padding: 60px 20px; text-align: center;">
      <p style="color: #9ca3af; margin: 0; font-size: 14px;">No image</p>
    </div>
    {{end}}

    <div style="margin-top: 15px; padding-top: 15px; border-top: 1px solid #e5e7eb;">
      <p style="margin: 0; font-size: 14px; color: #374151;">
        <strong>Contact:</strong> {{.Contact}}
      </p>
    </div>
  </div>

  <div style="background-color: #f9fafb; padding: 15px; border-radius: 8px; border-left: 4px solid #3b82f6;">
    <p style="margin: 0; font-size: 13px; color: #6b7280;">
      <strong>Tip:</strong> Log in to your Lost &amp; Found dashboard to view all details and manage this item.
    </p>
  </div>

  <p style="color: #9ca3af; font-size: 12px; margin-top: 30px; text-align: center; border-top: 1px solid #e5e7eb; padding-top: 20px;">
    This is an automated notification from the Lost and Found System.
  </p>
</div>
`))

type bodyData struct {
	Headline    string
	Action      string
	Description string
	StatusText  string
	StatusColor string
	ImageRef    string
	Contact     string
}

// Compose turns an action and an item snapshot into a transport-ready
// message. It is a pure function: no I/O, no clock reads, same inputs always
// produce the same message.
func Compose(action Action, snapshot Snapshot) Message {
	subject, tag, headline := subjectUpdated, tagUpdated, "Lost Item Updated"
	if action == ActionCreated {
		subject, tag, headline = subjectCreated, tagCreated, "New Lost Item Reported"
	}

	statusColor := "#10b981"
	if snapshot.Status == lostitem.StatusUnclaimed {
		statusColor = "#f59e0b"
	}

	contact := "None"
	if snapshot.Contact != nil && strings.TrimSpace(*snapshot.Contact) != "" {
		contact = *snapshot.Contact
	}

	imageRef := ""
	if snapshot.ImageRef != nil {
		imageRef = strings.TrimSpace(*snapshot.ImageRef)
	}

	var body strings.Builder
	// The template is static and the data struct matches it; render cannot
	// fail at runtime.
	_ = bodyTemplate.Execute(&body, bodyData{
		Headline:    headline,
		Action:      action.String(),
		Description: snapshot.Description,
		StatusText:  cases.Title(language.English).String(snapshot.Status.String()),
		StatusColor: statusColor,
		ImageRef:    imageRef,
		Contact:     contact,
	})

	return Message{
		Subject:  subject,
		BodyHTML: body.String(),
		Tag:      tag,
	}
}

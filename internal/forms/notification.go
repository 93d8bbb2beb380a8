package forms

import (
	"fmt"
	"html"
	"strings"
	"unicode"
)

// identifierFields is the priority order for picking a display name for the
// notification subject line.
var identifierFields = []string{"companyName", "organizationName", "name", "contactName"}

// SubjectIdentifier extracts a best-effort display name from validated data,
// falling back to "N/A" when no candidate field carries a value.
func SubjectIdentifier(data map[string]string) string {
	for _, name := range identifierFields {
		if v := data[name]; v != "" {
			return v
		}
	}
	return "N/A"
}

// Subject builds the notification subject line for a validated submission.
func Subject(t FormType, data map[string]string) string {
	return fmt.Sprintf("New Submission: %s - %s", t, SubjectIdentifier(data))
}

// titleCase converts a camelCase field name to a human title, e.g.
// "currentMaterialsChallenge" -> "Current Materials Challenge".
func titleCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// renderValue escapes a field value for HTML and preserves embedded line
// breaks as explicit <br> tags. Empty values render as "Not provided".
func renderValue(v string) string {
	if v == "" {
		return "Not provided"
	}
	lines := strings.Split(v, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, "<br>")
}

// BodyHTML renders the notification body for a validated submission. Fields
// appear in schema order; only fields present in the submission are rendered.
func BodyHTML(s *Schema, data map[string]string) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(&b, `<h1 style="color: #10b981;">New %s Submission</h1>`, html.EscapeString(string(s.Type)))
	b.WriteString(`<div style="background-color: #f9fafb; padding: 20px; border-radius: 8px;">`)

	for _, f := range s.Fields {
		value, present := data[f.Name]
		if !present {
			continue
		}
		b.WriteString(`<div style="margin-bottom: 15px;">`)
		fmt.Fprintf(&b, `<strong style="color: #334155;">%s:</strong><br>`, titleCase(f.Name))
		fmt.Fprintf(&b, `<span style="color: #64748b;">%s</span>`, renderValue(value))
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	b.WriteString(`<p style="color: #64748b; font-size: 12px; margin-top: 20px;">`)
	b.WriteString(`This email was sent from the TrueNorth Materials website contact form.`)
	b.WriteString(`</p>`)
	b.WriteString(`</div>`)

	return b.String()
}
